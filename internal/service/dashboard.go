package service

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/atinyakov/nexus/internal/models"
)

// RandomSource is the subset of *rand.Rand the dashboard draws from.
type RandomSource interface {
	// IntN returns a uniform int in [0, n).
	IntN(n int) int
}

// Weighted pools: each entry is equally likely, so repeats carry the weight.
var (
	statusPool = []string{"On Time", "On Time", "On Time", "Delayed", "Maintenance"}
	crowdPool  = []string{"Low", "Medium", "Medium", "High", "Low"}
)

const maxArrivalMinutes = 12

// DefaultLines returns the five fixed transit lines.
func DefaultLines() []models.TransitLine {
	return []models.TransitLine{
		{ID: "M1", Name: "Metro Line 1", Type: "Metro", Destination: "Central Station"},
		{ID: "M2", Name: "Metro Line 2", Type: "Metro", Destination: "Airport Terminal"},
		{ID: "B42", Name: "Bus 42", Type: "Bus", Destination: "Tech Park"},
		{ID: "T7", Name: "Tram 7", Type: "Tram", Destination: "Old Town"},
		{ID: "F1", Name: "Harbor Ferry", Type: "Ferry", Destination: "Island Pier"},
	}
}

// DefaultStats returns the starting aggregate counters.
func DefaultStats() models.CityStats {
	return models.CityStats{DailyCommuters: 12450, ActiveVehicles: 342}
}

// DashboardService simulates live transit data. It owns the stats counter;
// Stats is safe for concurrent use.
type DashboardService struct {
	lines []models.TransitLine

	mu    sync.Mutex
	rnd   RandomSource
	stats models.CityStats
}

// NewDashboardService constructs a DashboardService over the given lines,
// starting counters and random source.
func NewDashboardService(lines []models.TransitLine, stats models.CityStats, rnd RandomSource) *DashboardService {
	return &DashboardService{lines: lines, stats: stats, rnd: rnd}
}

// NewRandomSource returns a PCG generator seeded from crypto/rand.
func NewRandomSource() (*rand.Rand, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]))), nil
}

// Status returns one freshly drawn snapshot per line, in line order.
// Nothing is remembered between calls.
func (s *DashboardService) Status() []models.LiveTransitStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.LiveTransitStatus, 0, len(s.lines))
	for _, line := range s.lines {
		out = append(out, models.LiveTransitStatus{
			TransitLine: line,
			Status:      statusPool[s.rnd.IntN(len(statusPool))],
			Crowd:       crowdPool[s.rnd.IntN(len(crowdPool))],
			Arrival:     fmt.Sprintf("%d min", s.rnd.IntN(maxArrivalMinutes)+1),
		})
	}
	return out
}

// Stats adds between 0 and 9 commuters to the running total and returns
// the updated counters. Every call mutates state.
func (s *DashboardService) Stats() models.CityStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.DailyCommuters += s.rnd.IntN(10)
	return s.stats
}
