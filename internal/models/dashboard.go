package models

// TransitLine is one of the fixed lines shown on the dashboard.
type TransitLine struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Destination string `json:"destination"`
}

// LiveTransitStatus is a TransitLine with a freshly simulated snapshot.
type LiveTransitStatus struct {
	TransitLine
	// Status is one of "On Time", "Delayed" or "Maintenance".
	Status string `json:"status"`
	// Crowd is one of "Low", "Medium" or "High".
	Crowd string `json:"crowd"`
	// Arrival is formatted as "<n> min".
	Arrival string `json:"arrival"`
}

// CityStats is the aggregate counter block returned by the stats endpoint.
type CityStats struct {
	DailyCommuters int `json:"dailyCommuters"`
	ActiveVehicles int `json:"activeVehicles"`
}
