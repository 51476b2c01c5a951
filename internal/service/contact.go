package service

import (
	"context"
	"fmt"

	"github.com/atinyakov/nexus/internal/models"
)

// DefaultListLimit is used when the caller does not ask for a limit.
const DefaultListLimit = 100

// ContactRepository defines the persistence operations
// required by the contact service.
type ContactRepository interface {
	// InsertContact stores a submission and returns its new id.
	InsertContact(ctx context.Context, name, email, message string) (int64, error)
	// ListContacts returns up to limit submissions, newest first.
	ListContacts(ctx context.Context, limit int) ([]models.Contact, error)
}

// ContactService validates and stores contact submissions.
type ContactService struct {
	repo ContactRepository
}

// NewContactService constructs a ContactService using the provided repository.
func NewContactService(repo ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

// Submit stores a new submission. All three fields must be non-empty.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (int64, error) {
	if name == "" || email == "" || message == "" {
		return 0, fmt.Errorf("%w: missing name, email, or message", ErrValidation)
	}

	id, err := s.repo.InsertContact(ctx, name, email, message)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return id, nil
}

// List returns the limit most recent submissions. There is no upper bound on limit.
func (s *ContactService) List(ctx context.Context, limit int) ([]models.Contact, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", ErrValidation)
	}

	contacts, err := s.repo.ListContacts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return contacts, nil
}
