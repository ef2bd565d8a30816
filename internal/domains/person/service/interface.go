package service

import (
	"context"

	"github.com/google/uuid"

	"rinha-backend/internal/domains/person/model"
)

// ServiceInterface defines business operations for the Person domain
type ServiceInterface interface {
	// Create validates the candidate, assigns an id and persists it.
	// Errors: model.ErrInvalidPerson (validation or nickname conflict),
	// model.ErrStorage, model.ErrInvariantViolation
	Create(ctx context.Context, req *model.CreatePersonRequest) (*model.Person, error)

	// GetByID errors: model.ErrPersonNotFound, model.ErrStorage
	GetByID(ctx context.Context, id uuid.UUID) (*model.Person, error)

	// Search loads at most model.MaxSearchCandidates records and returns
	// up to model.MaxSearchResults matches.
	// Errors: model.ErrEmptySearchTerm, model.ErrStorage
	Search(ctx context.Context, term string) ([]model.Person, error)

	// Count returns the number of stored people
	Count(ctx context.Context) (int64, error)

	// List returns at most model.MaxListSize stored people
	List(ctx context.Context) ([]model.Person, error)
}
