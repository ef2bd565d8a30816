package repository

import (
	"context"

	"github.com/google/uuid"

	"rinha-backend/internal/domains/person/model"
)

// RepositoryInterface defines data access for Person records.
// Nickname uniqueness is enforced by the database, not checked here.
type RepositoryInterface interface {
	// Create inserts a person whose id is already assigned.
	// Errors: model.ErrNicknameTaken on a nickname collision,
	// model.ErrStorage for any other failure.
	Create(ctx context.Context, p *model.Person) error

	// GetByID returns model.ErrPersonNotFound if no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Person, error)

	// List returns at most limit records in storage order.
	List(ctx context.Context, limit int) ([]model.Person, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)
}
