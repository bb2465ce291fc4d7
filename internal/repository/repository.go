package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"nextstep/athlete-api/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound      = RepositoryError("not found")
	ErrAlreadyExists = RepositoryError("already exists")
)

// RepositoryError helps distinguish repository errors from domain errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// AthleteRepository persists the Athlete aggregate as a whole: the aggregate
// is loaded in full, mutated in memory, and saved wholesale. The system is
// single-tenant, so GetSingle is the usual entry point; GetByID exists for
// the create flow and any future multi-athlete surface.
type AthleteRepository interface {
	Create(ctx context.Context, athlete *domain.Athlete) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Athlete, error)
	GetSingle(ctx context.Context) (*domain.Athlete, error)
	Update(ctx context.Context, athlete *domain.Athlete) error
}
