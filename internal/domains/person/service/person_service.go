package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"rinha-backend/internal/domains/person/model"
	"rinha-backend/internal/domains/person/repository"
)

type personService struct {
	repo  repository.RepositoryInterface
	newID func() uuid.UUID
}

// NewPersonService creates the person service with random UUIDv4 ids
func NewPersonService(repo repository.RepositoryInterface) ServiceInterface {
	return &personService{
		repo:  repo,
		newID: uuid.New,
	}
}

// Create runs validate -> assign id -> insert. The id is only generated once
// validation passed and is dropped with the record on any failure.
// Uniqueness is left to the database constraint.
func (s *personService) Create(ctx context.Context, req *model.CreatePersonRequest) (*model.Person, error) {
	if err := req.Validate(); err != nil {
		log.Debug().Err(err).Msg("person rejected by validation")
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidPerson, err)
	}

	p := req.ToEntity(s.newID())
	if p.ID == uuid.Nil {
		log.Error().Msg("id generator returned nil uuid")
		return nil, fmt.Errorf("%w: generated nil id", model.ErrInvariantViolation)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		switch {
		case errors.Is(err, model.ErrNicknameTaken):
			log.Debug().Str("nickname", p.Nickname).Msg("person rejected by nickname conflict")
		case errors.Is(err, model.ErrInvariantViolation):
			log.Error().Err(err).Msg("person insert invariant violated")
		default:
			log.Error().Err(err).Msg("failed to insert person")
		}
		return nil, err
	}

	return p, nil
}

func (s *personService) GetByID(ctx context.Context, id uuid.UUID) (*model.Person, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrPersonNotFound) {
			log.Error().Err(err).Str("person_id", id.String()).Msg("failed to get person")
		}
		return nil, err
	}
	return p, nil
}

// Search keeps the two caps independent: the fetch bound lives here,
// the result bound in model.Search.
func (s *personService) Search(ctx context.Context, term string) ([]model.Person, error) {
	if err := model.ValidateSearchTerm(term); err != nil {
		return nil, err
	}

	candidates, err := s.repo.List(ctx, model.MaxSearchCandidates)
	if err != nil {
		log.Error().Err(err).Msg("failed to load search candidates")
		return nil, err
	}

	return model.Search(candidates, term)
}

func (s *personService) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count people")
		return 0, err
	}
	return count, nil
}

func (s *personService) List(ctx context.Context) ([]model.Person, error) {
	people, err := s.repo.List(ctx, model.MaxListSize)
	if err != nil {
		log.Error().Err(err).Msg("failed to list people")
		return nil, err
	}
	return people, nil
}
