package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"rinha-backend/internal/domains/person/model"
)

const (
	uniqueViolationCode      = "23505"
	nicknameUniqueConstraint = "people_nickname_key"
)

// postgresRepository implements RepositoryInterface on top of pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new person repository instance
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// Create inserts the person as-is. The id must be assigned by the caller.
func (r *postgresRepository) Create(ctx context.Context, p *model.Person) error {
	if p.ID == uuid.Nil {
		return fmt.Errorf("%w: insert without assigned id", model.ErrInvariantViolation)
	}

	stack, err := encodeStack(p.Stack)
	if err != nil {
		return fmt.Errorf("%w: encode stack: %w", model.ErrStorage, err)
	}

	query := `
        INSERT INTO people (id, nickname, name, birth_date, stack)
        VALUES ($1, $2, $3, $4, $5)
    `

	if _, err := r.pool.Exec(ctx, query, p.ID, p.Nickname, p.Name, p.BirthDate, stack); err != nil {
		return classifyInsertError(err)
	}

	return nil
}

// GetByID retrieves a person by UUID
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Person, error) {
	query := `
        SELECT id, nickname, name, birth_date, stack
        FROM people
        WHERE id = $1
    `

	p, err := scanPerson(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPersonNotFound
		}
		return nil, fmt.Errorf("%w: get person by id: %w", model.ErrStorage, err)
	}

	return p, nil
}

// List loads at most limit people. No ordering is imposed.
func (r *postgresRepository) List(ctx context.Context, limit int) ([]model.Person, error) {
	query := `
        SELECT id, nickname, name, birth_date, stack
        FROM people
        LIMIT $1
    `

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list people: %w", model.ErrStorage, err)
	}
	defer rows.Close()

	people := make([]model.Person, 0, min(limit, 64))
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan person: %w", model.ErrStorage, err)
		}
		people = append(people, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate people: %w", model.ErrStorage, err)
	}

	return people, nil
}

// Count returns the total number of people
func (r *postgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM people`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: count people: %w", model.ErrStorage, err)
	}
	return count, nil
}

func scanPerson(row pgx.Row) (*model.Person, error) {
	var (
		p     model.Person
		stack []byte
	)

	if err := row.Scan(&p.ID, &p.Nickname, &p.Name, &p.BirthDate, &stack); err != nil {
		return nil, err
	}

	decoded, err := decodeStack(stack)
	if err != nil {
		return nil, err
	}
	p.Stack = decoded

	return &p, nil
}

// classifyInsertError maps a nickname unique violation to model.ErrNicknameTaken.
// Everything else, including other unique violations, is a storage failure.
func classifyInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) &&
		pgErr.Code == uniqueViolationCode &&
		pgErr.ConstraintName == nicknameUniqueConstraint {
		return model.ErrNicknameTaken
	}
	return fmt.Errorf("%w: insert person: %w", model.ErrStorage, err)
}

// encodeStack keeps absent and empty stacks apart: nil is stored as SQL NULL,
// an empty slice as '[]'.
func encodeStack(stack []string) ([]byte, error) {
	if stack == nil {
		return nil, nil
	}
	return json.Marshal(stack)
}

func decodeStack(raw []byte) ([]string, error) {
	if raw == nil {
		return nil, nil
	}
	var stack []string
	if err := json.Unmarshal(raw, &stack); err != nil {
		return nil, fmt.Errorf("decode stack: %w", err)
	}
	if stack == nil {
		// jsonb 'null' literal
		return nil, nil
	}
	return stack, nil
}
