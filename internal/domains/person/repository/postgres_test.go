package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rinha-backend/internal/domains/person/model"
)

func TestClassifyInsertError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantTaken    bool
		wantStorage  bool
		wantPgErrors bool
	}{
		{
			name:      "nickname unique violation",
			err:       &pgconn.PgError{Code: "23505", ConstraintName: "people_nickname_key"},
			wantTaken: true,
		},
		{
			name:         "primary key unique violation",
			err:          &pgconn.PgError{Code: "23505", ConstraintName: "people_pkey"},
			wantStorage:  true,
			wantPgErrors: true,
		},
		{
			name:         "value too long",
			err:          &pgconn.PgError{Code: "22001"},
			wantStorage:  true,
			wantPgErrors: true,
		},
		{
			name:        "connection failure",
			err:         errors.New("dial tcp: connection refused"),
			wantStorage: true,
		},
		{
			name:        "context deadline",
			err:         context.DeadlineExceeded,
			wantStorage: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyInsertError(tt.err)

			if tt.wantTaken {
				assert.ErrorIs(t, got, model.ErrNicknameTaken)
				assert.ErrorIs(t, got, model.ErrInvalidPerson)
				assert.NotErrorIs(t, got, model.ErrStorage)
			}
			if tt.wantStorage {
				assert.ErrorIs(t, got, model.ErrStorage)
				assert.NotErrorIs(t, got, model.ErrInvalidPerson)
				assert.ErrorIs(t, got, tt.err)
			}
			if tt.wantPgErrors {
				var pgErr *pgconn.PgError
				assert.True(t, errors.As(got, &pgErr))
			}
		})
	}
}

func TestClassifyInsertError_WrappedPgError(t *testing.T) {
	wrapped := errors.Join(errors.New("exec"), &pgconn.PgError{Code: "23505", ConstraintName: "people_nickname_key"})
	assert.ErrorIs(t, classifyInsertError(wrapped), model.ErrNicknameTaken)
}

func TestEncodeDecodeStack(t *testing.T) {
	tests := []struct {
		name  string
		stack []string
	}{
		{"absent", nil},
		{"empty", []string{}},
		{"ordered with duplicates", []string{"Go", "C#", "Go"}},
		{"comma inside tag", []string{"a,b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := encodeStack(tt.stack)
			require.NoError(t, err)

			got, err := decodeStack(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.stack, got)
			assert.Equal(t, tt.stack == nil, got == nil)
		})
	}
}

func TestEncodeStack_NilIsSQLNull(t *testing.T) {
	raw, err := encodeStack(nil)
	require.NoError(t, err)
	assert.Nil(t, raw)

	raw, err = encodeStack([]string{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestDecodeStack_JSONNull(t *testing.T) {
	got, err := decodeStack([]byte("null"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDecodeStack_Malformed(t *testing.T) {
	_, err := decodeStack([]byte(`{"not":"a list"}`))
	assert.Error(t, err)
}

func TestCreate_RejectsUnassignedID(t *testing.T) {
	repo := NewPostgresRepository(nil)

	err := repo.Create(context.Background(), &model.Person{Nickname: "x", Name: "y", BirthDate: "2000-01-01"})

	assert.ErrorIs(t, err, model.ErrInvariantViolation)
}
