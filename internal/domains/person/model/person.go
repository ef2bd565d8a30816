package model

import (
	"github.com/google/uuid"
)

// Person is the only entity stored by the service.
// JSON keys follow the public API contract (apelido, nome, nascimento).
type Person struct {
	// Identity - assigned by the service right before insert
	ID uuid.UUID `json:"id" db:"id"`

	Nickname  string `json:"apelido" db:"nickname"`      // Required, unique, max 32 chars
	Name      string `json:"nome" db:"name"`             // Required, max 100 chars
	BirthDate string `json:"nascimento" db:"birth_date"` // YYYY-MM-DD, kept as submitted

	// Stack is nil when the caller omitted it. Order and duplicates are kept.
	Stack []string `json:"stack" db:"stack"`
}
