package model

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Constants for validation
const (
	MaxNicknameLength  = 32
	MaxNameLength      = 100
	MaxStackItemLength = 32
	BirthDateLayout    = "2006-01-02"
)

// time.Parse accepts a signed year, so the shape is pinned separately.
var birthDatePattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// time.Parse also accepts year 0; calendar years start at 0001.
var errYearZero = validation.NewError("validation_date_year_zero", "year must be 0001 or later")

func nonZeroYear(value interface{}) error {
	if s, _ := value.(string); strings.HasPrefix(s, "0000-") {
		return errYearZero
	}
	return nil
}

// CreatePersonRequest - POST /pessoas
// A candidate has no id; any id in the payload is ignored.
type CreatePersonRequest struct {
	Nickname  string   `json:"apelido"`
	Name      string   `json:"nome"`
	BirthDate string   `json:"nascimento"`
	Stack     []string `json:"stack"`
}

// Validate checks every field rule. Emptiness is literal: "  " is not empty.
// Lengths count characters (runes) and are inclusive.
func (r CreatePersonRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BirthDate,
			validation.Required,
			validation.Match(birthDatePattern),
			validation.Date(BirthDateLayout),
			validation.By(nonZeroYear),
		),
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, MaxNameLength)),
		validation.Field(&r.Nickname, validation.Required, validation.RuneLength(1, MaxNicknameLength)),
		validation.Field(&r.Stack,
			validation.Each(validation.Required, validation.RuneLength(1, MaxStackItemLength)),
		),
	)
}

// IsValid reports whether the candidate passes all rules.
func (r CreatePersonRequest) IsValid() bool {
	return r.Validate() == nil
}

// ToEntity converts a validated candidate into a Person with the given id.
func (r *CreatePersonRequest) ToEntity(id uuid.UUID) *Person {
	return &Person{
		ID:        id,
		Nickname:  r.Nickname,
		Name:      r.Name,
		BirthDate: r.BirthDate,
		Stack:     r.Stack,
	}
}

// CreatePersonResponse - body of 201 Created
type CreatePersonResponse struct {
	ID uuid.UUID `json:"id"`
}
