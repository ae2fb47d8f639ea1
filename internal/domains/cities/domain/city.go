package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName     = errors.New("city name must have at least 2 characters")
	ErrInvalidState    = errors.New("state must be a 2-letter federative unit code")
	ErrInvalidIBGECode = errors.New("ibge code must be greater than zero")
)

// City models a municipality validated against the IBGE registry.
type City struct {
	ID        string
	Name      string
	State     string
	IBGECode  int
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// NewCity validates and constructs a City with a fresh identifier.
func NewCity(name, state string, ibgeCode int) (*City, error) {
	city := &City{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(name),
		State:    strings.ToUpper(strings.TrimSpace(state)),
		IBGECode: ibgeCode,
	}
	if err := city.Validate(); err != nil {
		return nil, err
	}
	return city, nil
}

// Validate enforces the municipality invariants.
func (c *City) Validate() error {
	if len([]rune(c.Name)) < 2 {
		return ErrInvalidName
	}
	if len(c.State) != 2 {
		return ErrInvalidState
	}
	if c.IBGECode <= 0 {
		return ErrInvalidIBGECode
	}
	return nil
}

// ImportReport summarizes one state-wide municipality import.
type ImportReport struct {
	State    string
	Imported int
	Skipped  int
}
