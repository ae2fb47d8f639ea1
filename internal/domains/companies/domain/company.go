package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidLegalName = errors.New("legal name must have between 2 and 100 characters")
	ErrInvalidTradeName = errors.New("trade name must have between 2 and 100 characters")
	ErrInvalidCNPJ      = errors.New("cnpj must have exactly 14 digits")
)

var cnpjRe = regexp.MustCompile(`^\d{14}$`)

// Company models a transport carrier.
type Company struct {
	ID        string
	LegalName string
	TradeName string
	CNPJ      string
	CityID    string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// CreateParams carries the caller-supplied fields for a new company.
type CreateParams struct {
	LegalName string
	TradeName string
	CNPJ      string
	CityID    string
}

// UpdateParams carries the fields of a partial company update. Nil fields are
// left untouched.
type UpdateParams struct {
	LegalName *string
	TradeName *string
	CNPJ      *string
	CityID    *string
}

// Empty reports whether the update carries no fields at all.
func (p UpdateParams) Empty() bool {
	return p.LegalName == nil && p.TradeName == nil && p.CNPJ == nil && p.CityID == nil
}

// NewCompany validates and constructs a Company with a fresh identifier.
// Timestamps are left zero for the storage layer to assign.
func NewCompany(params CreateParams) (*Company, error) {
	company := &Company{
		ID:        uuid.NewString(),
		LegalName: strings.TrimSpace(params.LegalName),
		TradeName: strings.TrimSpace(params.TradeName),
		CNPJ:      strings.TrimSpace(params.CNPJ),
		CityID:    strings.TrimSpace(params.CityID),
	}
	if err := company.Validate(); err != nil {
		return nil, err
	}
	return company, nil
}

// Validate enforces the carrier invariants.
func (c *Company) Validate() error {
	if !validName(c.LegalName) {
		return ErrInvalidLegalName
	}
	if !validName(c.TradeName) {
		return ErrInvalidTradeName
	}
	if !cnpjRe.MatchString(c.CNPJ) {
		return ErrInvalidCNPJ
	}
	return nil
}

// Apply folds a partial update into the company and revalidates.
func (c *Company) Apply(params UpdateParams) error {
	if params.LegalName != nil {
		c.LegalName = strings.TrimSpace(*params.LegalName)
	}
	if params.TradeName != nil {
		c.TradeName = strings.TrimSpace(*params.TradeName)
	}
	if params.CNPJ != nil {
		c.CNPJ = strings.TrimSpace(*params.CNPJ)
	}
	if params.CityID != nil {
		c.CityID = strings.TrimSpace(*params.CityID)
	}
	return c.Validate()
}

func validName(s string) bool {
	n := len([]rune(s))
	return n >= 2 && n <= 100
}
