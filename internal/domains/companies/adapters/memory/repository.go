// Package memory provides an in-memory carrier repository used by tests and
// the storage-free run mode.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rotafacil/transit-api/internal/domains/companies/domain"
	"github.com/rotafacil/transit-api/internal/domains/companies/ports"
)

var _ ports.Repository = (*Repository)(nil)

type Repository struct {
	mu        sync.RWMutex
	companies map[string]domain.Company
	clock     func() time.Time
}

func NewRepository() *Repository {
	return &Repository{
		companies: make(map[string]domain.Company),
		clock:     time.Now,
	}
}

// WithClock overrides the timestamp source, used by tests.
func (r *Repository) WithClock(clock func() time.Time) *Repository {
	r.clock = clock
	return r
}

func (r *Repository) Create(_ context.Context, company *domain.Company) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.companies {
		if existing.CNPJ == company.CNPJ {
			return nil, ports.ErrCNPJTaken
		}
		if existing.LegalName == company.LegalName {
			return nil, ports.ErrLegalNameTaken
		}
	}
	stored := *company
	stored.CreatedAt = r.clock()
	stored.UpdatedAt = nil
	r.companies[stored.ID] = stored
	clone := stored
	return &clone, nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.companies[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := stored
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	companies := make([]*domain.Company, 0, len(r.companies))
	for _, stored := range r.companies {
		clone := stored
		companies = append(companies, &clone)
	}
	return companies, nil
}

func (r *Repository) Update(_ context.Context, company *domain.Company) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.companies[company.ID]
	if !ok {
		return nil, ports.ErrNotFound
	}
	for id, other := range r.companies {
		if id != company.ID && other.CNPJ == company.CNPJ {
			return nil, ports.ErrCNPJTaken
		}
	}
	updated := *company
	updated.CreatedAt = stored.CreatedAt
	now := r.clock()
	updated.UpdatedAt = &now
	r.companies[updated.ID] = updated
	clone := updated
	return &clone, nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.companies[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.companies, id)
	return nil
}

func (r *Repository) ExistsByID(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.companies[id]
	return ok, nil
}

func (r *Repository) FindByCNPJ(_ context.Context, cnpj string) (*domain.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, stored := range r.companies {
		if stored.CNPJ == cnpj {
			clone := stored
			return &clone, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) FindByLegalName(_ context.Context, legalName string) (*domain.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, stored := range r.companies {
		if stored.LegalName == legalName {
			clone := stored
			return &clone, nil
		}
	}
	return nil, ports.ErrNotFound
}
