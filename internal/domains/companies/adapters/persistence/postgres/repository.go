package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rotafacil/transit-api/internal/domains/companies/domain"
	"github.com/rotafacil/transit-api/internal/domains/companies/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists carriers in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&companyRecord{})
	}
	return repo
}

type companyRecord struct {
	ID        string     `gorm:"column:id;primaryKey;type:uuid"`
	LegalName string     `gorm:"column:legal_name;type:varchar(100);uniqueIndex"`
	TradeName string     `gorm:"column:trade_name;type:varchar(100)"`
	CNPJ      string     `gorm:"column:cnpj;type:varchar(14);uniqueIndex"`
	CityID    *string    `gorm:"column:city_id;type:uuid"`
	CreatedAt time.Time  `gorm:"column:created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (companyRecord) TableName() string { return "companies" }

func (r *Repository) Create(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := toRecord(company)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ports.ErrCNPJTaken
		}
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record companyRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Company, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []companyRecord
	if err := r.db.WithContext(ctx).Order("trade_name").Find(&records).Error; err != nil {
		return nil, err
	}
	companies := make([]*domain.Company, 0, len(records))
	for i := range records {
		companies = append(companies, records[i].toDomain())
	}
	return companies, nil
}

func (r *Repository) Update(ctx context.Context, company *domain.Company) (*domain.Company, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := toRecord(company)
	result := r.db.WithContext(ctx).Model(&companyRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{
			"legal_name": record.LegalName,
			"trade_name": record.TradeName,
			"cnpj":       record.CNPJ,
			"city_id":    record.CityID,
			"updated_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ports.ErrCNPJTaken
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return r.GetByID(ctx, record.ID)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&companyRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *Repository) ExistsByID(ctx context.Context, id string) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&companyRecord{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *Repository) FindByCNPJ(ctx context.Context, cnpj string) (*domain.Company, error) {
	return r.findOne(ctx, "cnpj = ?", cnpj)
}

func (r *Repository) FindByLegalName(ctx context.Context, legalName string) (*domain.Company, error) {
	return r.findOne(ctx, "legal_name = ?", legalName)
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.Company, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record companyRecord
	if err := r.db.WithContext(ctx).First(&record, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres company repository not configured")
	}
	return nil
}

func toRecord(company *domain.Company) companyRecord {
	record := companyRecord{
		ID:        company.ID,
		LegalName: company.LegalName,
		TradeName: company.TradeName,
		CNPJ:      company.CNPJ,
		CreatedAt: company.CreatedAt,
		UpdatedAt: company.UpdatedAt,
	}
	if company.CityID != "" {
		cityID := company.CityID
		record.CityID = &cityID
	}
	return record
}

func (r companyRecord) toDomain() *domain.Company {
	company := &domain.Company{
		ID:        r.ID,
		LegalName: r.LegalName,
		TradeName: r.TradeName,
		CNPJ:      r.CNPJ,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.CityID != nil {
		company.CityID = *r.CityID
	}
	return company
}
