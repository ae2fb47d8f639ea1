package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rotafacil/transit-api/internal/domains/cities/domain"
	"github.com/rotafacil/transit-api/internal/domains/cities/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists municipalities in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&cityRecord{})
	}
	return repo
}

type cityRecord struct {
	ID        string     `gorm:"column:id;primaryKey;type:uuid"`
	Name      string     `gorm:"column:name;type:varchar(100);index"`
	State     string     `gorm:"column:state;type:varchar(2)"`
	IBGECode  int        `gorm:"column:ibge_code;uniqueIndex"`
	CreatedAt time.Time  `gorm:"column:created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (cityRecord) TableName() string { return "cities" }

func (r *Repository) Create(ctx context.Context, city *domain.City) (*domain.City, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := toRecord(city)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.City, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record cityRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.City, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []cityRecord
	if err := r.db.WithContext(ctx).Order("state, name").Find(&records).Error; err != nil {
		return nil, err
	}
	cities := make([]*domain.City, 0, len(records))
	for i := range records {
		cities = append(cities, records[i].toDomain())
	}
	return cities, nil
}

func (r *Repository) FindByNameAndCode(ctx context.Context, name string, ibgeCode int) (*domain.City, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record cityRecord
	err := r.db.WithContext(ctx).First(&record, "name = ? AND ibge_code = ?", name, ibgeCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) ExistsByID(ctx context.Context, id string) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&cityRecord{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Upsert stores the city keyed by IBGE code. An existing row keeps its
// identifier and creation time; name and state are refreshed.
func (r *Repository) Upsert(ctx context.Context, city *domain.City) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	record := toRecord(city)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ibge_code"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":       record.Name,
			"state":      record.State,
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(&record)
	if result.Error != nil {
		return false, result.Error
	}

	var stored cityRecord
	if err := r.db.WithContext(ctx).First(&stored, "ibge_code = ?", record.IBGECode).Error; err != nil {
		return false, err
	}
	return stored.ID == record.ID, nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres city repository not configured")
	}
	return nil
}

func toRecord(city *domain.City) cityRecord {
	return cityRecord{
		ID:        city.ID,
		Name:      city.Name,
		State:     city.State,
		IBGECode:  city.IBGECode,
		CreatedAt: city.CreatedAt,
		UpdatedAt: city.UpdatedAt,
	}
}

func (r cityRecord) toDomain() *domain.City {
	return &domain.City{
		ID:        r.ID,
		Name:      r.Name,
		State:     r.State,
		IBGECode:  r.IBGECode,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
