package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/rotafacil/transit-api/internal/domains/vehicles/domain"
	"github.com/rotafacil/transit-api/internal/domains/vehicles/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists vehicles in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&vehicleRecord{})
	}
	return repo
}

type vehicleRecord struct {
	ID        string         `gorm:"column:id;primaryKey;type:uuid"`
	Name      string         `gorm:"column:name;type:varchar(100)"`
	Plate     *string        `gorm:"column:plate;type:varchar(8)"`
	SeatCount int            `gorm:"column:seat_count"`
	Amenities pq.StringArray `gorm:"column:amenities;type:text[]"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt *time.Time     `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (vehicleRecord) TableName() string { return "vehicles" }

func (r *Repository) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := toRecord(vehicle)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record vehicleRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []vehicleRecord
	if err := r.db.WithContext(ctx).Order("name").Find(&records).Error; err != nil {
		return nil, err
	}
	vehicles := make([]*domain.Vehicle, 0, len(records))
	for i := range records {
		vehicles = append(vehicles, records[i].toDomain())
	}
	return vehicles, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&vehicleRecord{}, "id = ?", id)
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
	err := r.db.WithContext(ctx).Model(&vehicleRecord{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres vehicle repository not configured")
	}
	return nil
}

func toRecord(vehicle *domain.Vehicle) vehicleRecord {
	record := vehicleRecord{
		ID:        vehicle.ID,
		Name:      vehicle.Name,
		SeatCount: vehicle.SeatCount,
		Amenities: pq.StringArray(vehicle.Amenities),
		CreatedAt: vehicle.CreatedAt,
		UpdatedAt: vehicle.UpdatedAt,
	}
	if vehicle.Plate != "" {
		plate := vehicle.Plate
		record.Plate = &plate
	}
	return record
}

func (r vehicleRecord) toDomain() *domain.Vehicle {
	vehicle := &domain.Vehicle{
		ID:        r.ID,
		Name:      r.Name,
		SeatCount: r.SeatCount,
		Amenities: []string(r.Amenities),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Plate != nil {
		vehicle.Plate = *r.Plate
	}
	return vehicle
}
