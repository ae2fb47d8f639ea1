package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rotafacil/transit-api/internal/domains/routes/domain"
	"github.com/rotafacil/transit-api/internal/domains/routes/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists routes in PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&routeRecord{})
	}
	return repo
}

type routeRecord struct {
	ID                string     `gorm:"column:id;primaryKey;type:uuid"`
	Name              string     `gorm:"column:name;type:varchar(100)"`
	OriginCityID      string     `gorm:"column:origin_city_id;type:uuid;index"`
	DestinationCityID string     `gorm:"column:destination_city_id;type:uuid;index"`
	DistanceKm        float64    `gorm:"column:distance_km"`
	EstimatedDuration string     `gorm:"column:estimated_duration;type:varchar(16)"`
	MainRoad          *string    `gorm:"column:main_road;type:varchar(100)"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (routeRecord) TableName() string { return "routes" }

func (r *Repository) Create(ctx context.Context, route *domain.Route) (*domain.Route, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := toRecord(route)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record routeRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) List(ctx context.Context) ([]*domain.Route, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []routeRecord
	if err := r.db.WithContext(ctx).Order("name").Find(&records).Error; err != nil {
		return nil, err
	}
	routes := make([]*domain.Route, 0, len(records))
	for i := range records {
		routes = append(routes, records[i].toDomain())
	}
	return routes, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&routeRecord{}, "id = ?", id)
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
	err := r.db.WithContext(ctx).Model(&routeRecord{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres route repository not configured")
	}
	return nil
}

func toRecord(route *domain.Route) routeRecord {
	record := routeRecord{
		ID:                route.ID,
		Name:              route.Name,
		OriginCityID:      route.OriginCityID,
		DestinationCityID: route.DestinationCityID,
		DistanceKm:        route.DistanceKm,
		EstimatedDuration: route.EstimatedDuration,
		CreatedAt:         route.CreatedAt,
		UpdatedAt:         route.UpdatedAt,
	}
	if route.MainRoad != "" {
		mainRoad := route.MainRoad
		record.MainRoad = &mainRoad
	}
	return record
}

func (r routeRecord) toDomain() *domain.Route {
	route := &domain.Route{
		ID:                r.ID,
		Name:              r.Name,
		OriginCityID:      r.OriginCityID,
		DestinationCityID: r.DestinationCityID,
		DistanceKm:        r.DistanceKm,
		EstimatedDuration: r.EstimatedDuration,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if r.MainRoad != nil {
		route.MainRoad = *r.MainRoad
	}
	return route
}
