package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rotafacil/transit-api/internal/domains/offerings/domain"
	"github.com/rotafacil/transit-api/internal/domains/offerings/mapper"
	"github.com/rotafacil/transit-api/internal/domains/offerings/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists offerings in PostgreSQL using GORM. The schema carries a
// uniqueness constraint over (carrier_id, route_id, schedule_id, vehicle_id);
// the create path depends on it to close the check-then-insert race.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&mapper.Record{})
	}
	return repo
}

const searchColumns = `routes.name AS route,
	companies.trade_name AS carrier,
	offerings.price_cents AS price_cents,
	routes.distance_km AS distance_km,
	routes.estimated_duration AS estimated_duration,
	routes.main_road AS main_road,
	vehicles.name AS vehicle,
	schedules.day_of_week AS day_of_week,
	schedules.departure_time AS departure_time,
	schedules.arrival_time AS arrival_time`

// Search joins offerings with companies, routes, schedules, and vehicles.
// Inner joins drop offerings whose collaborators have since been deleted.
func (r *Repository) Search(ctx context.Context, filters domain.SearchFilters, page, pageSize int) ([]domain.SearchResultRow, error) {
	if err := r.ensureDB(); err != nil {
		return nil, &ports.StorageError{Op: "search", Err: err}
	}
	query := r.db.WithContext(ctx).
		Table("offerings").
		Select(searchColumns).
		Joins("INNER JOIN companies ON companies.id = offerings.carrier_id").
		Joins("INNER JOIN routes ON routes.id = offerings.route_id").
		Joins("INNER JOIN schedules ON schedules.id = offerings.schedule_id").
		Joins("INNER JOIN vehicles ON vehicles.id = offerings.vehicle_id")
	conditions, args := FilterClauses(filters)
	for i, condition := range conditions {
		query = query.Where(condition, args[i])
	}
	var records []mapper.SearchRecord
	err := query.
		Order("schedules.day_of_week, schedules.departure_time, offerings.id").
		Limit(pageSize).
		Offset(page * pageSize).
		Scan(&records).Error
	if err != nil {
		return nil, &ports.StorageError{Op: "search", Err: err}
	}
	rows := make([]domain.SearchResultRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, mapper.SearchRowToDomain(record))
	}
	return rows, nil
}

// FilterClauses folds the present filters into parameterized predicates, one
// per field. Absent fields contribute nothing — no wildcard clauses.
func FilterClauses(filters domain.SearchFilters) ([]string, []any) {
	var conditions []string
	var args []any
	if filters.DayOfWeek != "" {
		conditions = append(conditions, "schedules.day_of_week = ?")
		args = append(args, string(filters.DayOfWeek))
	}
	if filters.DepartureTime != "" {
		conditions = append(conditions, "schedules.departure_time = ?")
		args = append(args, filters.DepartureTime)
	}
	if filters.OriginCityID != "" {
		conditions = append(conditions, "routes.origin_city_id = ?")
		args = append(args, filters.OriginCityID)
	}
	if filters.DestinationCityID != "" {
		conditions = append(conditions, "routes.destination_city_id = ?")
		args = append(args, filters.DestinationCityID)
	}
	return conditions, args
}

// Exists reports whether an offering with exactly this 4-tuple is stored.
func (r *Repository) Exists(ctx context.Context, carrierID, routeID, scheduleID, vehicleID string) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, &ports.StorageError{Op: "exists", Err: err}
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&mapper.Record{}).
		Where("carrier_id = ? AND route_id = ? AND schedule_id = ? AND vehicle_id = ?",
			carrierID, routeID, scheduleID, vehicleID).
		Count(&count).Error
	if err != nil {
		return false, &ports.StorageError{Op: "exists", Err: err}
	}
	return count > 0, nil
}

// Create inserts one offering inside a transaction and returns the stored
// row, including the timestamps the storage layer assigned. A unique-index
// violation surfaces as ports.ErrDuplicate so the service can report the race
// loser as a conflict instead of a generic failure.
func (r *Repository) Create(ctx context.Context, offering *domain.Offering) (*domain.Offering, error) {
	if err := r.ensureDB(); err != nil {
		return nil, &ports.StorageError{Op: "create", Err: err}
	}
	if offering == nil {
		return nil, &ports.StorageError{Op: "create", Err: errors.New("offering is nil")}
	}
	record := mapper.ToPersistence(offering)
	var stored mapper.Record
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		return tx.First(&stored, "id = ?", record.ID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ports.ErrDuplicate
		}
		return nil, &ports.StorageError{Op: "create", Err: err}
	}
	return mapper.ToDomain(stored), nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres offerings repository not configured")
	}
	return nil
}
