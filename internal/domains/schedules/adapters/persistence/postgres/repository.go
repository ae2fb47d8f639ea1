package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rotafacil/transit-api/internal/domains/schedules/domain"
	"github.com/rotafacil/transit-api/internal/domains/schedules/ports"
	"github.com/rotafacil/transit-api/internal/shared/timetable"
)

var _ ports.Repository = (*Repository)(nil)

// Repository persists schedules in PostgreSQL using GORM. The unique index
// over (route_id, day_of_week, departure_time) rejects duplicate slots that
// race past the service pre-check.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&scheduleRecord{})
	}
	return repo
}

type scheduleRecord struct {
	ID            string     `gorm:"column:id;primaryKey;type:uuid"`
	RouteID       string     `gorm:"column:route_id;type:uuid;uniqueIndex:idx_schedules_slot"`
	DayOfWeek     string     `gorm:"column:day_of_week;type:varchar(16);uniqueIndex:idx_schedules_slot"`
	DepartureTime string     `gorm:"column:departure_time;type:varchar(8);uniqueIndex:idx_schedules_slot"`
	ArrivalTime   string     `gorm:"column:arrival_time;type:varchar(8)"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (scheduleRecord) TableName() string { return "schedules" }

func (r *Repository) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	record := toRecord(schedule)
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ports.ErrSlotTaken
		}
		return nil, err
	}
	return r.GetByID(ctx, record.ID)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record scheduleRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

func (r *Repository) ListByRoute(ctx context.Context, routeID string) ([]*domain.Schedule, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []scheduleRecord
	err := r.db.WithContext(ctx).
		Where("route_id = ?", routeID).
		Order("day_of_week, departure_time").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	schedules := make([]*domain.Schedule, 0, len(records))
	for i := range records {
		schedules = append(schedules, records[i].toDomain())
	}
	return schedules, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&scheduleRecord{}, "id = ?", id)
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
	err := r.db.WithContext(ctx).Model(&scheduleRecord{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *Repository) SlotExists(ctx context.Context, routeID, day, departureTime string) (bool, error) {
	if err := r.ensureDB(); err != nil {
		return false, err
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&scheduleRecord{}).
		Where("route_id = ? AND day_of_week = ? AND departure_time = ?", routeID, day, departureTime).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres schedule repository not configured")
	}
	return nil
}

func toRecord(schedule *domain.Schedule) scheduleRecord {
	return scheduleRecord{
		ID:            schedule.ID,
		RouteID:       schedule.RouteID,
		DayOfWeek:     string(schedule.DayOfWeek),
		DepartureTime: schedule.DepartureTime,
		ArrivalTime:   schedule.ArrivalTime,
		CreatedAt:     schedule.CreatedAt,
		UpdatedAt:     schedule.UpdatedAt,
	}
}

func (r scheduleRecord) toDomain() *domain.Schedule {
	return &domain.Schedule{
		ID:            r.ID,
		RouteID:       r.RouteID,
		DayOfWeek:     timetable.DayOfWeek(r.DayOfWeek),
		DepartureTime: r.DepartureTime,
		ArrivalTime:   r.ArrivalTime,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
