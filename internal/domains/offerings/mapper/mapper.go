// Package mapper translates between the flat shapes the storage layer reads
// and writes and the domain-facing offering types. It performs no I/O and
// raises no business errors; malformed input is a programmer error.
package mapper

import (
	"time"

	"github.com/rotafacil/transit-api/internal/domains/offerings/domain"
	"github.com/rotafacil/transit-api/internal/shared/money"
	"github.com/rotafacil/transit-api/internal/shared/timetable"
)

// Record is the flat composite-persistence shape of an offering. The price is
// stored as integer centavos, never as a floating decimal.
type Record struct {
	ID         string     `gorm:"column:id;primaryKey;type:uuid"`
	CarrierID  string     `gorm:"column:carrier_id;type:uuid;uniqueIndex:idx_offerings_tuple"`
	RouteID    string     `gorm:"column:route_id;type:uuid;uniqueIndex:idx_offerings_tuple"`
	ScheduleID string     `gorm:"column:schedule_id;type:uuid;uniqueIndex:idx_offerings_tuple"`
	VehicleID  string     `gorm:"column:vehicle_id;type:uuid;uniqueIndex:idx_offerings_tuple"`
	PriceCents int64      `gorm:"column:price_cents"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (Record) TableName() string { return "offerings" }

// SearchRecord is the join-denormalized shape produced by the search query.
type SearchRecord struct {
	Route             string  `gorm:"column:route"`
	Carrier           string  `gorm:"column:carrier"`
	PriceCents        int64   `gorm:"column:price_cents"`
	DistanceKm        float64 `gorm:"column:distance_km"`
	EstimatedDuration string  `gorm:"column:estimated_duration"`
	MainRoad          *string `gorm:"column:main_road"`
	Vehicle           string  `gorm:"column:vehicle"`
	DayOfWeek         string  `gorm:"column:day_of_week"`
	DepartureTime     string  `gorm:"column:departure_time"`
	ArrivalTime       string  `gorm:"column:arrival_time"`
}

// ToDomain maps a stored composite row into the domain offering, converting
// centavos to decimal reais. Timestamps pass through unchanged.
func ToDomain(r Record) *domain.Offering {
	return &domain.Offering{
		ID:          r.ID,
		CarrierID:   r.CarrierID,
		RouteID:     r.RouteID,
		ScheduleID:  r.ScheduleID,
		VehicleID:   r.VehicleID,
		TicketPrice: money.ToMajorUnits(r.PriceCents),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ToPersistence maps a domain offering (possibly partial, as in a creation
// payload) into the flat row the repository writes. The decimal price becomes
// centavos; timestamps pass through as-is — defaulting them is the storage
// layer's job, not the mapper's.
func ToPersistence(o *domain.Offering) Record {
	return Record{
		ID:         o.ID,
		CarrierID:  o.CarrierID,
		RouteID:    o.RouteID,
		ScheduleID: o.ScheduleID,
		VehicleID:  o.VehicleID,
		PriceCents: money.ToMinorUnits(o.TicketPrice),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

// SearchRowToDomain maps one denormalized join row into the read model,
// converting centavos to decimal reais and flattening the nullable main road.
func SearchRowToDomain(r SearchRecord) domain.SearchResultRow {
	row := domain.SearchResultRow{
		Route:             r.Route,
		Carrier:           r.Carrier,
		TicketPrice:       money.ToMajorUnits(r.PriceCents),
		DistanceKm:        r.DistanceKm,
		EstimatedDuration: r.EstimatedDuration,
		Vehicle:           r.Vehicle,
		DayOfWeek:         timetable.DayOfWeek(r.DayOfWeek),
		DepartureTime:     r.DepartureTime,
		ArrivalTime:       r.ArrivalTime,
	}
	if r.MainRoad != nil {
		row.MainRoad = *r.MainRoad
	}
	return row
}
