package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace
// adapter-level automigrate. Collaborator tables go first so the offerings
// join targets exist before the composite table.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&cityRecord{},
		&companyRecord{},
		&routeRecord{},
		&scheduleRecord{},
		&vehicleRecord{},
		&offeringRecord{},
	)
}

// City schema mirrors the cities Postgres adapter.
type cityRecord struct {
	ID        string     `gorm:"column:id;primaryKey;type:uuid"`
	Name      string     `gorm:"column:name;type:varchar(100);index"`
	State     string     `gorm:"column:state;type:varchar(2)"`
	IBGECode  int        `gorm:"column:ibge_code;uniqueIndex"`
	CreatedAt time.Time  `gorm:"column:created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (cityRecord) TableName() string { return "cities" }

// Company schema mirrors the companies Postgres adapter.
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

// Route schema mirrors the routes Postgres adapter.
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

// Schedule schema mirrors the schedules Postgres adapter.
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

// Vehicle schema mirrors the vehicles Postgres adapter.
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

// Offering schema mirrors the offerings record mapper. The composite unique
// index closes the create-time check-then-insert race.
type offeringRecord struct {
	ID         string     `gorm:"column:id;primaryKey;type:uuid"`
	CarrierID  string     `gorm:"column:carrier_id;type:uuid;uniqueIndex:idx_offerings_tuple"`
	RouteID    string     `gorm:"column:route_id;type:uuid;uniqueIndex:idx_offerings_tuple"`
	ScheduleID string     `gorm:"column:schedule_id;type:uuid;uniqueIndex:idx_offerings_tuple"`
	VehicleID  string     `gorm:"column:vehicle_id;type:uuid;uniqueIndex:idx_offerings_tuple"`
	PriceCents int64      `gorm:"column:price_cents"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  *time.Time `gorm:"column:updated_at;autoUpdateTime:false"`
}

func (offeringRecord) TableName() string { return "offerings" }
