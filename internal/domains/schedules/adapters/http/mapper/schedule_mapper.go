package mapper

import (
	"time"

	"github.com/rotafacil/transit-api/internal/domains/schedules/domain"
	"github.com/rotafacil/transit-api/internal/shared/timetable"
)

// CreateScheduleRequest is the transport payload for a timetable entry.
type CreateScheduleRequest struct {
	RouteID       string `json:"idRota" binding:"required"`
	DayOfWeek     string `json:"diaSemana" binding:"required"`
	DepartureTime string `json:"horaPartida" binding:"required"`
	ArrivalTime   string `json:"horaChegada" binding:"required"`
}

// Schedule is the transport-level timetable entry payload.
type Schedule struct {
	ID            string     `json:"id"`
	RouteID       string     `json:"idRota"`
	DayOfWeek     string     `json:"diaSemana"`
	DepartureTime string     `json:"horaPartida"`
	ArrivalTime   string     `json:"horaChegada"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// ToDomainParams converts a create request into domain creation parameters.
func ToDomainParams(req CreateScheduleRequest) domain.CreateParams {
	return domain.CreateParams{
		RouteID:       req.RouteID,
		DayOfWeek:     timetable.DayOfWeek(req.DayOfWeek),
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	}
}

// FromDomainSchedule converts a stored entry into its transport form.
func FromDomainSchedule(schedule *domain.Schedule) Schedule {
	if schedule == nil {
		return Schedule{}
	}
	return Schedule{
		ID:            schedule.ID,
		RouteID:       schedule.RouteID,
		DayOfWeek:     string(schedule.DayOfWeek),
		DepartureTime: schedule.DepartureTime,
		ArrivalTime:   schedule.ArrivalTime,
		CreatedAt:     schedule.CreatedAt,
		UpdatedAt:     schedule.UpdatedAt,
	}
}

// FromDomainSchedules converts a slice of entries to transport form.
func FromDomainSchedules(schedules []*domain.Schedule) []Schedule {
	result := make([]Schedule, 0, len(schedules))
	for _, schedule := range schedules {
		result = append(result, FromDomainSchedule(schedule))
	}
	return result
}
