package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rotafacil/transit-api/internal/domains/schedules/adapters/memory"
	"github.com/rotafacil/transit-api/internal/domains/schedules/domain"
	"github.com/rotafacil/transit-api/internal/shared/timetable"
)

type routeLookupStub struct {
	missing map[string]bool
	err     error
}

func (s *routeLookupStub) RouteExists(_ context.Context, id string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return !s.missing[id], nil
}

func validParams() domain.CreateParams {
	return domain.CreateParams{
		RouteID:       "route-1",
		DayOfWeek:     timetable.Monday,
		DepartureTime: "07:00:00",
		ArrivalTime:   "09:30:00",
	}
}

func TestService_Create(t *testing.T) {
	svc := NewService(memory.NewRepository(), &routeLookupStub{missing: map[string]bool{}})

	schedule, err := svc.Create(context.Background(), validParams())
	require.NoError(t, err)
	require.NotEmpty(t, schedule.ID)
	require.Equal(t, timetable.Monday, schedule.DayOfWeek)
	require.False(t, schedule.CreatedAt.IsZero())
}

func TestService_Create_UnknownRoute(t *testing.T) {
	svc := NewService(memory.NewRepository(), &routeLookupStub{missing: map[string]bool{"route-1": true}})

	_, err := svc.Create(context.Background(), validParams())
	var unknown *UnknownRouteError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "route-1", unknown.ID)
}

func TestService_Create_DuplicateSlot(t *testing.T) {
	svc := NewService(memory.NewRepository(), &routeLookupStub{missing: map[string]bool{}})
	ctx := context.Background()

	_, err := svc.Create(ctx, validParams())
	require.NoError(t, err)

	_, err = svc.Create(ctx, validParams())
	var taken *SlotTakenError
	require.ErrorAs(t, err, &taken)
	require.Equal(t, "route-1", taken.RouteID)
	require.Equal(t, "07:00:00", taken.DepartureTime)
}

func TestService_Create_SameTimeDifferentDayIsAllowed(t *testing.T) {
	svc := NewService(memory.NewRepository(), &routeLookupStub{missing: map[string]bool{}})
	ctx := context.Background()

	_, err := svc.Create(ctx, validParams())
	require.NoError(t, err)

	params := validParams()
	params.DayOfWeek = timetable.Friday
	_, err = svc.Create(ctx, params)
	require.NoError(t, err)
}

func TestService_Create_InvalidParams(t *testing.T) {
	svc := NewService(memory.NewRepository(), &routeLookupStub{missing: map[string]bool{}})
	ctx := context.Background()

	params := validParams()
	params.DayOfWeek = "Feriado"
	_, err := svc.Create(ctx, params)
	require.ErrorIs(t, err, timetable.ErrInvalidDay)

	params = validParams()
	params.DepartureTime = "7am"
	_, err = svc.Create(ctx, params)
	require.ErrorIs(t, err, timetable.ErrInvalidTimeOfDay)

	params = validParams()
	params.RouteID = " "
	_, err = svc.Create(ctx, params)
	require.ErrorIs(t, err, domain.ErrMissingRoute)
}

func TestService_Create_LookupFailurePropagates(t *testing.T) {
	lookupErr := errors.New("routes unavailable")
	svc := NewService(memory.NewRepository(), &routeLookupStub{err: lookupErr})

	_, err := svc.Create(context.Background(), validParams())
	require.ErrorIs(t, err, lookupErr)
}

func TestService_ListByRouteAndDelete(t *testing.T) {
	svc := NewService(memory.NewRepository(), &routeLookupStub{missing: map[string]bool{}})
	ctx := context.Background()

	first, err := svc.Create(ctx, validParams())
	require.NoError(t, err)
	params := validParams()
	params.DepartureTime = "18:00:00"
	params.ArrivalTime = "20:30:00"
	_, err = svc.Create(ctx, params)
	require.NoError(t, err)

	schedules, err := svc.ListByRoute(ctx, "route-1")
	require.NoError(t, err)
	require.Len(t, schedules, 2)

	exists, err := svc.ScheduleExists(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, svc.Delete(ctx, first.ID))
	var notFound *NotFoundError
	require.ErrorAs(t, svc.Delete(ctx, first.ID), &notFound)
}
