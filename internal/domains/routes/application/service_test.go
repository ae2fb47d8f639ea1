package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rotafacil/transit-api/internal/domains/routes/adapters/memory"
	"github.com/rotafacil/transit-api/internal/domains/routes/domain"
)

type cityLookupStub struct {
	missing map[string]bool
	err     error
	calls   []string
}

func (s *cityLookupStub) CityExists(_ context.Context, id string) (bool, error) {
	s.calls = append(s.calls, id)
	if s.err != nil {
		return false, s.err
	}
	return !s.missing[id], nil
}

func validParams() domain.CreateParams {
	return domain.CreateParams{
		Name:              "BH x Oliveira",
		OriginCityID:      "city-bh",
		DestinationCityID: "city-ol",
		DistanceKm:        150.5,
		EstimatedDuration: "02:30",
		MainRoad:          "BR-381",
	}
}

func TestService_Create(t *testing.T) {
	cities := &cityLookupStub{missing: map[string]bool{}}
	svc := NewService(memory.NewRepository(), cities)

	route, err := svc.Create(context.Background(), validParams())
	require.NoError(t, err)
	require.NotEmpty(t, route.ID)
	require.Equal(t, []string{"city-bh", "city-ol"}, cities.calls)
}

func TestService_Create_UnknownOriginFailsBeforeDestinationLookup(t *testing.T) {
	cities := &cityLookupStub{missing: map[string]bool{"city-bh": true}}
	svc := NewService(memory.NewRepository(), cities)

	_, err := svc.Create(context.Background(), validParams())
	var unknown *UnknownCityError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "origin", unknown.Role)
	require.Equal(t, []string{"city-bh"}, cities.calls)
}

func TestService_Create_UnknownDestination(t *testing.T) {
	cities := &cityLookupStub{missing: map[string]bool{"city-ol": true}}
	svc := NewService(memory.NewRepository(), cities)

	_, err := svc.Create(context.Background(), validParams())
	var unknown *UnknownCityError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "destination", unknown.Role)
}

func TestService_Create_LookupFailurePropagates(t *testing.T) {
	lookupErr := errors.New("cities unavailable")
	cities := &cityLookupStub{err: lookupErr}
	svc := NewService(memory.NewRepository(), cities)

	_, err := svc.Create(context.Background(), validParams())
	require.ErrorIs(t, err, lookupErr)
}

func TestService_Create_InvalidParams(t *testing.T) {
	cities := &cityLookupStub{missing: map[string]bool{}}
	svc := NewService(memory.NewRepository(), cities)

	params := validParams()
	params.DestinationCityID = params.OriginCityID
	_, err := svc.Create(context.Background(), params)
	require.ErrorIs(t, err, domain.ErrSameCity)
	require.Empty(t, cities.calls)

	params = validParams()
	params.DistanceKm = 0
	_, err = svc.Create(context.Background(), params)
	require.ErrorIs(t, err, domain.ErrInvalidDistance)
}

func TestService_GetDeleteExists(t *testing.T) {
	cities := &cityLookupStub{missing: map[string]bool{}}
	svc := NewService(memory.NewRepository(), cities)
	ctx := context.Background()

	route, err := svc.Create(ctx, validParams())
	require.NoError(t, err)

	fetched, err := svc.GetByID(ctx, route.ID)
	require.NoError(t, err)
	require.Equal(t, route.ID, fetched.ID)

	exists, err := svc.RouteExists(ctx, route.ID)
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, svc.Delete(ctx, route.ID))

	var notFound *NotFoundError
	_, err = svc.GetByID(ctx, route.ID)
	require.ErrorAs(t, err, &notFound)
}
