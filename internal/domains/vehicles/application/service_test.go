package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rotafacil/transit-api/internal/domains/vehicles/adapters/memory"
	"github.com/rotafacil/transit-api/internal/domains/vehicles/domain"
)

func TestService_Create(t *testing.T) {
	svc := NewService(memory.NewRepository())

	vehicle, err := svc.Create(context.Background(), domain.CreateParams{
		Name:      "Marcopolo G7",
		Plate:     "abc1d23",
		SeatCount: 46,
		Amenities: []string{"wifi", " ar-condicionado ", ""},
	})
	require.NoError(t, err)
	require.NotEmpty(t, vehicle.ID)
	require.Equal(t, "ABC1D23", vehicle.Plate)
	require.Equal(t, []string{"wifi", "ar-condicionado"}, vehicle.Amenities)
	require.False(t, vehicle.CreatedAt.IsZero())
}

func TestService_Create_Invalid(t *testing.T) {
	svc := NewService(memory.NewRepository())

	_, err := svc.Create(context.Background(), domain.CreateParams{Name: "x"})
	require.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(context.Background(), domain.CreateParams{Name: "Marcopolo G7", SeatCount: -1})
	require.ErrorIs(t, err, domain.ErrInvalidSeatCount)
}

func TestService_GetDeleteExists(t *testing.T) {
	svc := NewService(memory.NewRepository())
	ctx := context.Background()

	vehicle, err := svc.Create(ctx, domain.CreateParams{Name: "Marcopolo G7"})
	require.NoError(t, err)

	fetched, err := svc.GetByID(ctx, vehicle.ID)
	require.NoError(t, err)
	require.Equal(t, vehicle.ID, fetched.ID)

	exists, err := svc.VehicleExists(ctx, vehicle.ID)
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, svc.Delete(ctx, vehicle.ID))

	var notFound *NotFoundError
	_, err = svc.GetByID(ctx, vehicle.ID)
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, vehicle.ID, notFound.ID)
}

func TestService_List(t *testing.T) {
	svc := NewService(memory.NewRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateParams{Name: "Marcopolo G7"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateParams{Name: "Sprinter 515"})
	require.NoError(t, err)

	vehicles, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 2)
}
