package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rotafacil/transit-api/internal/domains/cities/adapters/memory"
	"github.com/rotafacil/transit-api/internal/domains/cities/ports"
)

type registryStub struct {
	valid          bool
	validErr       error
	municipalities []ports.Municipality
	listErr        error
	validCalls     int
}

func (s *registryStub) ValidCity(_ context.Context, _ string, _ int) (bool, error) {
	s.validCalls++
	return s.valid, s.validErr
}

func (s *registryStub) StateMunicipalities(_ context.Context, _ string) ([]ports.Municipality, error) {
	return s.municipalities, s.listErr
}

func TestService_FindOrCreateCity_CreatesWhenValid(t *testing.T) {
	registry := &registryStub{valid: true}
	svc := NewService(memory.NewRepository(), registry)
	ctx := context.Background()

	id, err := svc.FindOrCreateCity(ctx, "Oliveira", "mg", 3145604)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	city, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "MG", city.State)
	require.Equal(t, 3145604, city.IBGECode)
}

func TestService_FindOrCreateCity_ReturnsExistingWithoutRegistryCall(t *testing.T) {
	registry := &registryStub{valid: true}
	svc := NewService(memory.NewRepository(), registry)
	ctx := context.Background()

	first, err := svc.FindOrCreateCity(ctx, "Oliveira", "MG", 3145604)
	require.NoError(t, err)
	require.Equal(t, 1, registry.validCalls)

	second, err := svc.FindOrCreateCity(ctx, "Oliveira", "MG", 3145604)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, registry.validCalls)
}

func TestService_FindOrCreateCity_RejectsUnknownCity(t *testing.T) {
	registry := &registryStub{valid: false}
	svc := NewService(memory.NewRepository(), registry)

	_, err := svc.FindOrCreateCity(context.Background(), "Atlantis", "ZZ", 12345)
	var invalid *InvalidCityError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "Atlantis", invalid.Name)

	cities, listErr := svc.List(context.Background())
	require.NoError(t, listErr)
	require.Empty(t, cities)
}

func TestService_FindOrCreateCity_RegistryFailurePropagates(t *testing.T) {
	registryErr := errors.New("ibge unavailable")
	registry := &registryStub{validErr: registryErr}
	svc := NewService(memory.NewRepository(), registry)

	_, err := svc.FindOrCreateCity(context.Background(), "Oliveira", "MG", 3145604)
	require.ErrorIs(t, err, registryErr)
}

func TestService_ImportState(t *testing.T) {
	registry := &registryStub{municipalities: []ports.Municipality{
		{IBGECode: 3106200, Name: "Belo Horizonte", State: "MG"},
		{IBGECode: 3145604, Name: "Oliveira", State: "MG"},
	}}
	svc := NewService(memory.NewRepository(), registry)
	ctx := context.Background()

	report, err := svc.ImportState(ctx, "mg")
	require.NoError(t, err)
	require.Equal(t, "MG", report.State)
	require.Equal(t, 2, report.Imported)
	require.Equal(t, 0, report.Skipped)

	report, err = svc.ImportState(ctx, "MG")
	require.NoError(t, err)
	require.Equal(t, 0, report.Imported)
	require.Equal(t, 2, report.Skipped)

	cities, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, cities, 2)
}

func TestService_ImportState_SkipsMalformedEntries(t *testing.T) {
	registry := &registryStub{municipalities: []ports.Municipality{
		{IBGECode: 0, Name: "Sem Código", State: "MG"},
		{IBGECode: 3145604, Name: "Oliveira", State: "MG"},
	}}
	svc := NewService(memory.NewRepository(), registry)

	report, err := svc.ImportState(context.Background(), "MG")
	require.NoError(t, err)
	require.Equal(t, 1, report.Imported)
	require.Equal(t, 1, report.Skipped)
}

func TestService_ImportState_ListingFailure(t *testing.T) {
	listErr := errors.New("ibge unavailable")
	registry := &registryStub{listErr: listErr}
	svc := NewService(memory.NewRepository(), registry)

	_, err := svc.ImportState(context.Background(), "MG")
	require.ErrorIs(t, err, listErr)
}
