package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rotafacil/transit-api/internal/domains/companies/adapters/memory"
	"github.com/rotafacil/transit-api/internal/domains/companies/domain"
)

type cityResolverStub struct {
	cityID string
	err    error
	calls  int
}

func (s *cityResolverStub) FindOrCreateCity(_ context.Context, _, _ string, _ int) (string, error) {
	s.calls++
	return s.cityID, s.err
}

func validParams() domain.CreateParams {
	return domain.CreateParams{
		LegalName: "Expresso Oliveira LTDA",
		TradeName: "Expresso Oliveira",
		CNPJ:      "12345678000190",
	}
}

func TestService_Create(t *testing.T) {
	cities := &cityResolverStub{cityID: "city-1"}
	svc := NewService(memory.NewRepository(), cities)

	company, err := svc.Create(context.Background(), validParams(), "Oliveira", "MG", 3145604)
	require.NoError(t, err)
	require.NotEmpty(t, company.ID)
	require.Equal(t, "city-1", company.CityID)
	require.Equal(t, 1, cities.calls)
	require.False(t, company.CreatedAt.IsZero())
	require.Nil(t, company.UpdatedAt)
}

func TestService_Create_UnknownCityFailsBeforeUniquenessChecks(t *testing.T) {
	cityErr := errors.New("city not found in registry")
	cities := &cityResolverStub{err: cityErr}
	svc := NewService(memory.NewRepository(), cities)

	_, err := svc.Create(context.Background(), validParams(), "Atlantis", "ZZ", 999)
	require.ErrorIs(t, err, cityErr)
}

func TestService_Create_DuplicateCNPJ(t *testing.T) {
	cities := &cityResolverStub{cityID: "city-1"}
	svc := NewService(memory.NewRepository(), cities)
	ctx := context.Background()

	_, err := svc.Create(ctx, validParams(), "Oliveira", "MG", 3145604)
	require.NoError(t, err)

	params := validParams()
	params.LegalName = "Outra Empresa LTDA"
	_, err = svc.Create(ctx, params, "Oliveira", "MG", 3145604)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "cnpj", conflict.Field)
}

func TestService_Create_DuplicateLegalName(t *testing.T) {
	cities := &cityResolverStub{cityID: "city-1"}
	svc := NewService(memory.NewRepository(), cities)
	ctx := context.Background()

	_, err := svc.Create(ctx, validParams(), "Oliveira", "MG", 3145604)
	require.NoError(t, err)

	params := validParams()
	params.CNPJ = "98765432000109"
	_, err = svc.Create(ctx, params, "Oliveira", "MG", 3145604)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "legal name", conflict.Field)
}

func TestService_Create_InvalidCNPJ(t *testing.T) {
	cities := &cityResolverStub{cityID: "city-1"}
	svc := NewService(memory.NewRepository(), cities)

	params := validParams()
	params.CNPJ = "not-a-cnpj"
	_, err := svc.Create(context.Background(), params, "Oliveira", "MG", 3145604)
	require.ErrorIs(t, err, domain.ErrInvalidCNPJ)
}

func TestService_Update(t *testing.T) {
	cities := &cityResolverStub{cityID: "city-1"}
	svc := NewService(memory.NewRepository(), cities)
	ctx := context.Background()

	company, err := svc.Create(ctx, validParams(), "Oliveira", "MG", 3145604)
	require.NoError(t, err)

	newName := "Expresso Oliveira Transportes"
	updated, err := svc.Update(ctx, company.ID, domain.UpdateParams{TradeName: &newName})
	require.NoError(t, err)
	require.Equal(t, newName, updated.TradeName)
	require.Equal(t, company.LegalName, updated.LegalName)
	require.NotNil(t, updated.UpdatedAt)
}

func TestService_Update_EmptyPayload(t *testing.T) {
	svc := NewService(memory.NewRepository(), &cityResolverStub{})
	_, err := svc.Update(context.Background(), "some-id", domain.UpdateParams{})
	require.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(memory.NewRepository(), &cityResolverStub{})
	name := "Novo Nome"
	_, err := svc.Update(context.Background(), "missing", domain.UpdateParams{TradeName: &name})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "missing", notFound.ID)
}

func TestService_DeleteAndExists(t *testing.T) {
	cities := &cityResolverStub{cityID: "city-1"}
	svc := NewService(memory.NewRepository(), cities)
	ctx := context.Background()

	company, err := svc.Create(ctx, validParams(), "Oliveira", "MG", 3145604)
	require.NoError(t, err)

	exists, err := svc.CarrierExists(ctx, company.ID)
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, svc.Delete(ctx, company.ID))

	exists, err = svc.CarrierExists(ctx, company.ID)
	require.NoError(t, err)
	require.False(t, exists)

	var notFound *NotFoundError
	require.ErrorAs(t, svc.Delete(ctx, company.ID), &notFound)
}
