package clientes_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevSairus/cartera-api/internal/application/clientes"
	"github.com/DevSairus/cartera-api/internal/domain/entity"
)

type stubRepo struct {
	list []entity.Customer
	err  error
}

func (s *stubRepo) ListActive(context.Context) ([]entity.Customer, error) {
	return s.list, s.err
}

func (s *stubRepo) GetByID(context.Context, string) (*entity.Customer, error) {
	return nil, nil
}

func TestListActive_SinBusquedaDevuelveTodos(t *testing.T) {
	uc := clientes.NewUseCase(&stubRepo{list: []entity.Customer{
		{ID: "c1", FullName: "José Pérez"},
		{ID: "c2", FullName: "María Gómez"},
	}})

	out, err := uc.ListActive(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, out, 2)
}

// TestListActive_BusquedaPorRazonSocial la búsqueda cubre nombre, razón
// social y NIT, insensible a mayúsculas y tildes.
func TestListActive_BusquedaPorRazonSocial(t *testing.T) {
	uc := clientes.NewUseCase(&stubRepo{list: []entity.Customer{
		{ID: "c1", FullName: "José Pérez", BusinessName: "Transportes Andinos SAS", TaxID: "900111"},
		{ID: "c2", FullName: "María Gómez", TaxID: "900222"},
	}})

	porRazon, err := uc.ListActive(context.Background(), "andinos")
	require.NoError(t, err)
	require.Len(t, porRazon, 1)
	assert.Equal(t, "c1", porRazon[0].ID)

	porNit, err := uc.ListActive(context.Background(), "900222")
	require.NoError(t, err)
	require.Len(t, porNit, 1)
	assert.Equal(t, "c2", porNit[0].ID)
}

func TestListActive_ErrorDelRepositorio(t *testing.T) {
	uc := clientes.NewUseCase(&stubRepo{err: errors.New("timeout")})

	_, err := uc.ListActive(context.Background(), "")

	assert.Error(t, err)
}
