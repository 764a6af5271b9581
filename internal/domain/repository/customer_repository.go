package repository

import (
	"context"

	"github.com/DevSairus/cartera-api/internal/domain/entity"
)

// CustomerRepository puerto de lectura del directorio de clientes.
// Solo alimenta la búsqueda y los filtros de la UI; los agregados de
// cartera no dependen de él.
type CustomerRepository interface {
	ListActive(ctx context.Context) ([]entity.Customer, error)
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
}
