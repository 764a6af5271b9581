package entity

import "time"

// Customer registro del directorio de clientes. Se usa para búsqueda y
// poblar filtros; la corrección de los agregados de cartera no depende de él.
type Customer struct {
	ID           string
	FullName     string
	TaxID        string // NIT o Cédula (Colombia)
	Email        string
	BusinessName string
	CustomerType string // natural | juridica
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
