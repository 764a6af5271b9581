package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DevSairus/cartera-api/internal/domain/entity"
	"github.com/DevSairus/cartera-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo lecturas del directorio de clientes (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// ListActive lista los clientes activos ordenados por nombre.
func (r *CustomerRepo) ListActive(ctx context.Context) ([]entity.Customer, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, full_name, COALESCE(tax_id, ''), COALESCE(email, ''),
		       COALESCE(business_name, ''), COALESCE(customer_type, 'natural'),
		       is_active, created_at, updated_at
		FROM customers
		WHERE is_active
		ORDER BY full_name`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", translateError(err))
	}
	defer rows.Close()

	var list []entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.FullName, &c.TaxID, &c.Email,
			&c.BusinessName, &c.CustomerType, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list customers: %w", translateError(err))
	}
	return list, nil
}

// GetByID obtiene un cliente por ID; nil sin error si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.q.QueryRow(ctx, `
		SELECT id, full_name, COALESCE(tax_id, ''), COALESCE(email, ''),
		       COALESCE(business_name, ''), COALESCE(customer_type, 'natural'),
		       is_active, created_at, updated_at
		FROM customers WHERE id = $1`, id).Scan(
		&c.ID, &c.FullName, &c.TaxID, &c.Email,
		&c.BusinessName, &c.CustomerType, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", translateError(err))
	}
	return &c, nil
}
