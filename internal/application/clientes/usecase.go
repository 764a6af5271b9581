// Package clientes expone el directorio de clientes para asistencia de
// búsqueda y poblamiento de filtros de la UI.
package clientes

import (
	"context"
	"fmt"
	"strings"

	"github.com/DevSairus/cartera-api/internal/application/dto"
	"github.com/DevSairus/cartera-api/internal/domain/repository"
	"github.com/DevSairus/cartera-api/pkg/textutil"
)

// UseCase consultas de solo lectura del directorio.
type UseCase struct {
	repo repository.CustomerRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.CustomerRepository) *UseCase {
	return &UseCase{repo: repo}
}

// ListActive clientes activos del directorio, con filtro opcional de texto
// libre (insensible a mayúsculas y tildes) sobre nombre, razón social y
// NIT/cédula.
func (uc *UseCase) ListActive(ctx context.Context, search string) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("directorio de clientes: %w", err)
	}
	needle := textutil.Normalize(search)
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		if needle != "" {
			key := textutil.Normalize(c.FullName + " " + c.BusinessName + " " + c.TaxID)
			if !strings.Contains(key, needle) {
				continue
			}
		}
		out = append(out, dto.CustomerResponse{
			ID:           c.ID,
			FullName:     c.FullName,
			TaxID:        c.TaxID,
			Email:        c.Email,
			BusinessName: c.BusinessName,
			CustomerType: c.CustomerType,
			IsActive:     c.IsActive,
		})
	}
	return out, nil
}
