package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/DevSairus/cartera-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// translateError es la frontera entre los códigos del servidor y los
// sentinelas de dominio: 42501 (permisos) y 23505 (único) se mapean, el
// resto pasa intacto para que el caller lo envuelva con contexto.
// ──────────────────────────────────────────────────────────────────────────────

func TestTranslateError_PermisoInsuficiente(t *testing.T) {
	err := translateError(&pgconn.PgError{Code: "42501"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTranslateError_ViolacionDeUnico(t *testing.T) {
	err := translateError(&pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestTranslateError_RestoPasaIntacto(t *testing.T) {
	original := errors.New("conexión cerrada")
	assert.Same(t, original, translateError(original))
}

// TestTranslateError_SobreviveElEnvoltorio el sentinela sigue siendo
// distinguible con errors.Is después de envolverlo con contexto, que es
// como lo devuelven todos los métodos del repositorio.
func TestTranslateError_SobreviveElEnvoltorio(t *testing.T) {
	err := fmt.Errorf("ledger.ListOutstanding: %w", translateError(&pgconn.PgError{Code: "42501"}))
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
