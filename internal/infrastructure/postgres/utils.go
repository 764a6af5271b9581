package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/DevSairus/cartera-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isInsufficientPrivilege verifica si el servidor negó la operación por
// permisos (42501). Se distingue del resto de fallos porque la UI reacciona
// diferente: aviso de solo-lectura en vez de reintento.
func isInsufficientPrivilege(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "42501"
}

// translateError mapea errores del servidor a los sentinelas de dominio
// que las capas superiores saben distinguir; el resto se devuelve intacto
// para que el caller lo envuelva con contexto.
func translateError(err error) error {
	if isInsufficientPrivilege(err) {
		return domain.ErrForbidden
	}
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}
