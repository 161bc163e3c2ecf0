package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation detecta la violación de constraint único de PostgreSQL
// (código 23505). Los repos la traducen a los sentinelas de duplicado del
// dominio (email global, nombre por empresa).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	// Fallback para errores que llegan envueltos sin el tipo original.
	return strings.Contains(err.Error(), "23505")
}
