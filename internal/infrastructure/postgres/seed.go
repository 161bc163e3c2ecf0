package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

// seedLockKey clave del advisory lock del seed (arbitraria pero fija).
const seedLockKey = 7211998

// SeedSuperadmin crea el superadmin inicial si no existe. Es idempotente y se
// serializa entre procesos con pg_advisory_xact_lock: varios pods arrancando a
// la vez producen exactamente un superadmin. Con email o password vacíos no
// hace nada (instalaciones que ya tienen su superadmin).
func SeedSuperadmin(ctx context.Context, pool *pgxpool.Pool, email, password, name string) error {
	if email == "" || password == "" {
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("seed: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// El lock vive hasta el commit/rollback de esta transacción.
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, seedLockKey); err != nil {
		return fmt.Errorf("seed: advisory lock: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}

	now := time.Now()
	query := `
		INSERT INTO users (id, company_id, email, password_hash, name, role, status, created_at, updated_at)
		VALUES ($1, NULL, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (email) DO NOTHING`
	_, err = tx.Exec(ctx, query,
		uuid.New().String(), email, string(hash), name,
		string(entity.RoleSuperadmin), entity.UserStatusActive, now, now,
	)
	if err != nil {
		return fmt.Errorf("seed: insert superadmin: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("seed: commit: %w", err)
	}
	return nil
}
