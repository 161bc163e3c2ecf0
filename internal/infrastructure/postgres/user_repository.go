package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
//
// Este es el ÚNICO punto donde se hashea un password: Create, UpdatePassword y
// RedeemResetToken reciben texto plano y aplican bcrypt (salt por registro)
// justo antes de persistir. Ningún caller debe pre-hashear.
type UserRepo struct {
	db DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, company_id, email, password_hash, name, role, status, reset_token, reset_expires_at, created_at, updated_at`

// Create hashea plainPassword y persiste el usuario.
// Devuelve domain.ErrEmailAlreadyExists si el email ya existe (único global).
func (r *UserRepo) Create(user *entity.User, plainPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	query := `
		INSERT INTO users (id, company_id, email, password_hash, name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.db.Exec(context.Background(), query,
		user.ID, nullIfEmpty(user.CompanyID), user.Email, user.PasswordHash, user.Name,
		string(user.Role), user.Status, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByEmail obtiene un usuario por email (único global).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.scanOne(query, email)
}

// ListByCompany lista usuarios de una empresa con paginación.
func (r *UserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado active/inactive.
func (r *UserRepo) UpdateStatus(id, status string) error {
	query := `UPDATE users SET status = $2, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update user status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePassword re-hashea y guarda el password (cambio en caliente).
func (r *UserRepo) UpdatePassword(id, plainPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	query := `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(context.Background(), query, id, string(hash))
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetResetToken guarda token+expiración en el usuario con ese email, pisando
// cualquier token previo (solo vale el último emitido). false si no existe.
func (r *UserRepo) SetResetToken(email, token string, expires time.Time) (bool, error) {
	query := `UPDATE users SET reset_token = $2, reset_expires_at = $3, updated_at = now() WHERE email = $1`
	tag, err := r.db.Exec(context.Background(), query, email, token, expires)
	if err != nil {
		return false, fmt.Errorf("set reset token: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// RedeemResetToken localiza-y-limpia el token y guarda el nuevo hash en UNA
// sola sentencia condicionada a la vigencia. Dos redenciones concurrentes del
// mismo token nunca ganan ambas: la segunda ve el token ya limpiado y recibe
// cero filas (nil).
func (r *UserRepo) RedeemResetToken(token, plainNewPassword string) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainNewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	query := `
		UPDATE users
		SET password_hash = $2, reset_token = NULL, reset_expires_at = NULL, updated_at = now()
		WHERE reset_token = $1 AND reset_expires_at > now()
		RETURNING ` + userColumns
	u, err := scanUser(r.db.QueryRow(context.Background(), query, token, string(hash)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("redeem reset token: %w", err)
	}
	return u, nil
}

func (r *UserRepo) scanOne(query string, args ...any) (*entity.User, error) {
	u, err := scanUser(r.db.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// scanUser mapea una fila a la entidad (company_id NULL ↔ string vacío).
func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var companyID *string
	var role string
	err := row.Scan(
		&u.ID, &companyID, &u.Email, &u.PasswordHash, &u.Name, &role, &u.Status,
		&u.ResetToken, &u.ResetExpires, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if companyID != nil {
		u.CompanyID = *companyID
	}
	u.Role = entity.Role(role)
	return &u, nil
}

// nullIfEmpty mapea string vacío a NULL (company_id de superadmin).
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
