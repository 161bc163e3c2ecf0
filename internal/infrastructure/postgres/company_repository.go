package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db DB
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db DB) *CompanyRepo {
	return &CompanyRepo{db: db}
}

const companyColumns = `id, name, logo_url, admin_id, status, invite_token, invite_expires_at, created_at, updated_at`

// Create persiste una empresa nueva (pending con token de invitación).
// Devuelve domain.ErrAlreadyExists si el nombre ya está tomado.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, logo_url, status, invite_token, invite_expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, company.Name, company.LogoURL, company.Status,
		company.InviteToken, company.InviteExpires, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByName obtiene una empresa por nombre (único).
func (r *CompanyRepo) GetByName(name string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE name = $1`
	return r.scanOne(query, name)
}

// List lista empresas con paginación.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza nombre y logo.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `UPDATE companies SET name = $2, logo_url = $3, updated_at = $4 WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, company.Name, company.LogoURL, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// UpdateStatus alterna active/inactive. El WHERE excluye pending: una empresa
// sin invitación redimida no se alterna y pending nunca se restaura.
func (r *CompanyRepo) UpdateStatus(id, status string) error {
	query := `UPDATE companies SET status = $2, updated_at = now() WHERE id = $1 AND status <> 'pending'`
	tag, err := r.db.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update company status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ClaimInvitation es el UPDATE condicional de la redención: una sola sentencia
// verifica token+pending+vigencia y limpia el token pasando la empresa a
// active. Cero filas → otro caller ya ganó, o el token no existe/expiró (nil).
func (r *CompanyRepo) ClaimInvitation(token string) (*entity.Company, error) {
	query := `
		UPDATE companies
		SET status = 'active', invite_token = NULL, invite_expires_at = NULL, updated_at = now()
		WHERE invite_token = $1 AND status = 'pending' AND invite_expires_at > now()
		RETURNING ` + companyColumns
	c, err := scanCompany(r.db.QueryRow(context.Background(), query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("claim invitation: %w", err)
	}
	return c, nil
}

// SetAdmin fija la back-reference al primer companyadmin.
func (r *CompanyRepo) SetAdmin(companyID, userID string) error {
	query := `UPDATE companies SET admin_id = $2, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(context.Background(), query, companyID, userID)
	if err != nil {
		return fmt.Errorf("set company admin: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CompanyRepo) scanOne(query string, args ...any) (*entity.Company, error) {
	c, err := scanCompany(r.db.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.LogoURL, &c.AdminID, &c.Status,
		&c.InviteToken, &c.InviteExpires, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
