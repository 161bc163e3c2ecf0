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

var _ repository.DesignationRepository = (*DesignationRepo)(nil)

// DesignationRepo implementación del puerto DesignationRepository sobre PostgreSQL.
type DesignationRepo struct {
	db DB
}

// NewDesignationRepository construye el adaptador de persistencia para cargos.
func NewDesignationRepository(db DB) *DesignationRepo {
	return &DesignationRepo{db: db}
}

// Create persiste un cargo.
func (r *DesignationRepo) Create(d *entity.Designation) error {
	query := `
		INSERT INTO designations (id, company_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(context.Background(), query, d.ID, d.CompanyID, d.Name, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert designation: %w", err)
	}
	return nil
}

// GetByID obtiene un cargo de la empresa.
func (r *DesignationRepo) GetByID(companyID, id string) (*entity.Designation, error) {
	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM designations WHERE company_id = $1 AND id = $2`
	var d entity.Designation
	err := r.db.QueryRow(context.Background(), query, companyID, id).Scan(
		&d.ID, &d.CompanyID, &d.Name, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get designation: %w", err)
	}
	return &d, nil
}

// ListByCompany lista cargos de la empresa con paginación.
func (r *DesignationRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Designation, error) {
	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM designations WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list designations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Designation
	for rows.Next() {
		var d entity.Designation
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan designation: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza un cargo de la empresa.
func (r *DesignationRepo) Update(d *entity.Designation) error {
	query := `UPDATE designations SET name = $3, updated_at = $4 WHERE company_id = $1 AND id = $2`
	_, err := r.db.Exec(context.Background(), query, d.CompanyID, d.ID, d.Name, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update designation: %w", err)
	}
	return nil
}

// Delete elimina un cargo de la empresa.
func (r *DesignationRepo) Delete(companyID, id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM designations WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete designation: %w", err)
	}
	return nil
}
