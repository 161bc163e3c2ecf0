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

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo implementación del puerto DepartmentRepository sobre PostgreSQL.
// Todas las queries van acotadas por company_id.
type DepartmentRepo struct {
	db DB
}

// NewDepartmentRepository construye el adaptador de persistencia para departamentos.
func NewDepartmentRepository(db DB) *DepartmentRepo {
	return &DepartmentRepo{db: db}
}

// Create persiste un departamento.
func (r *DepartmentRepo) Create(d *entity.Department) error {
	query := `
		INSERT INTO departments (id, company_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(context.Background(), query, d.ID, d.CompanyID, d.Name, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert department: %w", err)
	}
	return nil
}

// GetByID obtiene un departamento de la empresa.
func (r *DepartmentRepo) GetByID(companyID, id string) (*entity.Department, error) {
	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM departments WHERE company_id = $1 AND id = $2`
	var d entity.Department
	err := r.db.QueryRow(context.Background(), query, companyID, id).Scan(
		&d.ID, &d.CompanyID, &d.Name, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return &d, nil
}

// ListByCompany lista departamentos de la empresa con paginación.
func (r *DepartmentRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Department, error) {
	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM departments WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update actualiza un departamento de la empresa.
func (r *DepartmentRepo) Update(d *entity.Department) error {
	query := `UPDATE departments SET name = $3, updated_at = $4 WHERE company_id = $1 AND id = $2`
	_, err := r.db.Exec(context.Background(), query, d.CompanyID, d.ID, d.Name, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update department: %w", err)
	}
	return nil
}

// Delete elimina un departamento de la empresa.
func (r *DepartmentRepo) Delete(companyID, id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM departments WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	return nil
}
