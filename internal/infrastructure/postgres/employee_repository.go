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

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
// El salario es NUMERIC y se mapea a shopspring/decimal vía el codec del pool.
type EmployeeRepo struct {
	db DB
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(db DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

const employeeColumns = `id, company_id, user_id, name, email, department_id, designation_id, salary, joined_at, status, created_at, updated_at`

// Create persiste un empleado.
func (r *EmployeeRepo) Create(e *entity.Employee) error {
	query := `
		INSERT INTO employees (id, company_id, user_id, name, email, department_id, designation_id, salary, joined_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(context.Background(), query,
		e.ID, e.CompanyID, e.UserID, e.Name, e.Email, e.DepartmentID, e.DesignationID,
		e.Salary, e.JoinedAt, e.Status, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado de la empresa.
func (r *EmployeeRepo) GetByID(companyID, id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1 AND id = $2`
	e, err := scanEmployee(r.db.QueryRow(context.Background(), query, companyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

// ListByCompany lista empleados de la empresa con paginación.
func (r *EmployeeRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update actualiza un empleado de la empresa.
func (r *EmployeeRepo) Update(e *entity.Employee) error {
	query := `
		UPDATE employees
		SET name = $3, email = $4, department_id = $5, designation_id = $6, salary = $7, status = $8, updated_at = $9
		WHERE company_id = $1 AND id = $2`
	_, err := r.db.Exec(context.Background(), query,
		e.CompanyID, e.ID, e.Name, e.Email, e.DepartmentID, e.DesignationID, e.Salary, e.Status, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete elimina un empleado de la empresa.
func (r *EmployeeRepo) Delete(companyID, id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM employees WHERE company_id = $1 AND id = $2`, companyID, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.UserID, &e.Name, &e.Email, &e.DepartmentID, &e.DesignationID,
		&e.Salary, &e.JoinedAt, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
