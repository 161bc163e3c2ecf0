package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.LeaveRepository = (*LeaveRepo)(nil)

// LeaveRepo implementación del puerto LeaveRepository sobre PostgreSQL.
type LeaveRepo struct {
	db DB
}

// NewLeaveRepository construye el adaptador de persistencia para ausencias.
func NewLeaveRepository(db DB) *LeaveRepo {
	return &LeaveRepo{db: db}
}

const leaveColumns = `id, company_id, employee_id, kind, from_date, to_date, reason, status, decided_by, created_at, updated_at`

// Create persiste una solicitud de ausencia.
func (r *LeaveRepo) Create(l *entity.Leave) error {
	query := `
		INSERT INTO leaves (id, company_id, employee_id, kind, from_date, to_date, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		l.ID, l.CompanyID, l.EmployeeID, l.Kind, l.FromDate, l.ToDate, l.Reason, l.Status, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert leave: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud de la empresa.
func (r *LeaveRepo) GetByID(companyID, id string) (*entity.Leave, error) {
	query := `SELECT ` + leaveColumns + ` FROM leaves WHERE company_id = $1 AND id = $2`
	l, err := scanLeave(r.db.QueryRow(context.Background(), query, companyID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get leave: %w", err)
	}
	return l, nil
}

// ListByCompany lista solicitudes de la empresa con paginación.
func (r *LeaveRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Leave, error) {
	query := `SELECT ` + leaveColumns + ` FROM leaves WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

// ListByEmployee lista solicitudes de un empleado con paginación.
func (r *LeaveRepo) ListByEmployee(companyID, employeeID string, limit, offset int) ([]*entity.Leave, error) {
	query := `SELECT ` + leaveColumns + ` FROM leaves WHERE company_id = $1 AND employee_id = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	return r.list(query, companyID, employeeID, limit, offset)
}

// UpdateStatus decide una solicitud pendiente. El WHERE condicionado a pending
// evita que dos decisiones concurrentes se pisen; false = cero filas afectadas.
func (r *LeaveRepo) UpdateStatus(companyID, id, status, decidedBy string) (bool, error) {
	query := `
		UPDATE leaves SET status = $3, decided_by = $4, updated_at = now()
		WHERE company_id = $1 AND id = $2 AND status = 'pending'`
	tag, err := r.db.Exec(context.Background(), query, companyID, id, status, decidedBy)
	if err != nil {
		return false, fmt.Errorf("update leave status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *LeaveRepo) list(query string, args ...any) ([]*entity.Leave, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leaves: %w", err)
	}
	defer rows.Close()
	var list []*entity.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("scan leave: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func scanLeave(row pgx.Row) (*entity.Leave, error) {
	var l entity.Leave
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.EmployeeID, &l.Kind, &l.FromDate, &l.ToDate,
		&l.Reason, &l.Status, &l.DecidedBy, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
