package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo métricas agregadas por empresa sobre PostgreSQL.
type DashboardRepo struct {
	db DB
}

// NewDashboardRepository construye el adaptador de métricas.
func NewDashboardRepository(db DB) *DashboardRepo {
	return &DashboardRepo{db: db}
}

// Headcount empleados activos de la empresa.
func (r *DashboardRepo) Headcount(companyID string) (int, error) {
	return r.count(`SELECT count(*) FROM employees WHERE company_id = $1 AND status = 'active'`, companyID)
}

// DepartmentCount departamentos de la empresa.
func (r *DashboardRepo) DepartmentCount(companyID string) (int, error) {
	return r.count(`SELECT count(*) FROM departments WHERE company_id = $1`, companyID)
}

// PendingLeaves solicitudes de ausencia pendientes de la empresa.
func (r *DashboardRepo) PendingLeaves(companyID string) (int, error) {
	return r.count(`SELECT count(*) FROM leaves WHERE company_id = $1 AND status = 'pending'`, companyID)
}

func (r *DashboardRepo) count(query, companyID string) (int, error) {
	var n int
	if err := r.db.QueryRow(context.Background(), query, companyID).Scan(&n); err != nil {
		return 0, fmt.Errorf("dashboard count: %w", err)
	}
	return n, nil
}
