package analytics

import (
	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/authz"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

// DashboardUseCase métricas agregadas del tenant para la vista de inicio.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary devuelve headcount, departamentos y ausencias pendientes de la empresa.
func (uc *DashboardUseCase) Summary(p authz.Principal, companyID string) (*dto.DashboardResponse, error) {
	if err := p.Require(authz.PermViewDashboard); err != nil {
		return nil, err
	}
	if !p.SameTenant(companyID) {
		return nil, domain.ErrForbidden
	}
	headcount, err := uc.repo.Headcount(companyID)
	if err != nil {
		return nil, err
	}
	departments, err := uc.repo.DepartmentCount(companyID)
	if err != nil {
		return nil, err
	}
	pending, err := uc.repo.PendingLeaves(companyID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		Headcount:     headcount,
		Departments:   departments,
		PendingLeaves: pending,
	}, nil
}
