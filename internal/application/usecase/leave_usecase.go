package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/authz"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

// LeaveUseCase solicitudes de ausencia: el empleado solicita dentro de su
// empresa y un companyadmin/servicemanager de la misma empresa decide.
type LeaveUseCase struct {
	repo         repository.LeaveRepository
	employeeRepo repository.EmployeeRepository
}

// NewLeaveUseCase construye el caso de uso.
func NewLeaveUseCase(repo repository.LeaveRepository, employeeRepo repository.EmployeeRepository) *LeaveUseCase {
	return &LeaveUseCase{repo: repo, employeeRepo: employeeRepo}
}

// Request crea una solicitud pendiente. Cualquier rol del tenant con el permiso
// de solicitar; el empleado referenciado debe pertenecer a la misma empresa.
func (uc *LeaveUseCase) Request(p authz.Principal, companyID string, in dto.CreateLeaveRequest) (*dto.LeaveResponse, error) {
	if err := p.Require(authz.PermRequestLeaves); err != nil {
		return nil, err
	}
	if !p.SameTenant(companyID) {
		return nil, domain.ErrForbidden
	}
	if in.ToDate.Before(in.FromDate) {
		return nil, fmt.Errorf("%w: to_date anterior a from_date", domain.ErrInvalidInput)
	}
	// Query acotada: un employee_id de otro tenant no existe para esta empresa.
	emp, err := uc.employeeRepo.GetByID(companyID, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	l := &entity.Leave{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		EmployeeID: in.EmployeeID,
		Kind:       in.Kind,
		FromDate:   in.FromDate,
		ToDate:     in.ToDate,
		Reason:     in.Reason,
		Status:     entity.LeaveStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(l); err != nil {
		return nil, err
	}
	return leaveToResponse(l), nil
}

// List lista solicitudes del tenant, opcionalmente filtradas por empleado.
func (uc *LeaveUseCase) List(p authz.Principal, companyID, employeeID string, limit, offset int) (*dto.LeaveListResponse, error) {
	if !p.SameTenant(companyID) {
		return nil, domain.ErrForbidden
	}
	var list []*entity.Leave
	var err error
	if employeeID != "" {
		list, err = uc.repo.ListByEmployee(companyID, employeeID, limit, offset)
	} else {
		list, err = uc.repo.ListByCompany(companyID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.LeaveResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *leaveToResponse(l))
	}
	return &dto.LeaveListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Decide aprueba o rechaza una solicitud pendiente. La actualización es
// condicional al estado pending: dos decisiones concurrentes no se pisan.
func (uc *LeaveUseCase) Decide(p authz.Principal, companyID, id, status string) (*dto.LeaveResponse, error) {
	if err := p.Require(authz.PermDecideLeaves); err != nil {
		return nil, err
	}
	if !p.SameTenant(companyID) {
		return nil, domain.ErrForbidden
	}
	if status != entity.LeaveStatusApproved && status != entity.LeaveStatusRejected {
		return nil, fmt.Errorf("%w: status debe ser approved o rejected", domain.ErrInvalidInput)
	}
	updated, err := uc.repo.UpdateStatus(companyID, id, status, p.UserID)
	if err != nil {
		return nil, err
	}
	if !updated {
		// La fila no estaba pending (o no existe en este tenant).
		existing, err := uc.repo.GetByID(companyID, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: la solicitud ya fue decidida", domain.ErrConflict)
	}
	l, err := uc.repo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	return leaveToResponse(l), nil
}

func leaveToResponse(l *entity.Leave) *dto.LeaveResponse {
	if l == nil {
		return nil
	}
	resp := &dto.LeaveResponse{
		ID:         l.ID,
		CompanyID:  l.CompanyID,
		EmployeeID: l.EmployeeID,
		Kind:       l.Kind,
		FromDate:   l.FromDate,
		ToDate:     l.ToDate,
		Reason:     l.Reason,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
	if l.DecidedBy != nil {
		resp.DecidedBy = *l.DecidedBy
	}
	return resp
}
