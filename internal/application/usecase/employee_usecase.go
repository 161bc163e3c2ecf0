package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/authz"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

// EmployeeUseCase CRUD de empleados acotado al tenant.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// canManage empleados: superadmin, companyadmin de la empresa, o servicemanager
// de la empresa (servicemanager administra fichas pero no usuarios).
func canManageEmployees(p authz.Principal, companyID string) error {
	if err := p.Require(authz.PermManageEmployees); err != nil {
		return err
	}
	if p.IsServiceManager() {
		if p.CompanyID != companyID {
			return domain.ErrForbidden
		}
		return nil
	}
	return p.RequireCompany(companyID)
}

// Create crea un empleado en la empresa target.
func (uc *EmployeeUseCase) Create(p authz.Principal, companyID string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := canManageEmployees(p, companyID); err != nil {
		return nil, err
	}
	now := time.Now()
	e := &entity.Employee{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Email:     in.Email,
		Salary:    in.Salary,
		JoinedAt:  in.JoinedAt,
		Status:    entity.UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.DepartmentID != "" {
		e.DepartmentID = &in.DepartmentID
	}
	if in.DesignationID != "" {
		e.DesignationID = &in.DesignationID
	}
	if e.JoinedAt.IsZero() {
		e.JoinedAt = now
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return employeeToResponse(e), nil
}

// GetByID obtiene un empleado del tenant.
func (uc *EmployeeUseCase) GetByID(p authz.Principal, companyID, id string) (*dto.EmployeeResponse, error) {
	if !p.SameTenant(companyID) {
		return nil, domain.ErrForbidden
	}
	e, err := uc.repo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return employeeToResponse(e), nil
}

// List lista empleados del tenant con paginación.
func (uc *EmployeeUseCase) List(p authz.Principal, companyID string, limit, offset int) (*dto.EmployeeListResponse, error) {
	if !p.SameTenant(companyID) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *employeeToResponse(e))
	}
	return &dto.EmployeeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza campos de un empleado del tenant.
func (uc *EmployeeUseCase) Update(p authz.Principal, companyID, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if err := canManageEmployees(p, companyID); err != nil {
		return nil, err
	}
	e, err := uc.repo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.DepartmentID != nil {
		e.DepartmentID = in.DepartmentID
	}
	if in.DesignationID != nil {
		e.DesignationID = in.DesignationID
	}
	if in.Salary != nil {
		e.Salary = *in.Salary
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return employeeToResponse(e), nil
}

// Delete elimina un empleado del tenant.
func (uc *EmployeeUseCase) Delete(p authz.Principal, companyID, id string) error {
	if err := canManageEmployees(p, companyID); err != nil {
		return err
	}
	return uc.repo.Delete(companyID, id)
}

func employeeToResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	resp := &dto.EmployeeResponse{
		ID:        e.ID,
		CompanyID: e.CompanyID,
		Name:      e.Name,
		Email:     e.Email,
		Salary:    e.Salary,
		JoinedAt:  e.JoinedAt,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.UserID != nil {
		resp.UserID = *e.UserID
	}
	if e.DepartmentID != nil {
		resp.DepartmentID = *e.DepartmentID
	}
	if e.DesignationID != nil {
		resp.DesignationID = *e.DesignationID
	}
	return resp
}
