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

// DepartmentUseCase CRUD de departamentos acotado al tenant.
type DepartmentUseCase struct {
	repo repository.DepartmentRepository
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(repo repository.DepartmentRepository) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo}
}

// Create crea un departamento en la empresa target.
func (uc *DepartmentUseCase) Create(p authz.Principal, companyID string, in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if err := p.Require(authz.PermManageDepartments); err != nil {
		return nil, err
	}
	if err := p.RequireCompany(companyID); err != nil {
		return nil, err
	}
	now := time.Now()
	d := &entity.Department{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(d); err != nil {
		return nil, err
	}
	return departmentToResponse(d), nil
}

// GetByID obtiene un departamento del tenant.
func (uc *DepartmentUseCase) GetByID(p authz.Principal, companyID, id string) (*dto.DepartmentResponse, error) {
	if !p.SameTenant(companyID) {
		return nil, domain.ErrForbidden
	}
	d, err := uc.repo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return departmentToResponse(d), nil
}

// List lista departamentos del tenant con paginación.
func (uc *DepartmentUseCase) List(p authz.Principal, companyID string, limit, offset int) (*dto.DepartmentListResponse, error) {
	if !p.SameTenant(companyID) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DepartmentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *departmentToResponse(d))
	}
	return &dto.DepartmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update renombra un departamento del tenant.
func (uc *DepartmentUseCase) Update(p authz.Principal, companyID, id string, in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if err := p.Require(authz.PermManageDepartments); err != nil {
		return nil, err
	}
	if err := p.RequireCompany(companyID); err != nil {
		return nil, err
	}
	d, err := uc.repo.GetByID(companyID, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	d.Name = in.Name
	d.UpdatedAt = time.Now()
	if err := uc.repo.Update(d); err != nil {
		return nil, err
	}
	return departmentToResponse(d), nil
}

// Delete elimina un departamento del tenant.
func (uc *DepartmentUseCase) Delete(p authz.Principal, companyID, id string) error {
	if err := p.Require(authz.PermManageDepartments); err != nil {
		return err
	}
	if err := p.RequireCompany(companyID); err != nil {
		return err
	}
	return uc.repo.Delete(companyID, id)
}

func departmentToResponse(d *entity.Department) *dto.DepartmentResponse {
	if d == nil {
		return nil
	}
	return &dto.DepartmentResponse{
		ID:        d.ID,
		CompanyID: d.CompanyID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
