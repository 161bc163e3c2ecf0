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

// DesignationUseCase CRUD de cargos acotado al tenant. Misma forma que
// DepartmentUseCase; comparte el DTO de entrada y de salida.
type DesignationUseCase struct {
	repo repository.DesignationRepository
}

// NewDesignationUseCase construye el caso de uso.
func NewDesignationUseCase(repo repository.DesignationRepository) *DesignationUseCase {
	return &DesignationUseCase{repo: repo}
}

// Create crea un cargo en la empresa target.
func (uc *DesignationUseCase) Create(p authz.Principal, companyID string, in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if err := p.Require(authz.PermManageDepartments); err != nil {
		return nil, err
	}
	if err := p.RequireCompany(companyID); err != nil {
		return nil, err
	}
	now := time.Now()
	d := &entity.Designation{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(d); err != nil {
		return nil, err
	}
	return designationToResponse(d), nil
}

// List lista cargos del tenant con paginación.
func (uc *DesignationUseCase) List(p authz.Principal, companyID string, limit, offset int) (*dto.DepartmentListResponse, error) {
	if !p.SameTenant(companyID) {
		return nil, domain.ErrForbidden
	}
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DepartmentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *designationToResponse(d))
	}
	return &dto.DepartmentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update renombra un cargo del tenant.
func (uc *DesignationUseCase) Update(p authz.Principal, companyID, id string, in dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
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
	return designationToResponse(d), nil
}

// Delete elimina un cargo del tenant.
func (uc *DesignationUseCase) Delete(p authz.Principal, companyID, id string) error {
	if err := p.Require(authz.PermManageDepartments); err != nil {
		return err
	}
	if err := p.RequireCompany(companyID); err != nil {
		return err
	}
	return uc.repo.Delete(companyID, id)
}

func designationToResponse(d *entity.Designation) *dto.DepartmentResponse {
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
