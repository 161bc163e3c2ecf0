package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/application/invitation"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/authz"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

// CompanyUseCase consultas y administración de empresas. La creación vive en
// invitation.InvitationUseCase (una empresa solo nace por invitación).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// GetByID obtiene una empresa. Superadmin ve cualquiera; los demás roles solo la suya.
func (uc *CompanyUseCase) GetByID(p authz.Principal, id string) (*dto.CompanyResponse, error) {
	if !p.SameTenant(id) {
		return nil, domain.ErrForbidden
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return invitation.ToCompanyResponse(company), nil
}

// List lista empresas con paginación (solo superadmin).
func (uc *CompanyUseCase) List(p authz.Principal, limit, offset int) (*dto.CompanyListResponse, error) {
	if err := p.Require(authz.PermManageCompanies); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *invitation.ToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza nombre y logo. Superadmin o companyadmin de la misma empresa.
func (uc *CompanyUseCase) Update(p authz.Principal, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := p.RequireCompany(id); err != nil {
		return nil, err
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.LogoURL != nil {
		company.LogoURL = *in.LogoURL
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return invitation.ToCompanyResponse(company), nil
}

// UpdateStatus alterna active/inactive (solo superadmin). Una empresa pending no
// puede alternarse (sigue esperando su invitación) y pending nunca es destino.
func (uc *CompanyUseCase) UpdateStatus(p authz.Principal, id, status string) (*dto.CompanyResponse, error) {
	if err := p.Require(authz.PermManageCompanies); err != nil {
		return nil, err
	}
	if status != entity.CompanyStatusActive && status != entity.CompanyStatusInactive {
		return nil, fmt.Errorf("%w: status debe ser active o inactive", domain.ErrInvalidInput)
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if company.Status == entity.CompanyStatusPending {
		return nil, fmt.Errorf("%w: la empresa aún no redimió su invitación", domain.ErrConflict)
	}
	if err := uc.repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	company.Status = status
	company.UpdatedAt = time.Now()
	return invitation.ToCompanyResponse(company), nil
}
