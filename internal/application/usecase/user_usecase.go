package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Talento-api/internal/application/auth"
	"github.com/jhoicas/Talento-api/internal/application/dto"
	"github.com/jhoicas/Talento-api/internal/domain"
	"github.com/jhoicas/Talento-api/internal/domain/authz"
	"github.com/jhoicas/Talento-api/internal/domain/entity"
	"github.com/jhoicas/Talento-api/internal/domain/repository"
)

// UserUseCase administración de usuarios de un tenant: alta, listado, toggle de
// estado y cambio de password. Toda operación queda acotada a la empresa target
// tanto por el predicado de autorización como por la query.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario del tenant. El password viaja en texto y se hashea en
// el almacén de credenciales; el rol superadmin no puede crearse por esta vía.
func (uc *UserUseCase) Create(p authz.Principal, companyID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := p.RequireCompany(companyID); err != nil {
		return nil, err
	}
	role := entity.Role(in.Role)
	if !role.Valid() || role == entity.RoleSuperadmin {
		return nil, fmt.Errorf("%w: rol inválido", domain.ErrInvalidInput)
	}
	now := time.Now()
	user := &entity.User{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Email:     in.Email,
		Name:      in.Name,
		Role:      role,
		Status:    entity.UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(user, in.Password); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// ListByCompany lista los usuarios de una empresa con paginación.
func (uc *UserUseCase) ListByCompany(p authz.Principal, companyID string, limit, offset int) (*dto.UserListResponse, error) {
	if err := p.RequireCompany(companyID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// UpdateStatus alterna active/inactive de un usuario del tenant. El usuario
// puede alternarse cualquier número de veces; no hay más transiciones de estado.
func (uc *UserUseCase) UpdateStatus(p authz.Principal, companyID, userID, status string) (*dto.UserResponse, error) {
	if err := p.RequireCompany(companyID); err != nil {
		return nil, err
	}
	if status != entity.UserStatusActive && status != entity.UserStatusInactive {
		return nil, fmt.Errorf("%w: status debe ser active o inactive", domain.ErrInvalidInput)
	}
	user, err := uc.lookupInCompany(companyID, userID)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateStatus(userID, status); err != nil {
		return nil, err
	}
	user.Status = status
	user.UpdatedAt = time.Now()
	return auth.ToUserResponse(user), nil
}

// ChangePassword cambia el password en caliente (sin transición de estado).
// Permitido al propio usuario o a quien administre su empresa.
func (uc *UserUseCase) ChangePassword(p authz.Principal, companyID, userID, newPassword string) error {
	if p.UserID != userID {
		if err := p.RequireCompany(companyID); err != nil {
			return err
		}
	}
	if _, err := uc.lookupInCompany(companyID, userID); err != nil {
		return err
	}
	return uc.repo.UpdatePassword(userID, newPassword)
}

// lookupInCompany busca el usuario y verifica que pertenezca a la empresa target.
// Un usuario de otro tenant se reporta como no encontrado, no como Forbidden,
// para no filtrar su existencia.
func (uc *UserUseCase) lookupInCompany(companyID, userID string) (*entity.User, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return user, nil
}
