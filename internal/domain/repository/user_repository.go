package repository

import (
	"time"

	"github.com/jhoicas/Talento-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
//
// El hashing de passwords ocurre en UN solo punto: dentro de la implementación,
// en Create/UpdatePassword/RedeemResetToken. Los callers entregan el password en
// texto plano y tienen prohibido pre-hashear (riesgo de doble hash).
type UserRepository interface {
	// Create persiste un usuario nuevo hasheando plainPassword.
	// Devuelve domain.ErrEmailAlreadyExists si el email ya existe (único global).
	Create(user *entity.User, plainPassword string) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.User, error)
	// UpdateStatus cambia el estado active/inactive.
	UpdateStatus(id, status string) error
	// UpdatePassword re-hashea y guarda el password en el mismo paso.
	UpdatePassword(id, plainPassword string) error
	// SetResetToken guarda token+expiración en el usuario con ese email,
	// reemplazando cualquier token previo (solo vale el último emitido).
	// Devuelve false si el email no existe.
	SetResetToken(email, token string, expires time.Time) (bool, error)
	// RedeemResetToken localiza-y-limpia el token en una sola operación atómica
	// condicionada a que la expiración siga vigente, guardando el nuevo hash en
	// el mismo paso. Devuelve nil si el token no existe o ya expiró: un mismo
	// token nunca puede redimirse dos veces.
	RedeemResetToken(token, plainNewPassword string) (*entity.User, error)
}
