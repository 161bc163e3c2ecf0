package entity

import "time"

// Estados válidos para Company. El ciclo de vida es:
// pending → (aceptación de invitación) → active → (toggle superadmin) → active/inactive.
// Nunca se vuelve a pending.
const (
	CompanyStatusPending  = "pending"
	CompanyStatusActive   = "active"
	CompanyStatusInactive = "inactive"
)

// Company representa una organización/tenant del sistema. Se crea en estado
// pending con un token de invitación; al redimirse el token se crea su primer
// companyadmin y AdminID queda como back-reference a ese usuario.
type Company struct {
	ID            string
	Name          string // único
	LogoURL       string
	AdminID       *string // nil hasta que la invitación se redime
	Status        string  // pending, active, inactive
	InviteToken   *string
	InviteExpires *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
