package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa. Dispara la invitación al
// email del futuro admin; el usuario admin NO se crea aquí.
type CreateCompanyRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	LogoURL    string `json:"logo_url" validate:"omitempty,url"`
	AdminEmail string `json:"admin_email" validate:"required,email"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	LogoURL *string `json:"logo_url" validate:"omitempty,url"`
}

// UpdateCompanyStatusRequest toggle active/inactive (solo superadmin).
// pending no es un destino válido.
type UpdateCompanyStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// AcceptInvitationRequest entrada para redimir una invitación y crear el primer
// companyadmin de la empresa.
type AcceptInvitationRequest struct {
	Token    string `json:"token" validate:"required"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// CompanyResponse salida de una empresa (el token de invitación nunca se expone).
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logo_url,omitempty"`
	AdminID   string    `json:"admin_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// AcceptInvitationResponse salida de la redención: la empresa activada y su admin.
type AcceptInvitationResponse struct {
	Company CompanyResponse `json:"company"`
	User    UserResponse    `json:"user"`
}
