package dto

// CreateUserRequest entrada para crear un usuario del tenant (password en texto,
// se hashea en el almacén de credenciales, nunca antes).
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"required,oneof=companyadmin servicemanager employee"`
}

// UpdateUserStatusRequest toggle active/inactive de un usuario.
type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// ChangePasswordRequest cambio de password en caliente (sin transición de estado).
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// UserListResponse lista paginada de usuarios de una empresa.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
