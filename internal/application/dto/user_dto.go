package dto

import "time"

// LoginRequest entrada para login: la company define el ámbito del usuario.
type LoginRequest struct {
	CompanyID string `json:"company_id" validate:"required"`
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y perfil del usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse salida de un usuario (sin hash de contraseña ni contadores de bloqueo).
type UserResponse struct {
	ID        string     `json:"id"`
	CompanyID string     `json:"company_id"`
	Username  string     `json:"username"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=admin manager user viewer"`
}

// UpdateUserRequest entrada para actualizar un usuario; los campos vacíos no se tocan.
type UpdateUserRequest struct {
	FullName string `json:"full_name" validate:"omitempty,max=100"`
	Role     string `json:"role" validate:"omitempty,oneof=admin manager user viewer"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
}

// ListUsersRequest filtros de listado de usuarios.
type ListUsersRequest struct {
	PageRequest
	Search string `query:"search"`
	Role   string `query:"role"`
}

// UserListResponse página de usuarios.
type UserListResponse struct {
	Data []UserResponse `json:"data"`
	Page PageResponse   `json:"pagination"`
}
