package dto

// LoginRequest credenciales para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario sin campos sensibles (el hash de password nunca sale).
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	Avatar     string `json:"avatar,omitempty"`
	LastActive string `json:"last_active"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest body para POST /api/users (solo ADMIN).
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`   // defecto STAFF
	Status   string `json:"status,omitempty"` // defecto ACTIVE
	Avatar   string `json:"avatar,omitempty"`
}

// UpdateUserRequest body para PUT /api/users/:id (solo ADMIN).
// Campos vacíos se dejan como están; Password vacío no cambia la clave.
type UpdateUserRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
	Status   string `json:"status,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}
