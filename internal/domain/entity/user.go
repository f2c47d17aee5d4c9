package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// Estados de cuenta.
const (
	UserActive   = "ACTIVE"
	UserInactive = "INACTIVE"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ADMIN, STAFF
	Status       string // ACTIVE, INACTIVE
	Avatar       string
	LastActive   time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
