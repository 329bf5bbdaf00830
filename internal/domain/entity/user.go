package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
	RoleViewer  = "viewer"
)

// Estados válidos para User.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

// ValidRole indica si el rol existe en el sistema.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleUser, RoleViewer:
		return true
	}
	return false
}

// RoleAllowed verifica pertenencia del rol al conjunto permitido (RBAC puro, sin estado).
func RoleAllowed(role string, allowed ...string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// User representa un operador del sistema (pertenece a una Company).
// FailedAttempts y LockUntil son el estado del bloqueo por fuerza bruta:
// a partir de 5 fallos consecutivos la cuenta queda bloqueada 30 minutos.
type User struct {
	ID             string
	CompanyID      string
	Username       string // único dentro de la company
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	FullName       string
	Role           string // admin, manager, user, viewer
	Status         string // active, inactive, suspended
	LastLogin      *time.Time
	FailedAttempts int
	LockUntil      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsLocked indica si la cuenta está dentro de la ventana de bloqueo.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockUntil != nil && now.Before(*u.LockUntil)
}
