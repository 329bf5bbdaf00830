package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
)

// UserFilter filtros para listar usuarios de una company.
type UserFilter struct {
	Search string // busca en username y full_name
	Role   string
	Limit  int
	Offset int
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsernameAndCompany(ctx context.Context, username, companyID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	ListByCompany(ctx context.Context, companyID string, f UserFilter) ([]*entity.User, int, error)
	CountActiveAdmins(ctx context.Context, companyID string) (int, error)
	CountActiveByCompany(ctx context.Context, companyID string) (int, error)

	// RegisterFailedAttempt incrementa failed_attempts y, si el nuevo valor
	// alcanza threshold, fija lock_until en un solo UPDATE atómico (dos
	// logins fallidos concurrentes no deben perder un incremento).
	// Devuelve el contador resultante y el lock vigente.
	RegisterFailedAttempt(ctx context.Context, id string, threshold int, lockUntil time.Time) (int, *time.Time, error)

	// RegisterSuccessfulLogin reinicia el contador, limpia el lock y
	// estampa last_login.
	RegisterSuccessfulLogin(ctx context.Context, id string, at time.Time) error
}
