package repository

import (
	"context"

	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
)

// SettingRepository define el puerto de persistencia para la configuración por company.
type SettingRepository interface {
	GetByCompany(ctx context.Context, companyID string) (*entity.Setting, error)
	// Upsert crea o reemplaza la configuración (única por company).
	Upsert(ctx context.Context, setting *entity.Setting) error
}
