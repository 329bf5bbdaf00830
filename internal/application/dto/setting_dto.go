package dto

import (
	"time"

	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
)

// UpdateSettingRequest entrada para guardar la configuración de la company.
type UpdateSettingRequest struct {
	CompanyName string          `json:"company_name" validate:"required"`
	Currency    string          `json:"currency"`
	Timezone    string          `json:"timezone"`
	Features    entity.Features `json:"features"`
	Limits      entity.Limits   `json:"limits"`
}

// SettingResponse configuración vigente (valores por defecto si nunca se guardó).
type SettingResponse struct {
	CompanyID   string          `json:"company_id"`
	CompanyName string          `json:"company_name"`
	Currency    string          `json:"currency"`
	Timezone    string          `json:"timezone"`
	Features    entity.Features `json:"features"`
	Limits      entity.Limits   `json:"limits"`
	UpdatedAt   time.Time       `json:"updated_at,omitempty"`
}

// ReportErrorRequest entrada de POST /api/errors (reporte de errores del cliente).
type ReportErrorRequest struct {
	Message  string `json:"message" validate:"required"`
	Stack    string `json:"stack"`
	Context  string `json:"context"`
	Severity string `json:"severity" validate:"omitempty,oneof=low medium high critical"`
}
