package dto

import (
	"time"

	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
)

// DateLayout formato de fecha de la API para días calendario.
const DateLayout = "2006-01-02"

// UpsertLedgerRequest entrada para guardar el arqueo de un día.
// Los value objects (Balances, Operations, Totals, Metadata) se comparten con
// el dominio: su forma JSON es la misma en la API y en la columna JSONB.
type UpsertLedgerRequest struct {
	Date       string            `json:"date" validate:"required"`
	Balances   entity.Balances   `json:"balances" validate:"required"`
	Operations entity.Operations `json:"operations"`
	Totals     entity.Totals     `json:"totals"`
	Metadata   entity.Metadata   `json:"metadata"`
}

// LedgerRecordResponse salida de un arqueo.
type LedgerRecordResponse struct {
	ID           string            `json:"id"`
	CompanyID    string            `json:"company_id"`
	Date         string            `json:"date"`
	AuthorUserID string            `json:"author_user_id"`
	Balances     entity.Balances   `json:"balances"`
	Operations   entity.Operations `json:"operations"`
	Totals       entity.Totals     `json:"totals"`
	Metadata     entity.Metadata   `json:"metadata"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ListLedgerRequest filtros de listado de arqueos.
type ListLedgerRequest struct {
	PageRequest
	StartDate    string `query:"start_date"`
	EndDate      string `query:"end_date"`
	AuthorUserID string `query:"user_id"`
}

// LedgerListResponse página de arqueos.
type LedgerListResponse struct {
	Data []LedgerRecordResponse `json:"data"`
	Page PageResponse           `json:"pagination"`
}
