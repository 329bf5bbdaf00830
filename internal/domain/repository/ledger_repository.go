package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
)

// LedgerFilter filtros para listar arqueos de una company.
type LedgerFilter struct {
	From         *time.Time
	To           *time.Time
	AuthorUserID string
	Limit        int
	Offset       int
}

// LedgerRepository define el puerto de persistencia para LedgerRecord.
// Todas las consultas excluyen registros con is_deleted (borrado lógico).
type LedgerRepository interface {
	// Create inserta un arqueo nuevo. Devuelve domain.ErrDuplicate si ya
	// existe uno no borrado para (companyID, date): el índice único de la
	// base serializa creaciones concurrentes del mismo día.
	Create(ctx context.Context, rec *entity.LedgerRecord) error
	Update(ctx context.Context, rec *entity.LedgerRecord) error
	GetByCompanyAndDate(ctx context.Context, companyID string, date time.Time) (*entity.LedgerRecord, error)
	List(ctx context.Context, companyID string, f LedgerFilter) ([]*entity.LedgerRecord, int, error)
	// ListByDateRange devuelve los arqueos del rango [from, to] ordenados por fecha.
	ListByDateRange(ctx context.Context, companyID string, from, to time.Time) ([]*entity.LedgerRecord, error)
	CountByCompany(ctx context.Context, companyID string) (int, error)
	CountCreatedSince(ctx context.Context, companyID string, since time.Time) (int, error)
}
