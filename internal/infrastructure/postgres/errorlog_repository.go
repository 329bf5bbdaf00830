package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/Tesoreria-api/internal/domain/repository"
)

var _ repository.ErrorLogRepository = (*ErrorLogRepo)(nil)

// ErrorLogRepo implementación del puerto ErrorLogRepository sobre PostgreSQL.
type ErrorLogRepo struct {
	pool *pgxpool.Pool
}

// NewErrorLogRepository construye el adaptador de persistencia de eventos de error.
func NewErrorLogRepository(pool *pgxpool.Pool) *ErrorLogRepo {
	return &ErrorLogRepo{pool: pool}
}

// Create persiste un evento de error.
func (r *ErrorLogRepo) Create(ctx context.Context, event *entity.ErrorEvent) error {
	query := `
		INSERT INTO error_logs (id, company_id, user_id, message, stack, context, severity, is_resolved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query,
		event.ID, event.CompanyID, event.UserID, event.Message, event.Stack,
		event.Context, event.Severity, event.IsResolved, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert error log: %w", err)
	}
	return nil
}
