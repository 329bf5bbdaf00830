package repository

import (
	"context"

	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
)

// ErrorLogRepository sumidero de eventos de error para auditoría.
type ErrorLogRepository interface {
	Create(ctx context.Context, event *entity.ErrorEvent) error
}
