package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/Tesoreria-api/internal/domain/repository"
)

// ErrorLogUseCase sumidero de eventos de error. El core y el transporte
// emiten eventos estructurados; aquí solo se completan y persisten.
type ErrorLogUseCase struct {
	repo repository.ErrorLogRepository
}

// NewErrorLogUseCase construye el caso de uso.
func NewErrorLogUseCase(repo repository.ErrorLogRepository) *ErrorLogUseCase {
	return &ErrorLogUseCase{repo: repo}
}

// Report persiste un evento de error con contexto (operación, company, usuario).
func (uc *ErrorLogUseCase) Report(ctx context.Context, event entity.ErrorEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Severity == "" {
		event.Severity = entity.SeverityMedium
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	return uc.repo.Create(ctx, &event)
}
