package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Tesoreria-api/internal/application/dto"
	"github.com/jhoicas/Tesoreria-api/internal/domain/repository"
)

// DashboardUseCase contadores rápidos para el panel de la company.
type DashboardUseCase struct {
	users   repository.UserRepository
	records repository.LedgerRepository
	now     func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(users repository.UserRepository, records repository.LedgerRepository) *DashboardUseCase {
	return &DashboardUseCase{users: users, records: records, now: time.Now}
}

// Stats devuelve usuarios activos y conteo de arqueos de hoy, del mes y totales.
func (uc *DashboardUseCase) Stats(ctx context.Context, companyID string) (*dto.DashboardStatsResponse, error) {
	now := uc.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	users, err := uc.users.CountActiveByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	today, err := uc.records.CountCreatedSince(ctx, companyID, startOfDay)
	if err != nil {
		return nil, err
	}
	month, err := uc.records.CountCreatedSince(ctx, companyID, startOfMonth)
	if err != nil {
		return nil, err
	}
	total, err := uc.records.CountByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStatsResponse{
		TotalUsers:   users,
		TodayRecords: today,
		MonthRecords: month,
		TotalRecords: total,
		SystemStatus: "active",
	}, nil
}
