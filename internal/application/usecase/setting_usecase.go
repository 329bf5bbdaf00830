package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Tesoreria-api/internal/application/dto"
	"github.com/jhoicas/Tesoreria-api/internal/domain"
	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/Tesoreria-api/internal/domain/repository"
)

// SettingUseCase configuración por company.
type SettingUseCase struct {
	repo repository.SettingRepository
}

// NewSettingUseCase construye el caso de uso.
func NewSettingUseCase(repo repository.SettingRepository) *SettingUseCase {
	return &SettingUseCase{repo: repo}
}

// Get devuelve la configuración vigente; si la company nunca guardó nada,
// los valores por defecto (sin persistirlos).
func (uc *SettingUseCase) Get(ctx context.Context, companyID string) (*dto.SettingResponse, error) {
	setting, err := uc.repo.GetByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		setting = entity.DefaultSetting(companyID)
	}
	return toSettingResponse(setting), nil
}

// Update guarda la configuración (upsert: crea o reemplaza).
func (uc *SettingUseCase) Update(ctx context.Context, companyID string, in dto.UpdateSettingRequest) (*dto.SettingResponse, error) {
	if in.CompanyName == "" {
		return nil, domain.ErrValidation
	}
	setting, err := uc.repo.GetByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if setting == nil {
		setting = entity.DefaultSetting(companyID)
		setting.ID = uuid.New().String()
		setting.CreatedAt = now
	}
	setting.CompanyName = in.CompanyName
	if in.Currency != "" {
		setting.Currency = in.Currency
	}
	if in.Timezone != "" {
		setting.Timezone = in.Timezone
	}
	setting.Features = in.Features
	setting.Limits = in.Limits
	setting.UpdatedAt = now
	if err := uc.repo.Upsert(ctx, setting); err != nil {
		return nil, err
	}
	return toSettingResponse(setting), nil
}

func toSettingResponse(s *entity.Setting) *dto.SettingResponse {
	return &dto.SettingResponse{
		CompanyID:   s.CompanyID,
		CompanyName: s.CompanyName,
		Currency:    s.Currency,
		Timezone:    s.Timezone,
		Features:    s.Features,
		Limits:      s.Limits,
		UpdatedAt:   s.UpdatedAt,
	}
}
