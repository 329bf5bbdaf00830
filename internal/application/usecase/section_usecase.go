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

// SectionUseCase catálogo configurable de conceptos por categoría.
type SectionUseCase struct {
	repo repository.SectionRepository
}

// NewSectionUseCase construye el caso de uso.
func NewSectionUseCase(repo repository.SectionRepository) *SectionUseCase {
	return &SectionUseCase{repo: repo}
}

// Get devuelve el catálogo de la company: por categoría, solo conceptos
// activos y ordenados por sort_order.
func (uc *SectionUseCase) Get(ctx context.Context, companyID string) (dto.SectionsResponse, error) {
	sections, err := uc.repo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := dto.SectionsResponse{}
	for _, s := range sections {
		if !s.IsActive {
			continue
		}
		out[s.Category] = s.ActiveItems()
	}
	return out, nil
}

// AddItem añade un concepto al final del catálogo de la categoría, creando el
// catálogo si es la primera vez.
func (uc *SectionUseCase) AddItem(ctx context.Context, companyID, category string, in dto.AddSectionItemRequest) (*entity.SectionItem, error) {
	if !validCategory(category) {
		return nil, domain.ErrValidation
	}
	if in.LabelAr == "" || in.LabelFr == "" {
		return nil, domain.ErrValidation
	}
	if in.OperationType != entity.OperationCredit && in.OperationType != entity.OperationDebit {
		return nil, domain.ErrValidation
	}

	section, err := uc.repo.GetByCompanyAndCategory(ctx, companyID, category)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if section == nil {
		section = &entity.Section{
			ID:        uuid.New().String(),
			CompanyID: companyID,
			Category:  category,
			IsActive:  true,
			CreatedAt: now,
		}
	}

	icon := in.Icon
	if icon == "" {
		icon = "📋"
	}
	item := entity.SectionItem{
		LabelAr:       in.LabelAr,
		LabelFr:       in.LabelFr,
		OperationType: in.OperationType,
		Icon:          icon,
		IsActive:      true,
		SortOrder:     len(section.Items),
		Notes:         in.Notes,
	}
	section.Items = append(section.Items, item)
	section.UpdatedAt = now
	if err := uc.repo.Save(ctx, section); err != nil {
		return nil, err
	}
	return &item, nil
}

func validCategory(category string) bool {
	for _, c := range entity.Categories() {
		if category == c {
			return true
		}
	}
	return false
}
