package repository

import (
	"context"

	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
)

// SectionRepository define el puerto de persistencia para el catálogo de conceptos.
type SectionRepository interface {
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Section, error)
	GetByCompanyAndCategory(ctx context.Context, companyID, category string) (*entity.Section, error)
	// Save inserta o reemplaza el catálogo de la categoría (único por company+category).
	Save(ctx context.Context, section *entity.Section) error
}
