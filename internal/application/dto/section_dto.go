package dto

import "github.com/jhoicas/Tesoreria-api/internal/domain/entity"

// AddSectionItemRequest entrada para añadir un concepto al catálogo de una categoría.
type AddSectionItemRequest struct {
	LabelAr       string `json:"label_ar" validate:"required"`
	LabelFr       string `json:"label_fr" validate:"required"`
	OperationType string `json:"operation_type" validate:"required,oneof=credit debit"`
	Icon          string `json:"icon"`
	Notes         string `json:"notes"`
}

// SectionsResponse catálogo por categoría: solo conceptos activos, ordenados.
type SectionsResponse map[string][]entity.SectionItem
