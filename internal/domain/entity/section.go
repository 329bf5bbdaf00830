package entity

import (
	"sort"
	"time"
)

// SectionItem un concepto configurable del catálogo de una categoría.
// Las etiquetas vienen en árabe y francés porque el front de captura es bilingüe.
type SectionItem struct {
	LabelAr       string `json:"label_ar"`
	LabelFr       string `json:"label_fr"`
	OperationType string `json:"operation_type"` // credit | debit
	Icon          string `json:"icon,omitempty"`
	IsActive      bool   `json:"is_active"`
	SortOrder     int    `json:"sort_order"`
	Notes         string `json:"notes,omitempty"`
}

// Section catálogo de conceptos de una categoría para una company.
// Única por (CompanyID, Category).
type Section struct {
	ID        string
	CompanyID string
	Category  string // cash, reserve_fund, guarantee
	Items     []SectionItem
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActiveItems devuelve solo los conceptos activos, ordenados por SortOrder.
func (s *Section) ActiveItems() []SectionItem {
	items := make([]SectionItem, 0, len(s.Items))
	for _, it := range s.Items {
		if it.IsActive {
			items = append(items, it)
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })
	return items
}
