package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/Tesoreria-api/internal/domain/repository"
)

var _ repository.SectionRepository = (*SectionRepo)(nil)

// SectionRepo implementación del puerto SectionRepository sobre PostgreSQL.
// Los items se guardan como JSONB; el catálogo es único por (company, category).
type SectionRepo struct {
	pool *pgxpool.Pool
}

// NewSectionRepository construye el adaptador de persistencia para catálogos.
func NewSectionRepository(pool *pgxpool.Pool) *SectionRepo {
	return &SectionRepo{pool: pool}
}

// ListByCompany devuelve todos los catálogos de la company.
func (r *SectionRepo) ListByCompany(ctx context.Context, companyID string) ([]*entity.Section, error) {
	query := `
		SELECT id, company_id, category, items, is_active, created_at, updated_at
		FROM sections WHERE company_id = $1`
	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var list []*entity.Section
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// GetByCompanyAndCategory devuelve el catálogo de una categoría, o nil.
func (r *SectionRepo) GetByCompanyAndCategory(ctx context.Context, companyID, category string) (*entity.Section, error) {
	query := `
		SELECT id, company_id, category, items, is_active, created_at, updated_at
		FROM sections WHERE company_id = $1 AND category = $2`
	s, err := scanSection(r.pool.QueryRow(ctx, query, companyID, category))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get section: %w", err)
	}
	return s, nil
}

// Save inserta o reemplaza el catálogo (upsert sobre company+category).
func (r *SectionRepo) Save(ctx context.Context, section *entity.Section) error {
	items, err := json.Marshal(section.Items)
	if err != nil {
		return fmt.Errorf("marshal section items: %w", err)
	}
	query := `
		INSERT INTO sections (id, company_id, category, items, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (company_id, category)
		DO UPDATE SET items = EXCLUDED.items, is_active = EXCLUDED.is_active, updated_at = EXCLUDED.updated_at`
	_, err = r.pool.Exec(ctx, query,
		section.ID, section.CompanyID, section.Category, items, section.IsActive,
		section.CreatedAt, section.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save section: %w", err)
	}
	return nil
}

func scanSection(row pgx.Row) (*entity.Section, error) {
	var s entity.Section
	var items []byte
	if err := row.Scan(&s.ID, &s.CompanyID, &s.Category, &items, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &s.Items); err != nil {
		return nil, fmt.Errorf("unmarshal section items: %w", err)
	}
	return &s, nil
}
