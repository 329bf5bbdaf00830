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

var _ repository.SettingRepository = (*SettingRepo)(nil)

// SettingRepo implementación del puerto SettingRepository sobre PostgreSQL.
type SettingRepo struct {
	pool *pgxpool.Pool
}

// NewSettingRepository construye el adaptador de persistencia para configuración.
func NewSettingRepository(pool *pgxpool.Pool) *SettingRepo {
	return &SettingRepo{pool: pool}
}

// GetByCompany devuelve la configuración de la company, o nil si nunca se guardó.
func (r *SettingRepo) GetByCompany(ctx context.Context, companyID string) (*entity.Setting, error) {
	query := `
		SELECT id, company_id, company_name, currency, timezone, features, limits, created_at, updated_at
		FROM settings WHERE company_id = $1`
	var s entity.Setting
	var features, limits []byte
	err := r.pool.QueryRow(ctx, query, companyID).Scan(
		&s.ID, &s.CompanyID, &s.CompanyName, &s.Currency, &s.Timezone, &features, &limits,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	if err := json.Unmarshal(features, &s.Features); err != nil {
		return nil, fmt.Errorf("unmarshal features: %w", err)
	}
	if err := json.Unmarshal(limits, &s.Limits); err != nil {
		return nil, fmt.Errorf("unmarshal limits: %w", err)
	}
	return &s, nil
}

// Upsert inserta o reemplaza la configuración (única por company).
func (r *SettingRepo) Upsert(ctx context.Context, setting *entity.Setting) error {
	features, err := json.Marshal(setting.Features)
	if err != nil {
		return fmt.Errorf("marshal features: %w", err)
	}
	limits, err := json.Marshal(setting.Limits)
	if err != nil {
		return fmt.Errorf("marshal limits: %w", err)
	}
	query := `
		INSERT INTO settings (id, company_id, company_name, currency, timezone, features, limits, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (company_id)
		DO UPDATE SET company_name = EXCLUDED.company_name, currency = EXCLUDED.currency,
			timezone = EXCLUDED.timezone, features = EXCLUDED.features, limits = EXCLUDED.limits,
			updated_at = EXCLUDED.updated_at`
	_, err = r.pool.Exec(ctx, query,
		setting.ID, setting.CompanyID, setting.CompanyName, setting.Currency, setting.Timezone,
		features, limits, setting.CreatedAt, setting.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert setting: %w", err)
	}
	return nil
}
