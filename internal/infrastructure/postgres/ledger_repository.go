package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Tesoreria-api/internal/domain"
	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/Tesoreria-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

const ledgerColumns = `id, company_id, date, author_user_id, balances, operations,
	total_cash, total_reserve_fund, total_guarantee, total_grand, metadata, is_deleted,
	created_at, updated_at`

// LedgerRepo implementación del puerto LedgerRepository sobre PostgreSQL.
//
// Balances, operaciones y metadata se guardan como JSONB (su esquema es laxo
// y no participa en consultas); los totales van en columnas NUMERIC para
// poder agregarlos en SQL. El índice único parcial
// ux_ledger_company_date (company_id, date) WHERE NOT is_deleted
// garantiza un único arqueo vivo por día.
type LedgerRepo struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository construye el adaptador de persistencia para arqueos.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Create inserta un arqueo nuevo. Devuelve domain.ErrDuplicate si otro envío
// concurrente ya creó el arqueo del día (para reintentar como update).
func (r *LedgerRepo) Create(ctx context.Context, rec *entity.LedgerRecord) error {
	balances, operations, metadata, err := marshalPayload(rec)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO ledger_records (id, company_id, date, author_user_id, balances, operations,
			total_cash, total_reserve_fund, total_guarantee, total_grand, metadata, is_deleted,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.pool.Exec(ctx, query,
		rec.ID, rec.CompanyID, rec.Date, rec.AuthorUserID, balances, operations,
		rec.Totals.Cash, rec.Totals.ReserveFund, rec.Totals.Guarantee, rec.Totals.Grand,
		metadata, rec.IsDeleted, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ledger record: %w", err)
	}
	return nil
}

// Update reemplaza el contenido del arqueo (identidad y created_at se conservan).
func (r *LedgerRepo) Update(ctx context.Context, rec *entity.LedgerRecord) error {
	balances, operations, metadata, err := marshalPayload(rec)
	if err != nil {
		return err
	}
	query := `
		UPDATE ledger_records
		SET author_user_id = $2, balances = $3, operations = $4,
		    total_cash = $5, total_reserve_fund = $6, total_guarantee = $7, total_grand = $8,
		    metadata = $9, updated_at = $10
		WHERE id = $1 AND NOT is_deleted`
	tag, err := r.pool.Exec(ctx, query,
		rec.ID, rec.AuthorUserID, balances, operations,
		rec.Totals.Cash, rec.Totals.ReserveFund, rec.Totals.Guarantee, rec.Totals.Grand,
		metadata, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ledger record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByCompanyAndDate obtiene el arqueo no borrado de un día, o nil si no existe.
func (r *LedgerRepo) GetByCompanyAndDate(ctx context.Context, companyID string, date time.Time) (*entity.LedgerRecord, error) {
	query := `SELECT ` + ledgerColumns + `
		FROM ledger_records WHERE company_id = $1 AND date = $2 AND NOT is_deleted`
	rec, err := scanLedgerRow(r.pool.QueryRow(ctx, query, companyID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger record by date: %w", err)
	}
	return rec, nil
}

// List lista arqueos no borrados con rango de fechas, autor y paginación.
func (r *LedgerRepo) List(ctx context.Context, companyID string, f repository.LedgerFilter) ([]*entity.LedgerRecord, int, error) {
	where := `WHERE company_id = $1 AND NOT is_deleted
		AND ($2::date IS NULL OR date >= $2)
		AND ($3::date IS NULL OR date <= $3)
		AND ($4 = '' OR author_user_id = $4)`

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ledger_records `+where,
		companyID, f.From, f.To, f.AuthorUserID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count ledger records: %w", err)
	}

	query := `SELECT ` + ledgerColumns + ` FROM ledger_records ` + where + `
		ORDER BY date DESC LIMIT $5 OFFSET $6`
	rows, err := r.pool.Query(ctx, query, companyID, f.From, f.To, f.AuthorUserID, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list ledger records: %w", err)
	}
	defer rows.Close()

	list, err := collectLedgerRows(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListByDateRange devuelve los arqueos no borrados de [from, to] por fecha ascendente.
func (r *LedgerRepo) ListByDateRange(ctx context.Context, companyID string, from, to time.Time) ([]*entity.LedgerRecord, error) {
	query := `SELECT ` + ledgerColumns + `
		FROM ledger_records
		WHERE company_id = $1 AND date BETWEEN $2 AND $3 AND NOT is_deleted
		ORDER BY date ASC`
	rows, err := r.pool.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list ledger records by range: %w", err)
	}
	defer rows.Close()
	return collectLedgerRows(rows)
}

// CountByCompany cuenta los arqueos no borrados de la company.
func (r *LedgerRepo) CountByCompany(ctx context.Context, companyID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM ledger_records WHERE company_id = $1 AND NOT is_deleted`,
		companyID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count ledger records: %w", err)
	}
	return count, nil
}

// CountCreatedSince cuenta arqueos no borrados creados a partir de un instante.
func (r *LedgerRepo) CountCreatedSince(ctx context.Context, companyID string, since time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM ledger_records WHERE company_id = $1 AND created_at >= $2 AND NOT is_deleted`,
		companyID, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count ledger records since: %w", err)
	}
	return count, nil
}

func marshalPayload(rec *entity.LedgerRecord) (balances, operations, metadata []byte, err error) {
	if balances, err = json.Marshal(rec.Balances); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal balances: %w", err)
	}
	ops := rec.Operations
	if ops == nil {
		ops = entity.Operations{}
	}
	if operations, err = json.Marshal(ops); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal operations: %w", err)
	}
	if metadata, err = json.Marshal(rec.Metadata); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal metadata: %w", err)
	}
	return balances, operations, metadata, nil
}

func scanLedgerRow(row pgx.Row) (*entity.LedgerRecord, error) {
	var rec entity.LedgerRecord
	var balances, operations, metadata []byte
	err := row.Scan(
		&rec.ID, &rec.CompanyID, &rec.Date, &rec.AuthorUserID, &balances, &operations,
		&rec.Totals.Cash, &rec.Totals.ReserveFund, &rec.Totals.Guarantee, &rec.Totals.Grand,
		&metadata, &rec.IsDeleted, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(balances, &rec.Balances); err != nil {
		return nil, fmt.Errorf("unmarshal balances: %w", err)
	}
	if err := json.Unmarshal(operations, &rec.Operations); err != nil {
		return nil, fmt.Errorf("unmarshal operations: %w", err)
	}
	if err := json.Unmarshal(metadata, &rec.Metadata); err != nil {
		return nil, fmt.Errorf("unmarshal metadata: %w", err)
	}
	return &rec, nil
}

func collectLedgerRows(rows pgx.Rows) ([]*entity.LedgerRecord, error) {
	var list []*entity.LedgerRecord
	for rows.Next() {
		rec, err := scanLedgerRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ledger record: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
