package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jhoicas/Tesoreria-api/internal/application/dto"
	"github.com/jhoicas/Tesoreria-api/internal/domain"
	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/Tesoreria-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedgerRepo repositorio en memoria que reproduce el índice único
// (company, fecha) bajo mutex: la segunda creación del mismo día devuelve
// ErrDuplicate, igual que la base real.
type fakeLedgerRepo struct {
	mu   sync.Mutex
	recs map[string]*entity.LedgerRecord // clave companyID|fecha
}

func newFakeLedgerRepo() *fakeLedgerRepo {
	return &fakeLedgerRepo{recs: make(map[string]*entity.LedgerRecord)}
}

func ledgerKey(companyID string, date time.Time) string {
	return companyID + "|" + date.Format(dto.DateLayout)
}

func (r *fakeLedgerRepo) Create(_ context.Context, rec *entity.LedgerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := ledgerKey(rec.CompanyID, rec.Date)
	if _, ok := r.recs[key]; ok {
		return domain.ErrDuplicate
	}
	cp := *rec
	r.recs[key] = &cp
	return nil
}

func (r *fakeLedgerRepo) Update(_ context.Context, rec *entity.LedgerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := ledgerKey(rec.CompanyID, rec.Date)
	if _, ok := r.recs[key]; !ok {
		return domain.ErrNotFound
	}
	cp := *rec
	r.recs[key] = &cp
	return nil
}

func (r *fakeLedgerRepo) GetByCompanyAndDate(_ context.Context, companyID string, date time.Time) (*entity.LedgerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.recs[ledgerKey(companyID, date)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *fakeLedgerRepo) List(_ context.Context, companyID string, f repository.LedgerFilter) ([]*entity.LedgerRecord, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.LedgerRecord
	for _, rec := range r.recs {
		if rec.CompanyID != companyID {
			continue
		}
		if f.AuthorUserID != "" && rec.AuthorUserID != f.AuthorUserID {
			continue
		}
		if f.From != nil && rec.Date.Before(*f.From) {
			continue
		}
		if f.To != nil && rec.Date.After(*f.To) {
			continue
		}
		cp := *rec
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeLedgerRepo) ListByDateRange(ctx context.Context, companyID string, from, to time.Time) ([]*entity.LedgerRecord, error) {
	list, _, err := r.List(ctx, companyID, repository.LedgerFilter{From: &from, To: &to})
	return list, err
}

func (r *fakeLedgerRepo) CountByCompany(_ context.Context, companyID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rec := range r.recs {
		if rec.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}

func (r *fakeLedgerRepo) CountCreatedSince(_ context.Context, companyID string, since time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rec := range r.recs {
		if rec.CompanyID == companyID && !rec.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

type fakeSettingRepo struct{}

func (fakeSettingRepo) GetByCompany(context.Context, string) (*entity.Setting, error) { return nil, nil }
func (fakeSettingRepo) Upsert(context.Context, *entity.Setting) error                 { return nil }

type fakePDF struct{}

func (fakePDF) GenerateDailyReportPDF(context.Context, *entity.LedgerRecord, *entity.Setting) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

func testLedgerUC(repo repository.LedgerRepository) *LedgerUseCase {
	return NewLedgerUseCase(repo, fakeSettingRepo{}, fakePDF{})
}

func dec(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func upsertReq(date, cash string) dto.UpsertLedgerRequest {
	return dto.UpsertLedgerRequest{
		Date: date,
		Balances: entity.Balances{
			Cash:        entity.BalanceSheet{Initial: dec("100.00"), Final: dec(cash)},
			ReserveFund: entity.BalanceSheet{Initial: dec("50.00"), Final: dec("50.00")},
			Guarantee:   entity.BalanceSheet{Initial: dec("20.00"), Final: dec("20.00")},
		},
		Operations: entity.Operations{
			entity.CategoryCash: []entity.OperationEntry{
				{Label: "Western Union", Type: entity.OperationCredit, Amount: dec("200.00")},
			},
		},
		Totals: entity.Totals{
			Cash:        dec(cash),
			ReserveFund: dec("50.00"),
			Guarantee:   dec("20.00"),
			Grand:       dec(cash).Add(dec("70.00")),
		},
	}
}

func TestUpsertFechaInvalida(t *testing.T) {
	uc := testLedgerUC(newFakeLedgerRepo())

	for _, date := range []string{"", "10/03/2026", "2026-3-1", "2026-13-01"} {
		_, err := uc.Upsert(context.Background(), "DEMO-001", "u-1", upsertReq(date, "100.00"))
		assert.ErrorIs(t, err, domain.ErrValidation, "fecha %q", date)
	}
}

func TestUpsertBalanceNegativo(t *testing.T) {
	uc := testLedgerUC(newFakeLedgerRepo())

	in := upsertReq("2026-03-10", "100.00")
	in.Balances.Guarantee.Final = dec("-1.00")
	_, err := uc.Upsert(context.Background(), "DEMO-001", "u-1", in)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpsertIdempotentePorDia(t *testing.T) {
	repo := newFakeLedgerRepo()
	uc := testLedgerUC(repo)
	ctx := context.Background()

	first, err := uc.Upsert(ctx, "DEMO-001", "u-1", upsertReq("2026-03-10", "150.00"))
	require.NoError(t, err)

	// Reenviar el mismo día reemplaza el contenido y reasigna el autor,
	// sin crear un segundo registro.
	second, err := uc.Upsert(ctx, "DEMO-001", "u-2", upsertReq("2026-03-10", "300.00"))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "u-2", second.AuthorUserID)
	assert.True(t, second.Totals.Cash.Equal(dec("300.00")))

	n, _ := repo.CountByCompany(ctx, "DEMO-001")
	assert.Equal(t, 1, n)
}

func TestUpsertConcurrenteMismoDia(t *testing.T) {
	repo := newFakeLedgerRepo()
	uc := testLedgerUC(repo)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Upsert(ctx, "DEMO-001", "u-1", upsertReq("2026-03-10", "100.00"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// El índice único serializa: queda exactamente un registro del día.
	n, _ := repo.CountByCompany(ctx, "DEMO-001")
	assert.Equal(t, 1, n)
}

func TestListRolUserSoloVeLosSuyos(t *testing.T) {
	repo := newFakeLedgerRepo()
	uc := testLedgerUC(repo)
	ctx := context.Background()

	_, err := uc.Upsert(ctx, "DEMO-001", "u-1", upsertReq("2026-03-10", "100.00"))
	require.NoError(t, err)
	_, err = uc.Upsert(ctx, "DEMO-001", "u-2", upsertReq("2026-03-11", "100.00"))
	require.NoError(t, err)

	out, err := uc.List(ctx, "DEMO-001", "u-1", entity.RoleUser, dto.ListLedgerRequest{})
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "u-1", out.Data[0].AuthorUserID)

	// Un admin ve todos y puede filtrar por autor.
	out, err = uc.List(ctx, "DEMO-001", "admin-1", entity.RoleAdmin, dto.ListLedgerRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Data, 2)

	out, err = uc.List(ctx, "DEMO-001", "admin-1", entity.RoleAdmin, dto.ListLedgerRequest{AuthorUserID: "u-2"})
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "u-2", out.Data[0].AuthorUserID)
}

func TestDailyReportInexistente(t *testing.T) {
	uc := testLedgerUC(newFakeLedgerRepo())

	_, err := uc.DailyReport(context.Background(), "DEMO-001", "2026-03-10")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDailyReportPDF(t *testing.T) {
	repo := newFakeLedgerRepo()
	uc := testLedgerUC(repo)
	ctx := context.Background()

	_, err := uc.Upsert(ctx, "DEMO-001", "u-1", upsertReq("2026-03-10", "100.00"))
	require.NoError(t, err)

	pdf, err := uc.DailyReportPDF(ctx, "DEMO-001", "2026-03-10")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}

func TestMonthlyAggregate(t *testing.T) {
	repo := newFakeLedgerRepo()
	uc := testLedgerUC(repo)
	ctx := context.Background()

	for _, c := range []struct{ date, cash string }{
		{"2026-03-01", "100.00"},
		{"2026-03-15", "150.00"},
		{"2026-03-31", "50.00"},
		{"2026-04-01", "999.00"}, // fuera del mes, no cuenta
	} {
		_, err := uc.Upsert(ctx, "DEMO-001", "u-1", upsertReq(c.date, c.cash))
		require.NoError(t, err)
	}

	out, err := uc.MonthlyAggregate(ctx, "DEMO-001", 2026, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, out.RecordCount)
	assert.Equal(t, 3, out.OperationEntryCount)
	assert.True(t, out.AverageBalances.Cash.Equal(dec("100.00")), "media caja: %s", out.AverageBalances.Cash)
	assert.True(t, out.AverageBalances.ReserveFund.Equal(dec("50.00")))
	assert.True(t, out.AverageBalances.Guarantee.Equal(dec("20.00")))
	assert.True(t, out.GrandTotal.Equal(dec("510.00")), "total general: %s", out.GrandTotal)
}

func TestMonthlyAggregateSinRegistros(t *testing.T) {
	uc := testLedgerUC(newFakeLedgerRepo())

	out, err := uc.MonthlyAggregate(context.Background(), "DEMO-001", 2026, 2)
	require.NoError(t, err)
	assert.Zero(t, out.RecordCount)
	assert.Zero(t, out.OperationEntryCount)
	assert.True(t, out.AverageBalances.Cash.IsZero())
	assert.True(t, out.GrandTotal.IsZero())
}

func TestMonthlyAggregateMesInvalido(t *testing.T) {
	uc := testLedgerUC(newFakeLedgerRepo())

	_, err := uc.MonthlyAggregate(context.Background(), "DEMO-001", 2026, 13)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.MonthlyAggregate(context.Background(), "DEMO-001", 0, 1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
