package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Tesoreria-api/internal/application/dto"
	"github.com/jhoicas/Tesoreria-api/internal/domain"
	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
	"github.com/jhoicas/Tesoreria-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// LedgerUseCase mantiene el arqueo diario: un registro no borrado por
// (company, día), con upsert idempotente, y calcula los reportes.
type LedgerUseCase struct {
	records  repository.LedgerRepository
	settings repository.SettingRepository
	pdf      ReportPDFGenerator
	now      func() time.Time
}

// NewLedgerUseCase construye el caso de uso con sus puertos.
func NewLedgerUseCase(records repository.LedgerRepository, settings repository.SettingRepository, pdf ReportPDFGenerator) *LedgerUseCase {
	return &LedgerUseCase{records: records, settings: settings, pdf: pdf, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *LedgerUseCase) WithClock(now func() time.Time) *LedgerUseCase {
	uc.now = now
	return uc
}

// Upsert guarda el arqueo de un día. Si ya existe uno no borrado para
// (company, fecha), se reemplazan balances/operaciones/totales/metadata y se
// reasigna el autor al remitente actual: reenviar el mismo día nunca duplica.
//
// Dos envíos concurrentes del mismo día pueden observar ambos "no existe";
// el índice único de la base hace fallar la segunda inserción y ese conflicto
// se reintenta UNA vez como actualización. El último write persiste.
func (uc *LedgerUseCase) Upsert(ctx context.Context, companyID, authorUserID string, in dto.UpsertLedgerRequest) (*dto.LedgerRecordResponse, error) {
	date, err := parseDay(in.Date)
	if err != nil {
		return nil, domain.ErrValidation
	}
	if err := validateBalances(in.Balances); err != nil {
		return nil, err
	}

	rec, err := uc.records.GetByCompanyAndDate(ctx, companyID, date)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		uc.apply(rec, authorUserID, in)
		if err := uc.records.Update(ctx, rec); err != nil {
			return nil, err
		}
		return toRecordResponse(rec), nil
	}

	now := uc.now()
	rec = &entity.LedgerRecord{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Date:      date,
		CreatedAt: now,
	}
	uc.apply(rec, authorUserID, in)
	err = uc.records.Create(ctx, rec)
	if err == domain.ErrDuplicate {
		// Perdimos la carrera de creación: otro envío insertó primero.
		rec, err = uc.records.GetByCompanyAndDate(ctx, companyID, date)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, domain.ErrConflict
		}
		uc.apply(rec, authorUserID, in)
		if err := uc.records.Update(ctx, rec); err != nil {
			return nil, err
		}
		return toRecordResponse(rec), nil
	}
	if err != nil {
		return nil, err
	}
	return toRecordResponse(rec), nil
}

// apply reemplaza el contenido del arqueo con el envío actual.
func (uc *LedgerUseCase) apply(rec *entity.LedgerRecord, authorUserID string, in dto.UpsertLedgerRequest) {
	rec.AuthorUserID = authorUserID
	rec.Balances = in.Balances
	rec.Operations = in.Operations
	rec.Totals = in.Totals
	rec.Metadata = in.Metadata
	rec.UpdatedAt = uc.now()
}

// List devuelve los arqueos de la company con paginación y rango de fechas.
// El rol "user" solo ve sus propios arqueos; un admin puede filtrar por autor.
func (uc *LedgerUseCase) List(ctx context.Context, companyID, callerUserID, callerRole string, in dto.ListLedgerRequest) (*dto.LedgerListResponse, error) {
	in.DefaultPage()
	f := repository.LedgerFilter{Limit: in.Limit, Offset: in.Offset}

	if in.StartDate != "" && in.EndDate != "" {
		from, err := parseDay(in.StartDate)
		if err != nil {
			return nil, domain.ErrValidation
		}
		to, err := parseDay(in.EndDate)
		if err != nil {
			return nil, domain.ErrValidation
		}
		f.From, f.To = &from, &to
	}

	switch {
	case callerRole == entity.RoleUser:
		f.AuthorUserID = callerUserID
	case in.AuthorUserID != "" && callerRole == entity.RoleAdmin:
		f.AuthorUserID = in.AuthorUserID
	}

	list, total, err := uc.records.List(ctx, companyID, f)
	if err != nil {
		return nil, err
	}
	out := &dto.LedgerListResponse{
		Data: make([]dto.LedgerRecordResponse, 0, len(list)),
		Page: dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}
	for _, rec := range list {
		out.Data = append(out.Data, *toRecordResponse(rec))
	}
	return out, nil
}

// DailyReport devuelve el arqueo de un día o ErrNotFound.
func (uc *LedgerUseCase) DailyReport(ctx context.Context, companyID, day string) (*dto.LedgerRecordResponse, error) {
	date, err := parseDay(day)
	if err != nil {
		return nil, domain.ErrValidation
	}
	rec, err := uc.records.GetByCompanyAndDate(ctx, companyID, date)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return toRecordResponse(rec), nil
}

// DailyReportPDF genera el PDF del arqueo de un día.
func (uc *LedgerUseCase) DailyReportPDF(ctx context.Context, companyID, day string) ([]byte, error) {
	date, err := parseDay(day)
	if err != nil {
		return nil, domain.ErrValidation
	}
	rec, err := uc.records.GetByCompanyAndDate(ctx, companyID, date)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	setting, err := uc.settings.GetByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		setting = entity.DefaultSetting(companyID)
	}
	return uc.pdf.GenerateDailyReportPDF(ctx, rec, setting)
}

// MonthlyAggregate agrega los arqueos no borrados del mes calendario:
// cantidad de días, cantidad de entradas de operación, media aritmética de
// los totales por categoría y total general acumulado. Con cero registros
// las medias son 0 (sin división por cero).
func (uc *LedgerUseCase) MonthlyAggregate(ctx context.Context, companyID string, year, month int) (*dto.MonthlyAggregateResponse, error) {
	if year < 1 || month < 1 || month > 12 {
		return nil, domain.ErrValidation
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	list, err := uc.records.ListByDateRange(ctx, companyID, first, last)
	if err != nil {
		return nil, err
	}

	out := &dto.MonthlyAggregateResponse{Year: year, Month: month, RecordCount: len(list)}
	var sumCash, sumReserve, sumGuarantee decimal.Decimal
	for _, rec := range list {
		out.OperationEntryCount += rec.Operations.EntryCount()
		sumCash = sumCash.Add(rec.Totals.Cash)
		sumReserve = sumReserve.Add(rec.Totals.ReserveFund)
		sumGuarantee = sumGuarantee.Add(rec.Totals.Guarantee)
		out.GrandTotal = out.GrandTotal.Add(rec.Totals.Grand)
	}
	if n := int64(len(list)); n > 0 {
		div := decimal.NewFromInt(n)
		out.AverageBalances = dto.AverageBalances{
			Cash:        sumCash.DivRound(div, 2),
			ReserveFund: sumReserve.DivRound(div, 2),
			Guarantee:   sumGuarantee.DivRound(div, 2),
		}
	}
	return out, nil
}

// validateBalances exige initial y final >= 0 en cada categoría.
func validateBalances(b entity.Balances) error {
	for _, sheet := range b.Sheets() {
		if sheet.Initial.IsNegative() || sheet.Final.IsNegative() {
			return domain.ErrValidation
		}
	}
	return nil
}

func parseDay(s string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return entity.NormalizeDate(t), nil
}

func toRecordResponse(rec *entity.LedgerRecord) *dto.LedgerRecordResponse {
	return &dto.LedgerRecordResponse{
		ID:           rec.ID,
		CompanyID:    rec.CompanyID,
		Date:         rec.Date.Format(dto.DateLayout),
		AuthorUserID: rec.AuthorUserID,
		Balances:     rec.Balances,
		Operations:   rec.Operations,
		Totals:       rec.Totals,
		Metadata:     rec.Metadata,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}
