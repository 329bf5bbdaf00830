package ledger

import (
	"context"

	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
)

// ReportPDFGenerator genera la representación PDF del arqueo de un día.
type ReportPDFGenerator interface {
	GenerateDailyReportPDF(ctx context.Context, rec *entity.LedgerRecord, setting *entity.Setting) ([]byte, error)
}
