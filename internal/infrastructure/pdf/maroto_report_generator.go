// Package pdf genera la representación imprimible del arqueo diario de caja.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón social  │  Fecha del arqueo                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA SALDOS: Categoría | Apertura | J+1 | Cierre          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  OPERACIONES por categoría: Concepto | Tipo | Importe       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES por categoría / TOTAL GENERAL                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appledger "github.com/jhoicas/Tesoreria-api/internal/application/ledger"
	"github.com/jhoicas/Tesoreria-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Nombres de categoría para el reporte (el front es bilingüe; el PDF usa francés).
var categoryLabels = map[string]string{
	entity.CategoryCash:        "Caisse",
	entity.CategoryReserveFund: "Fonds de réserve",
	entity.CategoryGuarantee:   "Garantie",
}

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appledger.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa ledger.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateDailyReportPDF genera el PDF del arqueo y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateDailyReportPDF(
	_ context.Context,
	rec *entity.LedgerRecord,
	setting *entity.Setting,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Arqueo diario de caja", true).
		WithAuthor(setting.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(rec, setting))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(balancesHeaderRow())
	for _, r := range balancesRows(rec.Balances, setting.Currency) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range operationRows(rec.Operations, setting.Currency) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rec.Totals, setting.Currency))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social (izq) y fecha del arqueo (der).
func headerRow(rec *entity.LedgerRecord, setting *entity.Setting) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(setting.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Arqueo diario de caja", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FECHA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(rec.Date.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// balancesHeaderRow: cabecera de la tabla de saldos.
func balancesHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Categoría", 4, align.Left),
		h("Apertura", 3, align.Right),
		h("Ajuste J+1", 2, align.Right),
		h("Cierre", 3, align.Right),
	)
}

// balancesRows: una fila por categoría.
func balancesRows(b entity.Balances, currency string) []core.Row {
	sheets := b.Sheets()
	result := make([]core.Row, 0, len(sheets))
	for _, category := range entity.Categories() {
		sheet := sheets[category]
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				categoryLabels[category],
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				sheet.Initial.StringFixed(2)+" "+currency,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				sheet.DayOneAdjustment.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				sheet.Final.StringFixed(2)+" "+currency,
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// operationRows: por categoría, un subtítulo y una fila por entrada.
func operationRows(ops entity.Operations, currency string) []core.Row {
	var result []core.Row
	for _, category := range entity.Categories() {
		entries := ops[category]
		if len(entries) == 0 {
			continue
		}
		result = append(result, row.New(7).Add(
			col.New(12).Add(text.New(
				"Opérations — "+categoryLabels[category],
				props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2, Left: 1},
			)),
		))
		for _, e := range entries {
			sign := "+"
			if e.Type == entity.OperationDebit {
				sign = "−"
			}
			result = append(result, row.New(6).Add(
				col.New(7).Add(text.New(
					e.Label,
					props.Text{Size: 8, Align: align.Left, Top: 1, Left: 3},
				)),
				col.New(2).Add(text.New(
					e.Type,
					props.Text{Size: 7, Align: align.Center, Top: 1, Color: colorGray},
				)),
				col.New(3).Add(text.New(
					sign+" "+e.Amount.StringFixed(2)+" "+currency,
					props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
				)),
			))
		}
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(t entity.Totals, currency string) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := text.New("TOTAL GÉNÉRAL:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 2,
	})
	grandValue := text.New(t.Grand.StringFixed(2)+" "+currency, props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right,
		Color: colorPrimary, Right: 1,
	})

	return row.New(32).Add(
		col.New(3),
		col.New(4).Add(
			label("Caisse:"),
			label("Fonds de réserve:"),
			label("Garantie:"),
			grandLabel,
		),
		col.New(4).Add(
			value(t.Cash.StringFixed(2)+" "+currency),
			value(t.ReserveFund.StringFixed(2)+" "+currency),
			value(t.Guarantee.StringFixed(2)+" "+currency),
			grandValue,
		),
		col.New(1),
	)
}
