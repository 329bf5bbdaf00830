package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de saldo del arqueo diario.
const (
	CategoryCash        = "cash"
	CategoryReserveFund = "reserve_fund"
	CategoryGuarantee   = "guarantee"
)

// Categories devuelve las categorías en el orden canónico de los reportes.
func Categories() []string {
	return []string{CategoryCash, CategoryReserveFund, CategoryGuarantee}
}

// Tipos de movimiento de una entrada de operación.
const (
	OperationCredit = "credit"
	OperationDebit  = "debit"
)

// BalanceSheet saldos de una categoría: apertura, ajuste J+1 y cierre.
// Se persiste como JSONB, por eso lleva tags json.
type BalanceSheet struct {
	Initial          decimal.Decimal `json:"initial"`
	DayOneAdjustment decimal.Decimal `json:"day_one_adjustment"`
	Final            decimal.Decimal `json:"final"`
}

// Balances saldos del día por categoría.
type Balances struct {
	Cash        BalanceSheet `json:"cash"`
	ReserveFund BalanceSheet `json:"reserve_fund"`
	Guarantee   BalanceSheet `json:"guarantee"`
}

// Sheets devuelve los saldos por categoría en orden canónico.
func (b Balances) Sheets() map[string]BalanceSheet {
	return map[string]BalanceSheet{
		CategoryCash:        b.Cash,
		CategoryReserveFund: b.ReserveFund,
		CategoryGuarantee:   b.Guarantee,
	}
}

// OperationEntry una línea de operación dentro de una categoría.
// El esquema es deliberadamente laxo: el catálogo de conceptos es configurable
// por company (ver Section), aquí solo se conserva lo capturado.
type OperationEntry struct {
	Label  string          `json:"label"`
	Type   string          `json:"type"` // credit | debit
	Amount decimal.Decimal `json:"amount"`
	Icon   string          `json:"icon,omitempty"`
	Notes  string          `json:"notes,omitempty"`
}

// Operations mapa categoría -> secuencia ordenada de entradas.
type Operations map[string][]OperationEntry

// EntryCount total de entradas sumando todas las categorías.
func (o Operations) EntryCount() int {
	n := 0
	for _, entries := range o {
		n += len(entries)
	}
	return n
}

// Totals totales del día por categoría más el total general.
type Totals struct {
	Cash        decimal.Decimal `json:"cash"`
	ReserveFund decimal.Decimal `json:"reserve_fund"`
	Guarantee   decimal.Decimal `json:"guarantee"`
	Grand       decimal.Decimal `json:"grand"`
}

// Metadata información de contexto de la captura (no participa en cálculos).
type Metadata struct {
	ClientInfo string `json:"client_info,omitempty"`
	SessionRef string `json:"session_ref,omitempty"`
	IPAddress  string `json:"ip_address,omitempty"`
}

// LedgerRecord el arqueo de caja de un día para una company.
// Invariante: como máximo un registro no borrado por (CompanyID, Date);
// lo garantiza un índice único parcial en la base.
type LedgerRecord struct {
	ID           string
	CompanyID    string
	Date         time.Time // día calendario, normalizado a medianoche UTC
	AuthorUserID string    // último usuario que envió el arqueo (referencia débil)
	Balances     Balances
	Operations   Operations
	Totals       Totals
	Metadata     Metadata
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeDate trunca un instante al día calendario en UTC.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
