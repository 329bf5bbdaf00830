package dto

import "github.com/shopspring/decimal"

// AverageBalances medias aritméticas de los totales por categoría en el mes.
type AverageBalances struct {
	Cash        decimal.Decimal `json:"cash"`
	ReserveFund decimal.Decimal `json:"reserve_fund"`
	Guarantee   decimal.Decimal `json:"guarantee"`
}

// MonthlyAggregateResponse agregado mensual sobre los arqueos no borrados del mes.
type MonthlyAggregateResponse struct {
	Year                int             `json:"year"`
	Month               int             `json:"month"`
	RecordCount         int             `json:"record_count"`
	OperationEntryCount int             `json:"operation_entry_count"`
	AverageBalances     AverageBalances `json:"average_balances"`
	GrandTotal          decimal.Decimal `json:"grand_total"`
}

// DashboardStatsResponse contadores rápidos para el panel.
type DashboardStatsResponse struct {
	TotalUsers   int    `json:"total_users"`
	TodayRecords int    `json:"today_records"`
	MonthRecords int    `json:"month_records"`
	TotalRecords int    `json:"total_records"`
	SystemStatus string `json:"system_status"`
}
