package entity

import "time"

// Severidades de un evento de error.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// ErrorEvent evento estructurado de error para auditoría.
// El core solo lo emite; la persistencia es responsabilidad del repositorio.
type ErrorEvent struct {
	ID         string
	CompanyID  string
	UserID     string
	Message    string
	Stack      string
	Context    string // nombre de la operación que falló
	Severity   string // low, medium, high, critical
	IsResolved bool
	CreatedAt  time.Time
}
