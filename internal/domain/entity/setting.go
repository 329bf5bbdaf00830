package entity

import "time"

// Features flags de funcionalidad por company.
type Features struct {
	AutoSave         bool `json:"auto_save"`
	Notifications    bool `json:"notifications"`
	ReportGeneration bool `json:"report_generation"`
}

// Limits topes operativos por company.
type Limits struct {
	MaxUsers            int `json:"max_users"`
	MaxOperationsPerDay int `json:"max_operations_per_day"`
}

// Setting configuración de una company. Única por CompanyID.
type Setting struct {
	ID          string
	CompanyID   string
	CompanyName string
	Currency    string
	Timezone    string
	Features    Features
	Limits      Limits
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DefaultSetting valores por defecto cuando la company aún no guardó configuración.
func DefaultSetting(companyID string) *Setting {
	return &Setting{
		CompanyID:   companyID,
		CompanyName: "EXPER CASH SERVICES SARL",
		Currency:    "MAD",
		Timezone:    "Africa/Casablanca",
		Features: Features{
			AutoSave:         true,
			Notifications:    true,
			ReportGeneration: true,
		},
		Limits: Limits{
			MaxUsers:            10,
			MaxOperationsPerDay: 1000,
		},
	}
}
