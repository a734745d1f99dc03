package models

import (
	"time"

	"expenseboard/internal/domain"

	"github.com/shopspring/decimal"
)

func init() {
	// The dashboard consumes amounts as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Expense is a user-submitted expense claim.
type Expense struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	Status          domain.Status   `json:"status"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	DateCreated     time.Time       `json:"date_created"`
}

// DailyReport is a dealer-visit report.
type DailyReport struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	DealerName      string          `json:"dealer_name"`
	State           string          `json:"state"`
	City            string          `json:"city"`
	Location        string          `json:"location"`
	Notes           string          `json:"notes,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Status          domain.Status   `json:"status"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	DateCreated     time.Time       `json:"date_created"`
}

// IncomeRecord is a dealer income entry.
type IncomeRecord struct {
	ID          int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	DateCreated time.Time       `json:"date_created"`
}
