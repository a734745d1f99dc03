package export

import (
	"bytes"
	"testing"
	"time"

	"expenseboard/internal/domain"
	"expenseboard/internal/domain/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestXLSXFilename(t *testing.T) {
	if got := XLSXFilename("expenses", 2024, 3); got != "expenses_2024_3.xlsx" {
		t.Fatalf("got %q", got)
	}
}

func TestExpensesXLSXRoundTrip(t *testing.T) {
	blob, err := ExpensesXLSX([]models.Expense{{
		ID:          1,
		UserID:      4,
		Category:    "Fuel",
		Description: "diesel",
		Amount:      decimal.RequireFromString("450.50"),
		Status:      domain.StatusApproved,
		DateCreated: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}})
	if err != nil {
		t.Fatalf("build sheet: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	if got, _ := f.GetCellValue("Expenses", "A1"); got != "ID" {
		t.Fatalf("A1 = %q", got)
	}
	if got, _ := f.GetCellValue("Expenses", "C2"); got != "Fuel" {
		t.Fatalf("C2 = %q", got)
	}
	if got, _ := f.GetCellValue("Expenses", "F2"); got != "Approved" {
		t.Fatalf("F2 = %q", got)
	}
	if got, _ := f.GetCellValue("Expenses", "H2"); got != "3/2/2024" {
		t.Fatalf("H2 = %q", got)
	}
}

func TestTravelXLSXBlanksInactiveVariant(t *testing.T) {
	price := decimal.NewFromInt(840)
	from, to := "SBC", "MAS"
	blob, err := TravelXLSX([]models.TravelRecord{{
		ID:               2,
		UserID:           4,
		TravelMode:       domain.ModeTrain,
		TicketPrice:      &price,
		FromStation:      &from,
		ToStation:        &to,
		CalculatedAmount: price,
		Status:           domain.StatusPending,
		DateCreated:      time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}})
	if err != nil {
		t.Fatalf("build sheet: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(blob))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	// Columns D through G belong to the personal vehicle variant.
	for _, cell := range []string{"D2", "E2", "F2", "G2"} {
		if got, _ := f.GetCellValue("Travel", cell); got != "" {
			t.Fatalf("%s should be blank for a train record, got %q", cell, got)
		}
	}
	if got, _ := f.GetCellValue("Travel", "H2"); got != "840" {
		t.Fatalf("H2 = %q", got)
	}
}
