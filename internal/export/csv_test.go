package export

import (
	"strings"
	"testing"
	"time"

	"expenseboard/internal/domain/models"

	"github.com/shopspring/decimal"
)

func TestIncomeCSVQuotesOnlyDescription(t *testing.T) {
	records := []models.IncomeRecord{
		{
			ID:          1,
			Description: "Rent, Office",
			Category:    "Rent",
			Amount:      decimal.NewFromInt(500),
			DateCreated: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		},
	}

	out := IncomeCSV(records)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if lines[0] != "ID,Description,Category,Amount,Date" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != `1,"Rent, Office",Rent,500,1/1/2024` {
		t.Fatalf("unexpected row: %q", lines[1])
	}
}

func TestIncomeCSVPlainDescriptionUnquoted(t *testing.T) {
	records := []models.IncomeRecord{
		{
			ID:          7,
			Description: "Commission",
			Category:    "Sales",
			Amount:      decimal.RequireFromString("1250.50"),
			DateCreated: time.Date(2024, 11, 23, 10, 30, 0, 0, time.Local),
		},
	}

	out := IncomeCSV(records)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[1] != "7,Commission,Sales,1250.5,11/23/2024" {
		t.Fatalf("unexpected row: %q", lines[1])
	}
}

func TestIncomeCSVEscapesEmbeddedQuotes(t *testing.T) {
	records := []models.IncomeRecord{
		{
			ID:          2,
			Description: `the "big" order`,
			Category:    "Sales",
			Amount:      decimal.NewFromInt(90),
			DateCreated: time.Date(2024, 6, 5, 0, 0, 0, 0, time.Local),
		},
	}

	out := IncomeCSV(records)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := `2,"the ""big"" order",Sales,90,6/5/2024`
	if lines[1] != want {
		t.Fatalf("got %q want %q", lines[1], want)
	}
}
