package export

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"expenseboard/internal/domain"
	"expenseboard/internal/domain/models"

	"github.com/shopspring/decimal"
)

func sampleExpenses(n int) []models.Expense {
	out := make([]models.Expense, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Expense{
			ID:          int64(i + 1),
			UserID:      4,
			Category:    fmt.Sprintf("Category %d", i%7),
			Description: fmt.Sprintf("line item %d", i+1),
			Amount:      decimal.NewFromInt(int64(100 + i)),
			Status:      domain.StatusPending,
			DateCreated: time.Date(2024, 3, 1+i%28, 0, 0, 0, 0, time.Local),
		})
	}
	return out
}

func TestExpenseReportPDF(t *testing.T) {
	blob, name, err := ExpenseReportPDF("ravi", sampleExpenses(3))
	if err != nil {
		t.Fatalf("generate pdf: %v", err)
	}
	if len(blob) == 0 {
		t.Fatal("expected non-empty pdf")
	}
	if !bytes.HasPrefix(blob, []byte("%PDF")) {
		t.Fatal("output is not a pdf document")
	}
	if !strings.HasPrefix(name, "expense_report_ravi_") || !strings.HasSuffix(name, ".pdf") {
		t.Fatalf("unexpected filename: %q", name)
	}
}

func TestExpenseReportPDFMultiPage(t *testing.T) {
	small, _, err := ExpenseReportPDF("ravi", sampleExpenses(5))
	if err != nil {
		t.Fatalf("generate small pdf: %v", err)
	}
	large, _, err := ExpenseReportPDF("ravi", sampleExpenses(80))
	if err != nil {
		t.Fatalf("generate large pdf: %v", err)
	}
	if len(large) <= len(small) {
		t.Fatal("expected the 80-row report to span more pages than the 5-row one")
	}
}

func TestClipText(t *testing.T) {
	if got := clipText("short", 20); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := clipText("a very long description that will not fit", 12); got != "a very lo..." {
		t.Fatalf("got %q", got)
	}
	// clipping must not split a multi-byte rune
	if got := clipText("crème brûlée with extras on top", 12); got != "crème brû..." {
		t.Fatalf("got %q", got)
	}
}
