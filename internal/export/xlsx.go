package export

import (
	"bytes"
	"fmt"

	"expenseboard/internal/domain/models"
	"expenseboard/internal/utils"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// XLSXFilename is the deterministic download name for an admin export.
func XLSXFilename(exportType string, year, month int) string {
	return fmt.Sprintf("%s_%d_%d.xlsx", exportType, year, month)
}

// ExpensesXLSX builds the admin expense spreadsheet.
func ExpensesXLSX(records []models.Expense) ([]byte, error) {
	return buildSheet("Expenses",
		[]string{"ID", "User ID", "Category", "Description", "Amount", "Status", "Rejection Reason", "Date"},
		len(records), func(i int) []any {
			e := records[i]
			return []any{e.ID, e.UserID, e.Category, e.Description, amountCell(e.Amount), e.Status.String(), e.RejectionReason, utils.FormatShortDate(e.DateCreated)}
		})
}

// TravelXLSX builds the admin travel spreadsheet. Variant columns of the
// inactive side are left blank.
func TravelXLSX(records []models.TravelRecord) ([]byte, error) {
	return buildSheet("Travel",
		[]string{"ID", "User ID", "Mode", "Distance (km)", "State", "City", "Location",
			"Ticket Price", "From", "To", "Amount", "Status", "Rejection Reason", "Date"},
		len(records), func(i int) []any {
			t := records[i]
			row := []any{t.ID, t.UserID, t.TravelMode.String()}
			row = append(row,
				decimalOrBlank(t.DistanceKM),
				strOrBlank(t.State), strOrBlank(t.City), strOrBlank(t.Location),
				decimalOrBlank(t.TicketPrice),
				strOrBlank(t.FromStation), strOrBlank(t.ToStation),
				amountCell(t.CalculatedAmount), t.Status.String(), t.RejectionReason,
				utils.FormatShortDate(t.DateCreated))
			return row
		})
}

// ReportsXLSX builds the admin dealer-visit spreadsheet.
func ReportsXLSX(records []models.DailyReport) ([]byte, error) {
	return buildSheet("Daily Reports",
		[]string{"ID", "User ID", "Dealer", "State", "City", "Location", "Notes", "Amount", "Status", "Rejection Reason", "Date"},
		len(records), func(i int) []any {
			d := records[i]
			return []any{d.ID, d.UserID, d.DealerName, d.State, d.City, d.Location, d.Notes, amountCell(d.Amount), d.Status.String(), d.RejectionReason, utils.FormatShortDate(d.DateCreated)}
		})
}

// IncomeXLSX builds the admin income spreadsheet.
func IncomeXLSX(records []models.IncomeRecord) ([]byte, error) {
	return buildSheet("Income",
		[]string{"ID", "User ID", "Description", "Category", "Amount", "Date"},
		len(records), func(i int) []any {
			rec := records[i]
			return []any{rec.ID, rec.UserID, rec.Description, rec.Category, amountCell(rec.Amount), utils.FormatShortDate(rec.DateCreated)}
		})
}

func buildSheet(sheet string, header []string, n int, rowAt func(int) []any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i := 0; i < n; i++ {
		for col, value := range rowAt(i) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func amountCell(d decimal.Decimal) any {
	return d.InexactFloat64()
}

func decimalOrBlank(p *decimal.Decimal) any {
	if p == nil {
		return ""
	}
	return p.InexactFloat64()
}

func strOrBlank(p *string) any {
	if p == nil {
		return ""
	}
	return *p
}
