package export

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"expenseboard/internal/domain/models"
	"expenseboard/internal/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

const reportRowsPerPage = 26

type categoryColor struct {
	R, G, B int
}

var categoryPalette = []categoryColor{
	{41, 128, 185},
	{39, 174, 96},
	{230, 126, 34},
	{142, 68, 173},
	{192, 57, 43},
	{22, 160, 133},
	{241, 196, 15},
	{127, 140, 141},
}

type categoryTotal struct {
	Name  string
	Total decimal.Decimal
}

// ExpenseReportPDF composes the formatted expense report: branding
// header, aggregate block with a category color legend, a paginated body
// with the column header repeated on overflow, and a watermark on every
// page. Returns the document bytes and a deterministic filename.
func ExpenseReportPDF(username string, expenses []models.Expense) ([]byte, string, error) {
	colors := assignCategoryColors(expenses)
	totals := categoryTotals(expenses)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Expense Report", false)
	pdf.SetHeaderFunc(func() {
		stampWatermark(pdf)
	})
	pdf.AddPage()

	// branding block
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(33, 33, 33)
	pdf.Cell(0, 12, "ExpenseBoard")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Expense report for %s", username))
	pdf.Ln(6)
	pdf.Cell(0, 7, "Generated "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(12)

	// aggregates
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Records: %d    Total: %s", len(expenses), utils.FormatAmount(total)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Top categories")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	top := totals
	if len(top) > 5 {
		top = top[:5]
	}
	for _, ct := range top {
		c := colors[ct.Name]
		pdf.SetFillColor(c.R, c.G, c.B)
		pdf.CellFormat(6, 6, "", "1", 0, "", true, 0, "")
		pdf.CellFormat(4, 6, "", "", 0, "", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("%s  %s", ct.Name, utils.FormatAmount(ct.Total)), "", 1, "", false, 0, "")
	}
	pdf.Ln(6)

	// paginated body
	writeReportHeader(pdf)
	rowsOnPage := 0
	for _, e := range expenses {
		if rowsOnPage == reportRowsPerPage {
			pdf.AddPage()
			writeReportHeader(pdf)
			rowsOnPage = 0
		}
		c := colors[e.Category]
		pdf.SetFillColor(c.R, c.G, c.B)
		pdf.CellFormat(4, 6, "", "", 0, "", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(33, 33, 33)
		pdf.CellFormat(14, 6, fmt.Sprintf("%d", e.ID), "B", 0, "", false, 0, "")
		pdf.CellFormat(66, 6, clipText(e.Description, 44), "B", 0, "", false, 0, "")
		pdf.CellFormat(34, 6, clipText(e.Category, 20), "B", 0, "", false, 0, "")
		pdf.CellFormat(26, 6, utils.FormatAmount(e.Amount), "B", 0, "R", false, 0, "")
		pdf.CellFormat(0, 6, utils.FormatShortDate(e.DateCreated), "B", 1, "R", false, 0, "")
		rowsOnPage++
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("expense_report_%s_%s.pdf",
		utils.SafeFilenamePart(username), time.Now().Format("2006_01"))
	return buf.Bytes(), filename, nil
}

func writeReportHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(4, 7, "", "", 0, "", false, 0, "")
	pdf.CellFormat(14, 7, "ID", "B", 0, "", false, 0, "")
	pdf.CellFormat(66, 7, "Description", "B", 0, "", false, 0, "")
	pdf.CellFormat(34, 7, "Category", "B", 0, "", false, 0, "")
	pdf.CellFormat(26, 7, "Amount", "B", 0, "R", false, 0, "")
	pdf.CellFormat(0, 7, "Date", "B", 1, "R", false, 0, "")
}

func stampWatermark(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 54)
	pdf.SetTextColor(232, 232, 232)
	pdf.TransformBegin()
	pdf.TransformRotate(45, 105, 150)
	pdf.Text(35, 160, "ExpenseBoard")
	pdf.TransformEnd()
	pdf.SetTextColor(33, 33, 33)
}

func assignCategoryColors(expenses []models.Expense) map[string]categoryColor {
	colors := map[string]categoryColor{}
	next := 0
	for _, e := range expenses {
		if _, ok := colors[e.Category]; ok {
			continue
		}
		colors[e.Category] = categoryPalette[next%len(categoryPalette)]
		next++
	}
	return colors
}

func categoryTotals(expenses []models.Expense) []categoryTotal {
	sums := map[string]decimal.Decimal{}
	for _, e := range expenses {
		sums[e.Category] = sums[e.Category].Add(e.Amount)
	}
	out := make([]categoryTotal, 0, len(sums))
	for name, total := range sums {
		out = append(out, categoryTotal{Name: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total.Equal(out[j].Total) {
			return out[i].Name < out[j].Name
		}
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

func clipText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
