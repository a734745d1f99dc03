package export

import (
	"fmt"
	"strings"

	"expenseboard/internal/domain/models"
	"expenseboard/internal/utils"
)

// IncomeCSV serializes income records to CSV text. Only the free-text
// description column is ever quoted; every other column is machine
// controlled and cannot contain a delimiter.
func IncomeCSV(records []models.IncomeRecord) string {
	var b strings.Builder
	b.WriteString("ID,Description,Category,Amount,Date\n")
	for _, rec := range records {
		fmt.Fprintf(&b, "%d,%s,%s,%s,%s\n",
			rec.ID,
			quoteCSV(rec.Description),
			rec.Category,
			utils.FormatAmount(rec.Amount),
			utils.FormatShortDate(rec.DateCreated),
		)
	}
	return b.String()
}

// IncomeCSVFilename builds the download name for an income export.
func IncomeCSVFilename(username string) string {
	return fmt.Sprintf("income_%s.csv", utils.SafeFilenamePart(username))
}

func quoteCSV(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
