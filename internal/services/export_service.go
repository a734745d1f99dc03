package services

import (
	"fmt"

	"expenseboard/internal/domain"
	"expenseboard/internal/export"
	"expenseboard/internal/repositories"
	"expenseboard/internal/utils"
)

// ExportService builds the month-scoped admin spreadsheets and runs the
// month archival.
type ExportService struct {
	ExpenseRepo repositories.ExpenseRepository
	TravelRepo  repositories.TravelRepository
	ReportRepo  repositories.ReportRepository
	IncomeRepo  repositories.IncomeRepository
	ArchiveRepo repositories.ArchiveRepository
	RequestID   string
}

// MonthXLSX returns the spreadsheet blob and filename for one export type.
func (s ExportService) MonthXLSX(exportType string, year, month int) ([]byte, string, error) {
	if err := validateMonth(year, month); err != nil {
		return nil, "", err
	}

	var (
		blob []byte
		err  error
	)
	resource := normalizeResource(exportType)
	switch resource {
	case "expenses":
		records, lerr := s.ExpenseRepo.ListMonth(year, month)
		if lerr != nil {
			return nil, "", lerr
		}
		blob, err = export.ExpensesXLSX(records)
	case "travel":
		records, lerr := s.TravelRepo.ListMonth(year, month)
		if lerr != nil {
			return nil, "", lerr
		}
		blob, err = export.TravelXLSX(records)
	case "daily-reports":
		records, lerr := s.ReportRepo.ListMonth(year, month)
		if lerr != nil {
			return nil, "", lerr
		}
		blob, err = export.ReportsXLSX(records)
	case "income":
		records, lerr := s.IncomeRepo.ListMonth(year, month)
		if lerr != nil {
			return nil, "", lerr
		}
		blob, err = export.IncomeXLSX(records)
	default:
		return nil, "", domain.ValidationError{Field: "type", Msg: "unknown export type " + exportType}
	}
	if err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "export", "month_xlsx",
		fmt.Sprintf("type=%s year=%d month=%d bytes=%d", resource, year, month, len(blob)))
	return blob, export.XLSXFilename(resource, year, month), nil
}

// ArchiveMonth flags every record of the month as archived. Archiving the
// same month twice is a conflict.
func (s ExportService) ArchiveMonth(year, month int) (int64, error) {
	if err := validateMonth(year, month); err != nil {
		return 0, err
	}
	n, err := s.ArchiveRepo.ArchiveMonth(year, month)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "export", "archive_month",
		fmt.Sprintf("year=%d month=%d records=%d", year, month, n))
	return n, nil
}

func validateMonth(year, month int) error {
	if year < 2000 || year > 2100 {
		return domain.ValidationError{Field: "year", Msg: "year out of range"}
	}
	if month < 1 || month > 12 {
		return domain.ValidationError{Field: "month", Msg: "month must be 1..12"}
	}
	return nil
}
