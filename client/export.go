package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"expenseboard/internal/domain/models"
	"expenseboard/internal/export"
)

// IncomeCSV assembles the CSV text for an already-fetched income list.
// This is the client-side export path: no extra round trip.
func IncomeCSV(records []models.IncomeRecord) string {
	return export.IncomeCSV(records)
}

// SaveMonthExport downloads the admin spreadsheet for one export type and
// writes it under the deterministic {type}_{year}_{month}.xlsx name.
// Returns the path written.
func (a *Admin) SaveMonthExport(ctx context.Context, exportType string, year, month int, dir string) (string, error) {
	path := fmt.Sprintf("/api/export/%s/%d/%d", exportType, year, month)
	blob, err := a.client.fetchBlob(ctx, path)
	if err != nil {
		return "", err
	}

	target := filepath.Join(dir, export.XLSXFilename(exportType, year, month))
	if err := os.WriteFile(target, blob, 0o644); err != nil {
		return "", err
	}
	return target, nil
}

// ArchiveMonth asks the server to archive the month's records.
func (a *Admin) ArchiveMonth(ctx context.Context, year, month int) error {
	path := fmt.Sprintf("/api/archive/%d/%d", year, month)
	return a.client.sendJSON(ctx, "POST", path, map[string]string{}, nil)
}
