package repositories

import (
	"database/sql"
	"fmt"

	intconfig "expenseboard/internal/config"
	intdb "expenseboard/internal/db"
	"expenseboard/internal/domain"
)

// ArchiveRepository flags a month's records as archived across every
// record table and remembers which months were already processed.
type ArchiveRepository struct {
	DB *sql.DB
}

func (r ArchiveRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

var recordTables = []string{"expenses", "travel_records", "daily_reports", "income_records"}

// IsArchived reports whether the month was archived before.
func (r ArchiveRepository) IsArchived(year, month int) (bool, error) {
	var n int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM archived_months WHERE year=? AND month=?`,
		year, month).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ArchiveMonth marks the month archived in one transaction. Returns the
// number of rows flagged across all tables.
func (r ArchiveRepository) ArchiveMonth(year, month int) (int64, error) {
	archived, err := r.IsArchived(year, month)
	if err != nil {
		return 0, err
	}
	if archived {
		return 0, domain.ConflictError{
			Resource: "archive",
			Msg:      fmt.Sprintf("%d-%02d is already archived", year, month),
		}
	}

	tx, err := r.db().Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var total int64
	for _, table := range recordTables {
		// older deployments may not have every record table or flag yet
		if !intdb.HasTable(tx, table) || !intdb.HasColumn(tx, table, "archived") {
			continue
		}
		res, err := tx.Exec(`
			UPDATE `+table+`
			SET archived=1
			WHERE YEAR(date_created)=? AND MONTH(date_created)=? AND archived=0`,
			year, month)
		if err != nil {
			return 0, err
		}
		aff, _ := res.RowsAffected()
		total += aff
	}

	if _, err := tx.Exec(`
		INSERT INTO archived_months (year, month, archived_at) VALUES (?, ?, NOW())`,
		year, month); err != nil {
		return 0, err
	}

	return total, tx.Commit()
}
