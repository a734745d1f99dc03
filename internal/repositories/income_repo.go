package repositories

import (
	"database/sql"
	"time"

	intconfig "expenseboard/internal/config"
	"expenseboard/internal/domain/models"
)

// IncomeRepository stores dealer income entries. Income records are not
// part of the approval workflow, so there is no status column here.
type IncomeRepository struct {
	DB *sql.DB
}

func (r IncomeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const incomeColumns = `
	id,
	user_id,
	COALESCE(description,''),
	COALESCE(category,''),
	amount,
	date_created`

func scanIncome(row interface{ Scan(...any) error }) (models.IncomeRecord, error) {
	var rec models.IncomeRecord
	err := row.Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Description,
		&rec.Category,
		&rec.Amount,
		&rec.DateCreated,
	)
	return rec, err
}

func (r IncomeRepository) ListByUser(userID int64) ([]models.IncomeRecord, error) {
	rows, err := r.db().Query(`
		SELECT `+incomeColumns+`
		FROM income_records
		WHERE user_id=? AND archived=0
		ORDER BY date_created DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectIncome(rows)
}

func (r IncomeRepository) ListAll() ([]models.IncomeRecord, error) {
	rows, err := r.db().Query(`
		SELECT ` + incomeColumns + `
		FROM income_records
		WHERE archived=0
		ORDER BY date_created DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectIncome(rows)
}

// ListMonth returns the month's income entries for export, archived included.
func (r IncomeRepository) ListMonth(year, month int) ([]models.IncomeRecord, error) {
	rows, err := r.db().Query(`
		SELECT `+incomeColumns+`
		FROM income_records
		WHERE YEAR(date_created)=? AND MONTH(date_created)=?
		ORDER BY date_created ASC`, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectIncome(rows)
}

func collectIncome(rows *sql.Rows) ([]models.IncomeRecord, error) {
	out := make([]models.IncomeRecord, 0, 16)
	for rows.Next() {
		rec, err := scanIncome(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r IncomeRepository) Insert(rec models.IncomeRecord) (models.IncomeRecord, error) {
	now := time.Now()
	res, err := r.db().Exec(`
		INSERT INTO income_records (user_id, description, category, amount, date_created, archived)
		VALUES (?, ?, ?, ?, ?, 0)`,
		rec.UserID, rec.Description, rec.Category, rec.Amount, now)
	if err != nil {
		return models.IncomeRecord{}, err
	}
	id, _ := res.LastInsertId()
	rec.ID = id
	rec.DateCreated = now
	return rec, nil
}
