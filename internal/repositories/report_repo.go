package repositories

import (
	"database/sql"
	"errors"
	"time"

	intconfig "expenseboard/internal/config"
	"expenseboard/internal/domain"
	"expenseboard/internal/domain/models"
)

type ReportRepository struct {
	DB *sql.DB
}

func (r ReportRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const reportColumns = `
	id,
	user_id,
	COALESCE(dealer_name,''),
	COALESCE(state,''),
	COALESCE(city,''),
	COALESCE(location,''),
	COALESCE(notes,''),
	COALESCE(amount,0),
	COALESCE(status,'Pending'),
	COALESCE(rejection_reason,''),
	date_created`

func scanReport(row interface{ Scan(...any) error }) (models.DailyReport, error) {
	var (
		d      models.DailyReport
		status string
	)
	if err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.DealerName,
		&d.State,
		&d.City,
		&d.Location,
		&d.Notes,
		&d.Amount,
		&status,
		&d.RejectionReason,
		&d.DateCreated,
	); err != nil {
		return models.DailyReport{}, err
	}
	st, err := domain.ParseStatus(status)
	if err != nil {
		return models.DailyReport{}, err
	}
	d.Status = st
	return d, nil
}

func (r ReportRepository) ListByUser(userID int64) ([]models.DailyReport, error) {
	rows, err := r.db().Query(`
		SELECT `+reportColumns+`
		FROM daily_reports
		WHERE user_id=? AND archived=0
		ORDER BY date_created DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReports(rows)
}

func (r ReportRepository) ListAll() ([]models.DailyReport, error) {
	rows, err := r.db().Query(`
		SELECT ` + reportColumns + `
		FROM daily_reports
		WHERE archived=0
		ORDER BY date_created DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReports(rows)
}

// ListMonth returns the month's reports for export, archived included.
func (r ReportRepository) ListMonth(year, month int) ([]models.DailyReport, error) {
	rows, err := r.db().Query(`
		SELECT `+reportColumns+`
		FROM daily_reports
		WHERE YEAR(date_created)=? AND MONTH(date_created)=?
		ORDER BY date_created ASC`, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReports(rows)
}

func collectReports(rows *sql.Rows) ([]models.DailyReport, error) {
	out := make([]models.DailyReport, 0, 16)
	for rows.Next() {
		d, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r ReportRepository) GetByID(id int64) (models.DailyReport, error) {
	row := r.db().QueryRow(`
		SELECT `+reportColumns+`
		FROM daily_reports
		WHERE id=? LIMIT 1`, id)
	d, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailyReport{}, domain.NotFoundError{Resource: "daily report"}
	}
	return d, err
}

func (r ReportRepository) Insert(d models.DailyReport) (models.DailyReport, error) {
	now := time.Now()
	res, err := r.db().Exec(`
		INSERT INTO daily_reports
		  (user_id, dealer_name, state, city, location, notes, amount, status, date_created, archived)
		VALUES (?, ?, ?, ?, ?, ?, ?, 'Pending', ?, 0)`,
		d.UserID, d.DealerName, d.State, d.City, d.Location, d.Notes, d.Amount, now)
	if err != nil {
		return models.DailyReport{}, err
	}
	id, _ := res.LastInsertId()
	d.ID = id
	d.Status = domain.StatusPending
	d.DateCreated = now
	return d, nil
}

func (r ReportRepository) UpdateStatus(id int64, status domain.Status, reason string) error {
	res, err := r.db().Exec(`
		UPDATE daily_reports
		SET status=?, rejection_reason=?
		WHERE id=? AND COALESCE(status,'Pending')='Pending'`,
		status.String(), reason, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return domain.ConflictError{Resource: "daily report", Msg: "record is not pending"}
	}
	return nil
}
