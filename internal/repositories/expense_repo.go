package repositories

import (
	"database/sql"
	"errors"
	"time"

	intconfig "expenseboard/internal/config"
	"expenseboard/internal/domain"
	"expenseboard/internal/domain/models"
)

type ExpenseRepository struct {
	DB *sql.DB
}

func (r ExpenseRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const expenseColumns = `
	id,
	user_id,
	COALESCE(category,''),
	COALESCE(description,''),
	amount,
	COALESCE(status,'Pending'),
	COALESCE(rejection_reason,''),
	date_created`

func scanExpense(row interface{ Scan(...any) error }) (models.Expense, error) {
	var (
		e       models.Expense
		status  string
		created time.Time
	)
	if err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Category,
		&e.Description,
		&e.Amount,
		&status,
		&e.RejectionReason,
		&created,
	); err != nil {
		return models.Expense{}, err
	}
	st, err := domain.ParseStatus(status)
	if err != nil {
		return models.Expense{}, err
	}
	e.Status = st
	e.DateCreated = created
	return e, nil
}

// ListByUser returns the user's non-archived expenses, newest first.
func (r ExpenseRepository) ListByUser(userID int64) ([]models.Expense, error) {
	rows, err := r.db().Query(`
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE user_id=? AND archived=0
		ORDER BY date_created DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Expense, 0, 16)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListAll returns every non-archived expense for the admin console.
func (r ExpenseRepository) ListAll() ([]models.Expense, error) {
	rows, err := r.db().Query(`
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE archived=0
		ORDER BY date_created DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Expense, 0, 32)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListMonth returns the month's expenses for export, archived included.
func (r ExpenseRepository) ListMonth(year, month int) ([]models.Expense, error) {
	rows, err := r.db().Query(`
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE YEAR(date_created)=? AND MONTH(date_created)=?
		ORDER BY date_created ASC`, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Expense, 0, 32)
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetByID fetches one expense regardless of owner.
func (r ExpenseRepository) GetByID(id int64) (models.Expense, error) {
	row := r.db().QueryRow(`
		SELECT `+expenseColumns+`
		FROM expenses
		WHERE id=? LIMIT 1`, id)
	e, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Expense{}, domain.NotFoundError{Resource: "expense"}
	}
	return e, err
}

// Insert stores a new expense as Pending and returns it with its id.
func (r ExpenseRepository) Insert(e models.Expense) (models.Expense, error) {
	now := time.Now()
	res, err := r.db().Exec(`
		INSERT INTO expenses (user_id, category, description, amount, status, date_created, archived)
		VALUES (?, ?, ?, ?, 'Pending', ?, 0)`,
		e.UserID, e.Category, e.Description, e.Amount, now)
	if err != nil {
		return models.Expense{}, err
	}
	id, _ := res.LastInsertId()
	e.ID = id
	e.Status = domain.StatusPending
	e.DateCreated = now
	return e, nil
}

// UpdateStatus finalizes a pending expense. The WHERE clause repeats the
// Pending check so a racing admin cannot overwrite a terminal status.
func (r ExpenseRepository) UpdateStatus(id int64, status domain.Status, reason string) error {
	res, err := r.db().Exec(`
		UPDATE expenses
		SET status=?, rejection_reason=?
		WHERE id=? AND COALESCE(status,'Pending')='Pending'`,
		status.String(), reason, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return domain.ConflictError{Resource: "expense", Msg: "record is not pending"}
	}
	return nil
}

// Categories lists the selectable expense categories.
func (r ExpenseRepository) Categories() ([]string, error) {
	rows, err := r.db().Query(`SELECT name FROM expense_categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// HasCategory reports whether the category exists.
func (r ExpenseRepository) HasCategory(name string) (bool, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM expense_categories WHERE name=?`, name).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
