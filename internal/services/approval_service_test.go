package services

import (
	"testing"
	"time"

	"expenseboard/internal/domain"
	"expenseboard/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var expenseCols = []string{"id", "user_id", "category", "description", "amount", "status", "rejection_reason", "date_created"}

func newApprovalService(t *testing.T) (ApprovalService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := ApprovalService{
		ExpenseRepo: repositories.ExpenseRepository{DB: db},
		TravelRepo:  repositories.TravelRepository{DB: db},
		ReportRepo:  repositories.ReportRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func TestRejectWithoutReasonSendsNoQuery(t *testing.T) {
	svc, mock, done := newApprovalService(t)
	defer done()

	err := svc.UpdateStatus("expenses", 5, domain.StatusUpdate{Status: domain.StatusRejected, Reason: "   "})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	// The invalid decision must be stopped before the database is touched.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database traffic: %v", err)
	}
}

func TestApproveAlreadyApprovedConflicts(t *testing.T) {
	svc, mock, done := newApprovalService(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM expenses").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(expenseCols).
			AddRow(5, 4, "Fuel", "diesel", "450.00", "Approved", "", time.Now()))

	err := svc.UpdateStatus("expenses", 5, domain.StatusUpdate{Status: domain.StatusApproved})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApprovePendingRunsUpdate(t *testing.T) {
	svc, mock, done := newApprovalService(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM expenses").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(expenseCols).
			AddRow(5, 4, "Fuel", "diesel", "450.00", "Pending", "", time.Now()))
	mock.ExpectExec("UPDATE expenses").
		WithArgs("Approved", "", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// Any reason sent along with an approval is discarded.
	err := svc.UpdateStatus("expenses", 5, domain.StatusUpdate{Status: domain.StatusApproved, Reason: "looks fine"})
	if err != nil {
		t.Fatalf("approve error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestIncomeHasNoApprovalStatus(t *testing.T) {
	svc, mock, done := newApprovalService(t)
	defer done()

	err := svc.UpdateStatus("income", 3, domain.StatusUpdate{Status: domain.StatusApproved})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database traffic: %v", err)
	}
}
