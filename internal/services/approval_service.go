package services

import (
	"fmt"
	"strings"

	"expenseboard/internal/domain"
	"expenseboard/internal/repositories"
	"expenseboard/internal/utils"
)

// ApprovalService finalizes pending records. Every decision goes through
// domain.StatusUpdate so the Pending -> {Approved, Rejected} lifecycle is
// enforced in one place instead of by string comparison in handlers.
type ApprovalService struct {
	ExpenseRepo repositories.ExpenseRepository
	TravelRepo  repositories.TravelRepository
	ReportRepo  repositories.ReportRepository
	RequestID   string
}

// UpdateStatus applies an admin decision to one record of the named
// resource. Unknown resources and income records (which carry no status)
// are validation errors.
func (s ApprovalService) UpdateStatus(resource string, id int64, update domain.StatusUpdate) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "invalid id"}
	}
	if err := update.Validate(); err != nil {
		return err
	}

	reason := strings.TrimSpace(update.Reason)
	if update.Status == domain.StatusApproved {
		reason = ""
	}

	var current domain.Status
	var apply func() error

	switch normalizeResource(resource) {
	case "expenses":
		rec, err := s.ExpenseRepo.GetByID(id)
		if err != nil {
			return err
		}
		current = rec.Status
		apply = func() error { return s.ExpenseRepo.UpdateStatus(id, update.Status, reason) }
	case "travel":
		rec, err := s.TravelRepo.GetByID(id)
		if err != nil {
			return err
		}
		current = rec.Status
		apply = func() error { return s.TravelRepo.UpdateStatus(id, update.Status, reason) }
	case "daily-reports":
		rec, err := s.ReportRepo.GetByID(id)
		if err != nil {
			return err
		}
		current = rec.Status
		apply = func() error { return s.ReportRepo.UpdateStatus(id, update.Status, reason) }
	case "income":
		return domain.ValidationError{Field: "resource", Msg: "income records have no approval status"}
	default:
		return domain.ValidationError{Field: "resource", Msg: "unknown resource " + resource}
	}

	if _, err := update.Apply(current); err != nil {
		return err
	}
	if err := apply(); err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "approval", "update_status",
		fmt.Sprintf("resource=%s id=%d status=%s", normalizeResource(resource), id, update.Status))
	return nil
}

func normalizeResource(resource string) string {
	switch strings.ToLower(strings.TrimSpace(resource)) {
	case "expense", "expenses":
		return "expenses"
	case "travel", "travels":
		return "travel"
	case "daily-report", "daily-reports", "dailyreports", "reports":
		return "daily-reports"
	case "income", "incomes":
		return "income"
	default:
		return strings.ToLower(strings.TrimSpace(resource))
	}
}
