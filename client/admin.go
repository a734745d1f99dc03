package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"

	"expenseboard/internal/domain"
	"expenseboard/internal/domain/models"
)

// ErrActionInFlight is returned while another approve/reject is still
// outstanding. It is a cooperative guard for one console, not a lock;
// concurrent admins on other clients are reconciled by the server's
// pending check.
var ErrActionInFlight = errors.New("another action is still in flight")

// Admin drives the approval console against one resource collection.
type Admin struct {
	client     *Client
	processing atomic.Bool
}

func NewAdmin(c *Client) *Admin {
	return &Admin{client: c}
}

// Processing reports whether an action is outstanding; the console
// disables every action button while this is true.
func (a *Admin) Processing() bool {
	return a.processing.Load()
}

// Approve finalizes a pending record. No reason is needed.
func (a *Admin) Approve(ctx context.Context, resource string, id int64) error {
	return a.updateStatus(ctx, resource, id, domain.StatusApproved, "")
}

// Reject finalizes a pending record with a reason. An empty reason is a
// local validation error and no request is made.
func (a *Admin) Reject(ctx context.Context, resource string, id int64, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ValidationError{Field: "rejection_reason", Msg: "a reason is required to reject"}
	}
	return a.updateStatus(ctx, resource, id, domain.StatusRejected, strings.TrimSpace(reason))
}

func (a *Admin) updateStatus(ctx context.Context, resource string, id int64, status domain.Status, reason string) error {
	if !a.processing.CompareAndSwap(false, true) {
		return ErrActionInFlight
	}
	defer a.processing.Store(false)

	path := fmt.Sprintf("/api/%s/update-status/%d", resource, id)
	return a.client.sendJSON(ctx, http.MethodPut, path, map[string]string{
		"status":           status.String(),
		"rejection_reason": reason,
	}, nil)
}

// AllExpenses refetches the full expense set. The console calls the
// matching fetch after every status update instead of patching its local
// copy, so its source of truth is always the server's latest snapshot.
func (a *Admin) AllExpenses(ctx context.Context) ([]models.Expense, error) {
	var out []models.Expense
	err := a.client.getJSON(ctx, "/api/expenses/all", &out)
	return out, err
}

// AllTravel refetches the full travel set.
func (a *Admin) AllTravel(ctx context.Context) ([]models.TravelRecord, error) {
	var out []models.TravelRecord
	err := a.client.getJSON(ctx, "/api/travel/all", &out)
	return out, err
}

// AllReports refetches the full dealer-visit set.
func (a *Admin) AllReports(ctx context.Context) ([]models.DailyReport, error) {
	var out []models.DailyReport
	err := a.client.getJSON(ctx, "/api/daily-reports/all", &out)
	return out, err
}

// AllIncome refetches the full income set.
func (a *Admin) AllIncome(ctx context.Context) ([]models.IncomeRecord, error) {
	var out []models.IncomeRecord
	err := a.client.getJSON(ctx, "/api/income/all", &out)
	return out, err
}

// CanAct reports whether action buttons should render for a record:
// only while it is still pending.
func CanAct(status domain.Status) bool {
	return status == domain.StatusPending
}
