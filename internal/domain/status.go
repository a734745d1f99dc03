package domain

import "strings"

// Status is the approval state of a submitted record. The lifecycle is
// Pending -> Approved or Pending -> Rejected; both targets are terminal.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ParseStatus normalizes a stored or submitted status string. An empty
// value maps to Pending, matching rows written before the status column
// existed.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pending":
		return StatusPending, nil
	case "approved":
		return StatusApproved, nil
	case "rejected":
		return StatusRejected, nil
	default:
		return "", ValidationError{Field: "status", Msg: "unknown status " + strings.TrimSpace(s)}
	}
}

func (s Status) String() string { return string(s) }

// Terminal reports whether no further transition is allowed.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo reports whether next is a legal transition from s.
func (s Status) CanTransitionTo(next Status) bool {
	if s != StatusPending {
		return false
	}
	return next == StatusApproved || next == StatusRejected
}

// StatusUpdate is an admin decision on a pending record.
type StatusUpdate struct {
	Status Status
	Reason string
}

// Validate enforces the decision rules: only the two terminal statuses are
// valid targets, and a rejection must carry a non-empty reason.
func (u StatusUpdate) Validate() error {
	switch u.Status {
	case StatusApproved:
		return nil
	case StatusRejected:
		if strings.TrimSpace(u.Reason) == "" {
			return ValidationError{Field: "rejection_reason", Msg: "a reason is required to reject"}
		}
		return nil
	case StatusPending:
		return ValidationError{Field: "status", Msg: "records cannot be moved back to Pending"}
	default:
		return ValidationError{Field: "status", Msg: "unknown status"}
	}
}

// Apply checks the transition from current and returns the resulting
// status, rejecting anything outside Pending -> {Approved, Rejected}.
func (u StatusUpdate) Apply(current Status) (Status, error) {
	if err := u.Validate(); err != nil {
		return current, err
	}
	if !current.CanTransitionTo(u.Status) {
		return current, ConflictError{
			Resource: "record",
			Msg:      "status is already " + current.String(),
		}
	}
	return u.Status, nil
}
