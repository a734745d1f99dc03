package domain

import "testing"

func TestParseStatusDefaultsToPending(t *testing.T) {
	st, err := ParseStatus("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if st != StatusPending {
		t.Fatalf("empty status should parse as Pending, got %s", st)
	}

	if _, err := ParseStatus("Archived"); err == nil {
		t.Fatalf("unknown status should be rejected")
	}
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusApproved, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusPending, false},
		{StatusPending, StatusPending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: got %v want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusPending.Terminal() {
		t.Fatalf("Pending must not be terminal")
	}
	if !StatusApproved.Terminal() || !StatusRejected.Terminal() {
		t.Fatalf("Approved and Rejected must be terminal")
	}
}

func TestStatusUpdateRejectNeedsReason(t *testing.T) {
	update := StatusUpdate{Status: StatusRejected, Reason: "   "}
	err := update.Validate()
	if err == nil {
		t.Fatalf("whitespace-only reason should fail validation")
	}
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	update.Reason = "missing receipt"
	if err := update.Validate(); err != nil {
		t.Fatalf("reject with reason should validate, got %v", err)
	}
}

func TestStatusUpdateApply(t *testing.T) {
	update := StatusUpdate{Status: StatusApproved}

	next, err := update.Apply(StatusPending)
	if err != nil {
		t.Fatalf("approve pending: %v", err)
	}
	if next != StatusApproved {
		t.Fatalf("got %s want %s", next, StatusApproved)
	}

	if _, err := update.Apply(StatusRejected); err == nil {
		t.Fatalf("approving a rejected record must conflict")
	} else if !IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}

	back := StatusUpdate{Status: StatusPending}
	if _, err := back.Apply(StatusPending); err == nil {
		t.Fatalf("moving back to Pending must be rejected")
	}
}
