package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"expenseboard/internal/domain"
)

func TestRejectWithoutReasonSendsNothing(t *testing.T) {
	var requests int64
	srv := countingServer(&requests)
	defer srv.Close()

	admin := NewAdmin(New(srv.URL, "tok"))
	for _, reason := range []string{"", "   ", "\t\n"} {
		err := admin.Reject(context.Background(), "expenses", 5, reason)
		var verr ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("reason %q: expected ValidationError, got %v", reason, err)
		}
	}
	if n := atomic.LoadInt64(&requests); n != 0 {
		t.Fatalf("empty-reason rejects must not reach the server, saw %d requests", n)
	}
}

func TestApproveSendsSingleUpdate(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	admin := NewAdmin(New(srv.URL, "tok"))
	if err := admin.Approve(context.Background(), "expenses", 5); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/api/expenses/update-status/5" {
		t.Fatalf("unexpected request: %s %s", gotMethod, gotPath)
	}
	if admin.Processing() {
		t.Fatal("processing flag must clear after the action resolves")
	}
}

func TestSecondActionBlockedWhileFirstInFlight(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	admin := NewAdmin(New(srv.URL, "tok"))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := admin.Approve(context.Background(), "expenses", 5); err != nil {
			t.Errorf("first approve: %v", err)
		}
	}()

	deadline := time.Now().Add(time.Second)
	for !admin.Processing() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	if err := admin.Approve(context.Background(), "expenses", 6); !errors.Is(err, ErrActionInFlight) {
		t.Fatalf("expected ErrActionInFlight, got %v", err)
	}

	close(release)
	wg.Wait()
}

func TestCanActOnlyWhilePending(t *testing.T) {
	if !CanAct(domain.StatusPending) {
		t.Fatal("pending records take actions")
	}
	if CanAct(domain.StatusApproved) || CanAct(domain.StatusRejected) {
		t.Fatal("terminal records must not take actions")
	}
}
