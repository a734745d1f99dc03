package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"expenseboard/internal/domain"
)

func countingServer(requests *int64) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(requests, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"id":1}}`))
	}))
}

func TestSubmitExpenseInvalidAmountSendsNothing(t *testing.T) {
	var requests int64
	srv := countingServer(&requests)
	defer srv.Close()

	c := New(srv.URL, "tok")
	for _, amount := range []string{"", "abc", "-5", "0"} {
		_, err := c.SubmitExpense(context.Background(), ExpenseForm{Category: "Food", Amount: amount})
		var verr ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("amount %q: expected ValidationError, got %v", amount, err)
		}
	}
	if n := atomic.LoadInt64(&requests); n != 0 {
		t.Fatalf("invalid forms must not reach the server, saw %d requests", n)
	}
}

func TestTravelPayloadCarriesOnlyActiveVariant(t *testing.T) {
	personal := TravelForm{
		Mode:       domain.ModeTwoWheeler,
		DistanceKM: "12",
		State:      "Karnataka",
		City:       "Bengaluru",
		Location:   "Whitefield",
	}
	payload, err := personal.Payload()
	if err != nil {
		t.Fatalf("personal payload: %v", err)
	}
	for _, key := range []string{"ticket_price", "from_station", "to_station"} {
		if _, ok := payload[key]; ok {
			t.Fatalf("personal payload leaked public field %q", key)
		}
	}
	if payload["distance_km"] != "12" {
		t.Fatalf("distance_km = %q", payload["distance_km"])
	}

	public := TravelForm{
		Mode:        domain.ModeTrain,
		TicketPrice: "840.50",
		FromStation: "SBC",
		ToStation:   "MAS",
	}
	payload, err = public.Payload()
	if err != nil {
		t.Fatalf("public payload: %v", err)
	}
	for _, key := range []string{"distance_km", "state", "city", "location"} {
		if _, ok := payload[key]; ok {
			t.Fatalf("public payload leaked personal field %q", key)
		}
	}
}

func TestTravelPayloadRejectsCrossVariantFields(t *testing.T) {
	mixed := TravelForm{
		Mode:        domain.ModeBus,
		TicketPrice: "120",
		FromStation: "A",
		ToStation:   "B",
		DistanceKM:  "12", // does not belong on a bus record
	}
	if _, err := mixed.Payload(); err == nil {
		t.Fatal("expected cross-variant rejection")
	}

	mixed = TravelForm{
		Mode:        domain.ModeTwoWheeler,
		DistanceKM:  "12",
		State:       "Karnataka",
		City:        "Bengaluru",
		Location:    "Whitefield",
		TicketPrice: "120",
	}
	if _, err := mixed.Payload(); err == nil {
		t.Fatal("expected cross-variant rejection")
	}
}

func TestSubmitIncomeRequiresDescription(t *testing.T) {
	var requests int64
	srv := countingServer(&requests)
	defer srv.Close()

	c := New(srv.URL, "tok")
	_, err := c.SubmitIncome(context.Background(), IncomeForm{Description: "  ", Category: "Sales", Amount: "100"})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if requests != 0 {
		t.Fatalf("invalid income form must not reach the server")
	}

	if _, err := c.SubmitIncome(context.Background(), IncomeForm{Description: "Commission", Category: "Sales", Amount: "100"}); err != nil {
		t.Fatalf("valid income form: %v", err)
	}
	if requests != 1 {
		t.Fatalf("expected exactly one request, saw %d", requests)
	}
}
