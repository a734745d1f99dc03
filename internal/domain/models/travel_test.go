package models

import (
	"testing"

	"expenseboard/internal/domain"

	"github.com/shopspring/decimal"
)

func TestSetDetailsKeepsOneVariant(t *testing.T) {
	rec := TravelRecord{TravelMode: domain.ModeBus}
	price := decimal.NewFromInt(250)

	// start with leftover personal fields, as if the mode was switched
	km := decimal.NewFromInt(12)
	state := "Karnataka"
	rec.DistanceKM = &km
	rec.State = &state

	err := rec.SetDetails(domain.PublicTransport{
		TicketPrice: price,
		FromStation: "Bengaluru",
		ToStation:   "Mysuru",
	})
	if err != nil {
		t.Fatalf("SetDetails returned error: %v", err)
	}

	if rec.DistanceKM != nil || rec.State != nil || rec.City != nil || rec.Location != nil {
		t.Fatalf("personal fields must be nulled after switching to public transport")
	}
	if rec.TicketPrice == nil || !rec.TicketPrice.Equal(price) {
		t.Fatalf("ticket price not stored")
	}
	if rec.FromStation == nil || *rec.FromStation != "Bengaluru" {
		t.Fatalf("from station not stored")
	}
}

func TestSetDetailsModeMismatch(t *testing.T) {
	rec := TravelRecord{TravelMode: domain.ModeTwoWheeler}
	err := rec.SetDetails(domain.PublicTransport{
		TicketPrice: decimal.NewFromInt(100),
		FromStation: "A",
		ToStation:   "B",
	})
	if err == nil {
		t.Fatalf("public transport details on a Two Wheeler record must fail")
	}
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestValidateRejectsMixedVariants(t *testing.T) {
	km := decimal.NewFromInt(10)
	price := decimal.NewFromInt(80)
	state := "Kerala"
	city := "Kochi"
	location := "Edappally"

	rec := TravelRecord{
		TravelMode: domain.ModeFourWheeler,
		DistanceKM: &km,
		State:      &state,
		City:       &city,
		Location:   &location,
		// stray public field makes the record ambiguous
		TicketPrice: &price,
	}
	if err := rec.Validate(); err == nil {
		t.Fatalf("record with both variants populated must be rejected")
	}

	rec.TicketPrice = nil
	if err := rec.Validate(); err != nil {
		t.Fatalf("clean personal record should validate, got %v", err)
	}
}

func TestDetailsRoundTrip(t *testing.T) {
	rec := TravelRecord{TravelMode: domain.ModeTrain}
	want := domain.PublicTransport{
		TicketPrice: decimal.NewFromFloat(499.50),
		FromStation: "Chennai",
		ToStation:   "Coimbatore",
	}
	if err := rec.SetDetails(want); err != nil {
		t.Fatalf("SetDetails: %v", err)
	}

	got, err := rec.Details()
	if err != nil {
		t.Fatalf("Details: %v", err)
	}
	public, ok := got.(domain.PublicTransport)
	if !ok {
		t.Fatalf("expected PublicTransport, got %T", got)
	}
	if !public.TicketPrice.Equal(want.TicketPrice) || public.FromStation != want.FromStation {
		t.Fatalf("round trip mismatch: %+v", public)
	}
}
