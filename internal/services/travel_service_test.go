package services

import (
	"testing"

	"expenseboard/internal/domain"
	"expenseboard/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
)

func TestCalculateTravelAmount(t *testing.T) {
	cases := []struct {
		name    string
		mode    domain.TravelMode
		details domain.TravelDetails
		want    string
	}{
		{"two wheeler 12km", domain.ModeTwoWheeler, domain.PersonalVehicle{DistanceKM: decimal.NewFromInt(12)}, "60"},
		{"four wheeler 12km", domain.ModeFourWheeler, domain.PersonalVehicle{DistanceKM: decimal.NewFromInt(12)}, "120"},
		{"four wheeler half km", domain.ModeFourWheeler, domain.PersonalVehicle{DistanceKM: decimal.RequireFromString("2.5")}, "25"},
		{"train ticket", domain.ModeTrain, domain.PublicTransport{TicketPrice: decimal.RequireFromString("840.50")}, "840.5"},
		{"flight ticket", domain.ModeFlight, domain.PublicTransport{TicketPrice: decimal.NewFromInt(4200)}, "4200"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateTravelAmount(tc.mode, tc.details)
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Fatalf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestSubmitRejectsMismatchedVariantWithoutDB(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := TravelService{Repo: repositories.TravelRepository{DB: db}}
	_, err = svc.Submit(4, domain.ModeBus, domain.PersonalVehicle{
		DistanceKM: decimal.NewFromInt(10),
		State:      "Karnataka",
		City:       "Bengaluru",
		Location:   "Whitefield",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected database traffic: %v", err)
	}
}

func TestSubmitInsertsWithCalculatedAmount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO travel_records").
		WillReturnResult(sqlmock.NewResult(3, 1))

	svc := TravelService{Repo: repositories.TravelRepository{DB: db}}
	stored, err := svc.Submit(4, domain.ModeTwoWheeler, domain.PersonalVehicle{
		DistanceKM: decimal.NewFromInt(8),
		State:      "Karnataka",
		City:       "Bengaluru",
		Location:   "Whitefield",
	})
	if err != nil {
		t.Fatalf("submit error: %v", err)
	}
	if stored.ID != 3 {
		t.Fatalf("expected id 3, got %d", stored.ID)
	}
	if !stored.CalculatedAmount.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("calculated amount = %s, want 40", stored.CalculatedAmount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
