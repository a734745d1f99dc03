package services

import (
	"fmt"

	"expenseboard/internal/domain"
	"expenseboard/internal/domain/models"
	"expenseboard/internal/repositories"
	"expenseboard/internal/utils"

	"github.com/shopspring/decimal"
)

// Per-km reimbursement rates for personal vehicle travel.
var perKmRate = map[domain.TravelMode]decimal.Decimal{
	domain.ModeTwoWheeler:  decimal.NewFromInt(5),
	domain.ModeFourWheeler: decimal.NewFromInt(10),
}

// TravelService validates and stores travel claims, deriving the
// reimbursable amount from the active variant.
type TravelService struct {
	Repo      repositories.TravelRepository
	RequestID string
}

// Submit stores a new claim. The details must match the mode; the record
// is written with the inactive variant nulled and calculated_amount set.
func (s TravelService) Submit(userID int64, mode domain.TravelMode, details domain.TravelDetails) (models.TravelRecord, error) {
	if userID <= 0 {
		return models.TravelRecord{}, domain.ValidationError{Field: "user_id", Msg: "invalid user"}
	}

	rec := models.TravelRecord{UserID: userID, TravelMode: mode}
	if err := rec.SetDetails(details); err != nil {
		return models.TravelRecord{}, err
	}
	rec.CalculatedAmount = CalculateTravelAmount(mode, details)

	stored, err := s.Repo.Insert(rec)
	if err != nil {
		return models.TravelRecord{}, err
	}

	utils.LogEvent(s.RequestID, "travel", "submit",
		fmt.Sprintf("id=%d mode=%s amount=%s", stored.ID, mode, stored.CalculatedAmount))
	return stored, nil
}

// CalculateTravelAmount derives the reimbursable amount: distance times
// the per-km rate for personal vehicles, the ticket price otherwise.
func CalculateTravelAmount(mode domain.TravelMode, details domain.TravelDetails) decimal.Decimal {
	switch d := details.(type) {
	case domain.PersonalVehicle:
		if rate, ok := perKmRate[mode]; ok {
			return d.DistanceKM.Mul(rate)
		}
		return decimal.Zero
	case domain.PublicTransport:
		return d.TicketPrice
	default:
		return decimal.Zero
	}
}
