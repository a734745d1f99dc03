package models

import (
	"time"

	"expenseboard/internal/domain"

	"github.com/shopspring/decimal"
)

// TravelRecord is the flat, wire/storage shape of a travel claim. The
// variant columns are pointers so the inactive variant serializes as null,
// never as a zero value the server would have to second-guess.
type TravelRecord struct {
	ID         int64             `json:"id"`
	UserID     int64             `json:"user_id"`
	TravelMode domain.TravelMode `json:"travel_mode"`

	// personal vehicle variant
	DistanceKM *decimal.Decimal `json:"distance_km,omitempty"`
	State      *string          `json:"state,omitempty"`
	City       *string          `json:"city,omitempty"`
	Location   *string          `json:"location,omitempty"`

	// public transport variant
	TicketPrice *decimal.Decimal `json:"ticket_price,omitempty"`
	FromStation *string          `json:"from_station,omitempty"`
	ToStation   *string          `json:"to_station,omitempty"`
	TicketFile  *string          `json:"ticket_file,omitempty"`

	CalculatedAmount decimal.Decimal `json:"calculated_amount"`
	Status           domain.Status   `json:"status"`
	RejectionReason  string          `json:"rejection_reason,omitempty"`
	DateCreated      time.Time       `json:"date_created"`
}

// Details reconstructs the tagged variant from the flat record.
func (r TravelRecord) Details() (domain.TravelDetails, error) {
	if r.TravelMode.Personal() {
		d := domain.PersonalVehicle{}
		if r.DistanceKM != nil {
			d.DistanceKM = *r.DistanceKM
		}
		if r.State != nil {
			d.State = *r.State
		}
		if r.City != nil {
			d.City = *r.City
		}
		if r.Location != nil {
			d.Location = *r.Location
		}
		return d, d.Validate(r.TravelMode)
	}

	d := domain.PublicTransport{}
	if r.TicketPrice != nil {
		d.TicketPrice = *r.TicketPrice
	}
	if r.FromStation != nil {
		d.FromStation = *r.FromStation
	}
	if r.ToStation != nil {
		d.ToStation = *r.ToStation
	}
	if r.TicketFile != nil {
		d.TicketFile = *r.TicketFile
	}
	return d, d.Validate(r.TravelMode)
}

// SetDetails writes the active variant's fields and nulls the other
// variant, keeping exactly one side populated.
func (r *TravelRecord) SetDetails(details domain.TravelDetails) error {
	if err := details.Validate(r.TravelMode); err != nil {
		return err
	}

	r.DistanceKM = nil
	r.State = nil
	r.City = nil
	r.Location = nil
	r.TicketPrice = nil
	r.FromStation = nil
	r.ToStation = nil
	r.TicketFile = nil

	switch d := details.(type) {
	case domain.PersonalVehicle:
		km := d.DistanceKM
		r.DistanceKM = &km
		r.State = &d.State
		r.City = &d.City
		r.Location = &d.Location
	case domain.PublicTransport:
		price := d.TicketPrice
		r.TicketPrice = &price
		r.FromStation = &d.FromStation
		r.ToStation = &d.ToStation
		if d.TicketFile != "" {
			r.TicketFile = &d.TicketFile
		}
	}
	return nil
}

// Validate checks the mode and that the populated fields match it. A
// record carrying the wrong variant's fields is ambiguous and rejected.
func (r TravelRecord) Validate() error {
	if _, err := domain.ParseTravelMode(string(r.TravelMode)); err != nil {
		return err
	}
	if r.TravelMode.Personal() {
		if r.TicketPrice != nil || r.FromStation != nil || r.ToStation != nil || r.TicketFile != nil {
			return domain.ValidationError{Field: "travel_mode", Msg: "personal vehicle record carries public transport fields"}
		}
	} else {
		if r.DistanceKM != nil || r.State != nil || r.City != nil || r.Location != nil {
			return domain.ValidationError{Field: "travel_mode", Msg: "public transport record carries personal vehicle fields"}
		}
	}
	_, err := r.Details()
	return err
}
