package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TravelMode discriminates the two travel record variants. Personal modes
// carry distance and a state/city/location triple; public modes carry a
// ticket price and stations.
type TravelMode string

const (
	ModeTwoWheeler  TravelMode = "Two Wheeler"
	ModeFourWheeler TravelMode = "Four Wheeler"
	ModeBus         TravelMode = "Bus"
	ModeTrain       TravelMode = "Train"
	ModeFlight      TravelMode = "Flight"
)

func ParseTravelMode(s string) (TravelMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "two wheeler":
		return ModeTwoWheeler, nil
	case "four wheeler":
		return ModeFourWheeler, nil
	case "bus":
		return ModeBus, nil
	case "train":
		return ModeTrain, nil
	case "flight":
		return ModeFlight, nil
	default:
		return "", ValidationError{Field: "travel_mode", Msg: "unknown travel mode " + strings.TrimSpace(s)}
	}
}

func (m TravelMode) String() string { return string(m) }

// Personal reports whether the mode uses the personal-vehicle variant.
func (m TravelMode) Personal() bool {
	return m == ModeTwoWheeler || m == ModeFourWheeler
}

// TravelDetails is the variant payload of a travel record. Exactly one of
// PersonalVehicle or PublicTransport backs it; the inactive variant's
// columns stay NULL at rest and absent on the wire.
type TravelDetails interface {
	travelDetails()
	Validate(mode TravelMode) error
}

// PersonalVehicle holds the fields of Two Wheeler / Four Wheeler records.
type PersonalVehicle struct {
	DistanceKM decimal.Decimal
	State      string
	City       string
	Location   string
}

func (PersonalVehicle) travelDetails() {}

func (d PersonalVehicle) Validate(mode TravelMode) error {
	if !mode.Personal() {
		return ValidationError{Field: "travel_mode", Msg: mode.String() + " does not take personal vehicle fields"}
	}
	if !d.DistanceKM.IsPositive() {
		return ValidationError{Field: "distance_km", Msg: "distance must be greater than zero"}
	}
	if strings.TrimSpace(d.State) == "" {
		return ValidationError{Field: "state", Msg: "state is required"}
	}
	if strings.TrimSpace(d.City) == "" {
		return ValidationError{Field: "city", Msg: "city is required"}
	}
	if strings.TrimSpace(d.Location) == "" {
		return ValidationError{Field: "location", Msg: "location is required"}
	}
	return nil
}

// PublicTransport holds the fields of Bus / Train / Flight records.
type PublicTransport struct {
	TicketPrice decimal.Decimal
	FromStation string
	ToStation   string
	TicketFile  string // stored filename of the uploaded ticket scan, optional
}

func (PublicTransport) travelDetails() {}

func (d PublicTransport) Validate(mode TravelMode) error {
	if mode.Personal() {
		return ValidationError{Field: "travel_mode", Msg: mode.String() + " does not take public transport fields"}
	}
	if !d.TicketPrice.IsPositive() {
		return ValidationError{Field: "ticket_price", Msg: "ticket price must be greater than zero"}
	}
	if strings.TrimSpace(d.FromStation) == "" {
		return ValidationError{Field: "from_station", Msg: "from station is required"}
	}
	if strings.TrimSpace(d.ToStation) == "" {
		return ValidationError{Field: "to_station", Msg: "to station is required"}
	}
	return nil
}
