package client

import (
	"context"
	"net/http"
	"strings"

	"expenseboard/internal/domain"
	"expenseboard/internal/domain/models"
	"expenseboard/internal/utils"
)

// ExpenseForm is the expense submission as entered, amounts still text.
type ExpenseForm struct {
	Category    string
	Description string
	Amount      string
}

func (f ExpenseForm) validate() error {
	if strings.TrimSpace(f.Category) == "" {
		return ValidationError{Field: "category", Msg: "category is required"}
	}
	if _, err := utils.ParseAmount(f.Amount); err != nil {
		return ValidationError{Field: "amount", Msg: err.Error()}
	}
	return nil
}

// SubmitExpense validates locally and posts the record. Invalid input
// returns a ValidationError without touching the network.
func (c *Client) SubmitExpense(ctx context.Context, form ExpenseForm) (models.Expense, error) {
	if err := form.validate(); err != nil {
		return models.Expense{}, err
	}
	var out models.Expense
	err := c.sendJSON(ctx, http.MethodPost, "/api/expenses", map[string]string{
		"category":    strings.TrimSpace(form.Category),
		"description": strings.TrimSpace(form.Description),
		"amount":      strings.TrimSpace(form.Amount),
	}, &out)
	return out, err
}

// TravelForm is the travel submission. Which field group matters is keyed
// by Mode; the inactive group must stay empty.
type TravelForm struct {
	Mode domain.TravelMode

	// personal vehicle
	DistanceKM string
	State      string
	City       string
	Location   string

	// public transport
	TicketPrice string
	FromStation string
	ToStation   string
}

// Payload builds the outgoing request body with only the active variant's
// fields present, so the server never sees an ambiguous record.
func (f TravelForm) Payload() (map[string]string, error) {
	if _, err := domain.ParseTravelMode(string(f.Mode)); err != nil {
		return nil, ValidationError{Field: "travel_mode", Msg: err.Error()}
	}

	payload := map[string]string{"travel_mode": string(f.Mode)}
	if f.Mode.Personal() {
		if strings.TrimSpace(f.TicketPrice) != "" || strings.TrimSpace(f.FromStation) != "" || strings.TrimSpace(f.ToStation) != "" {
			return nil, ValidationError{Field: "travel_mode", Msg: "public transport fields must be empty for personal vehicle travel"}
		}
		if _, err := utils.ParseAmount(f.DistanceKM); err != nil {
			return nil, ValidationError{Field: "distance_km", Msg: err.Error()}
		}
		for field, value := range map[string]string{"state": f.State, "city": f.City, "location": f.Location} {
			if strings.TrimSpace(value) == "" {
				return nil, ValidationError{Field: field, Msg: field + " is required"}
			}
		}
		payload["distance_km"] = strings.TrimSpace(f.DistanceKM)
		payload["state"] = strings.TrimSpace(f.State)
		payload["city"] = strings.TrimSpace(f.City)
		payload["location"] = strings.TrimSpace(f.Location)
		return payload, nil
	}

	if strings.TrimSpace(f.DistanceKM) != "" || strings.TrimSpace(f.State) != "" ||
		strings.TrimSpace(f.City) != "" || strings.TrimSpace(f.Location) != "" {
		return nil, ValidationError{Field: "travel_mode", Msg: "personal vehicle fields must be empty for public transport travel"}
	}
	if _, err := utils.ParseAmount(f.TicketPrice); err != nil {
		return nil, ValidationError{Field: "ticket_price", Msg: err.Error()}
	}
	if strings.TrimSpace(f.FromStation) == "" {
		return nil, ValidationError{Field: "from_station", Msg: "from station is required"}
	}
	if strings.TrimSpace(f.ToStation) == "" {
		return nil, ValidationError{Field: "to_station", Msg: "to station is required"}
	}
	payload["ticket_price"] = strings.TrimSpace(f.TicketPrice)
	payload["from_station"] = strings.TrimSpace(f.FromStation)
	payload["to_station"] = strings.TrimSpace(f.ToStation)
	return payload, nil
}

// SubmitTravel validates the variant locally and posts the record.
func (c *Client) SubmitTravel(ctx context.Context, form TravelForm) (models.TravelRecord, error) {
	payload, err := form.Payload()
	if err != nil {
		return models.TravelRecord{}, err
	}
	var out models.TravelRecord
	err = c.sendJSON(ctx, http.MethodPost, "/api/travel", payload, &out)
	return out, err
}

// ReportForm is the dealer-visit submission.
type ReportForm struct {
	DealerName string
	State      string
	City       string
	Location   string
	Notes      string
	Amount     string
}

// SubmitReport validates locally and posts the record.
func (c *Client) SubmitReport(ctx context.Context, form ReportForm) (models.DailyReport, error) {
	for field, value := range map[string]string{
		"dealer_name": form.DealerName,
		"state":       form.State,
		"city":        form.City,
		"location":    form.Location,
	} {
		if strings.TrimSpace(value) == "" {
			return models.DailyReport{}, ValidationError{Field: field, Msg: field + " is required"}
		}
	}
	if _, err := utils.ParseAmount(form.Amount); err != nil {
		return models.DailyReport{}, ValidationError{Field: "amount", Msg: err.Error()}
	}

	var out models.DailyReport
	err := c.sendJSON(ctx, http.MethodPost, "/api/daily-reports", map[string]string{
		"dealer_name": strings.TrimSpace(form.DealerName),
		"state":       strings.TrimSpace(form.State),
		"city":        strings.TrimSpace(form.City),
		"location":    strings.TrimSpace(form.Location),
		"notes":       strings.TrimSpace(form.Notes),
		"amount":      strings.TrimSpace(form.Amount),
	}, &out)
	return out, err
}

// IncomeForm is the income submission.
type IncomeForm struct {
	Description string
	Category    string
	Amount      string
}

// SubmitIncome validates locally and posts the record.
func (c *Client) SubmitIncome(ctx context.Context, form IncomeForm) (models.IncomeRecord, error) {
	if strings.TrimSpace(form.Description) == "" {
		return models.IncomeRecord{}, ValidationError{Field: "description", Msg: "description is required"}
	}
	if strings.TrimSpace(form.Category) == "" {
		return models.IncomeRecord{}, ValidationError{Field: "category", Msg: "category is required"}
	}
	if _, err := utils.ParseAmount(form.Amount); err != nil {
		return models.IncomeRecord{}, ValidationError{Field: "amount", Msg: err.Error()}
	}

	var out models.IncomeRecord
	err := c.sendJSON(ctx, http.MethodPost, "/api/income", map[string]string{
		"description": strings.TrimSpace(form.Description),
		"category":    strings.TrimSpace(form.Category),
		"amount":      strings.TrimSpace(form.Amount),
	}, &out)
	return out, err
}

// MyExpenses fetches the caller's expense list.
func (c *Client) MyExpenses(ctx context.Context) ([]models.Expense, error) {
	var out []models.Expense
	err := c.getJSON(ctx, "/api/expenses/my", &out)
	return out, err
}

// MyTravel fetches the caller's travel list.
func (c *Client) MyTravel(ctx context.Context) ([]models.TravelRecord, error) {
	var out []models.TravelRecord
	err := c.getJSON(ctx, "/api/travel/my", &out)
	return out, err
}

// MyReports fetches the caller's dealer-visit reports.
func (c *Client) MyReports(ctx context.Context) ([]models.DailyReport, error) {
	var out []models.DailyReport
	err := c.getJSON(ctx, "/api/daily-reports/my", &out)
	return out, err
}

// MyIncome fetches the caller's income records.
func (c *Client) MyIncome(ctx context.Context) ([]models.IncomeRecord, error) {
	var out []models.IncomeRecord
	err := c.getJSON(ctx, "/api/income", &out)
	return out, err
}

// ExpenseCategories fetches the selectable categories.
func (c *Client) ExpenseCategories(ctx context.Context) ([]string, error) {
	var out []string
	err := c.getJSON(ctx, "/api/categories/expense", &out)
	return out, err
}
