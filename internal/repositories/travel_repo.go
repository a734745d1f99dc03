package repositories

import (
	"database/sql"
	"errors"
	"time"

	intconfig "expenseboard/internal/config"
	intdb "expenseboard/internal/db"
	"expenseboard/internal/domain"
	"expenseboard/internal/domain/models"

	"github.com/shopspring/decimal"
)

type TravelRepository struct {
	DB *sql.DB
}

func (r TravelRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const travelColumns = `
	id,
	user_id,
	COALESCE(travel_mode,''),
	distance_km,
	state,
	city,
	location,
	ticket_price,
	from_station,
	to_station,
	ticket_file,
	COALESCE(calculated_amount,0),
	COALESCE(status,'Pending'),
	COALESCE(rejection_reason,''),
	date_created`

func scanTravel(row interface{ Scan(...any) error }) (models.TravelRecord, error) {
	var (
		t          models.TravelRecord
		mode       string
		distance   decimal.NullDecimal
		state      sql.NullString
		city       sql.NullString
		location   sql.NullString
		price      decimal.NullDecimal
		from       sql.NullString
		to         sql.NullString
		ticketFile sql.NullString
		status     string
	)
	if err := row.Scan(
		&t.ID,
		&t.UserID,
		&mode,
		&distance,
		&state,
		&city,
		&location,
		&price,
		&from,
		&to,
		&ticketFile,
		&t.CalculatedAmount,
		&status,
		&t.RejectionReason,
		&t.DateCreated,
	); err != nil {
		return models.TravelRecord{}, err
	}

	m, err := domain.ParseTravelMode(mode)
	if err != nil {
		return models.TravelRecord{}, err
	}
	t.TravelMode = m

	st, err := domain.ParseStatus(status)
	if err != nil {
		return models.TravelRecord{}, err
	}
	t.Status = st

	if distance.Valid {
		t.DistanceKM = &distance.Decimal
	}
	if state.Valid {
		t.State = &state.String
	}
	if city.Valid {
		t.City = &city.String
	}
	if location.Valid {
		t.Location = &location.String
	}
	if price.Valid {
		t.TicketPrice = &price.Decimal
	}
	if from.Valid {
		t.FromStation = &from.String
	}
	if to.Valid {
		t.ToStation = &to.String
	}
	if ticketFile.Valid {
		t.TicketFile = &ticketFile.String
	}
	return t, nil
}

func (r TravelRepository) ListByUser(userID int64) ([]models.TravelRecord, error) {
	rows, err := r.db().Query(`
		SELECT `+travelColumns+`
		FROM travel_records
		WHERE user_id=? AND archived=0
		ORDER BY date_created DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTravel(rows)
}

func (r TravelRepository) ListAll() ([]models.TravelRecord, error) {
	rows, err := r.db().Query(`
		SELECT ` + travelColumns + `
		FROM travel_records
		WHERE archived=0
		ORDER BY date_created DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTravel(rows)
}

// ListMonth returns the month's travel records for export, archived included.
func (r TravelRepository) ListMonth(year, month int) ([]models.TravelRecord, error) {
	rows, err := r.db().Query(`
		SELECT `+travelColumns+`
		FROM travel_records
		WHERE YEAR(date_created)=? AND MONTH(date_created)=?
		ORDER BY date_created ASC`, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTravel(rows)
}

func collectTravel(rows *sql.Rows) ([]models.TravelRecord, error) {
	out := make([]models.TravelRecord, 0, 16)
	for rows.Next() {
		t, err := scanTravel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TravelRepository) GetByID(id int64) (models.TravelRecord, error) {
	row := r.db().QueryRow(`
		SELECT `+travelColumns+`
		FROM travel_records
		WHERE id=? LIMIT 1`, id)
	t, err := scanTravel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TravelRecord{}, domain.NotFoundError{Resource: "travel record"}
	}
	return t, err
}

// Insert stores a validated travel record. The inactive variant's columns
// are written as NULL via the record's pointer fields.
func (r TravelRepository) Insert(t models.TravelRecord) (models.TravelRecord, error) {
	if err := t.Validate(); err != nil {
		return models.TravelRecord{}, err
	}

	now := time.Now()
	res, err := r.db().Exec(`
		INSERT INTO travel_records
		  (user_id, travel_mode, distance_km, state, city, location,
		   ticket_price, from_station, to_station, ticket_file,
		   calculated_amount, status, date_created, archived)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'Pending', ?, 0)`,
		t.UserID,
		t.TravelMode.String(),
		nullDecimal(t.DistanceKM),
		nullString(t.State),
		nullString(t.City),
		nullString(t.Location),
		nullDecimal(t.TicketPrice),
		nullString(t.FromStation),
		nullString(t.ToStation),
		nullString(t.TicketFile),
		t.CalculatedAmount,
		now,
	)
	if err != nil {
		return models.TravelRecord{}, err
	}
	id, _ := res.LastInsertId()
	t.ID = id
	t.Status = domain.StatusPending
	t.DateCreated = now
	return t, nil
}

func (r TravelRepository) UpdateStatus(id int64, status domain.Status, reason string) error {
	res, err := r.db().Exec(`
		UPDATE travel_records
		SET status=?, rejection_reason=?
		WHERE id=? AND COALESCE(status,'Pending')='Pending'`,
		status.String(), reason, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return domain.ConflictError{Resource: "travel record", Msg: "record is not pending"}
	}
	return nil
}

func nullString(p *string) any {
	if p == nil {
		return nil
	}
	return intdb.NullIfEmpty(*p)
}

func nullDecimal(p *decimal.Decimal) any {
	if p == nil {
		return nil
	}
	return *p
}
