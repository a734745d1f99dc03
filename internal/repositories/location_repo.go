package repositories

import (
	"database/sql"

	intconfig "expenseboard/internal/config"
)

// LocationRepository backs the state -> city -> location cascade lookups.
type LocationRepository struct {
	DB *sql.DB
}

func (r LocationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r LocationRepository) States() ([]string, error) {
	rows, err := r.db().Query(`SELECT name FROM states ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNames(rows)
}

func (r LocationRepository) Cities(state string) ([]string, error) {
	rows, err := r.db().Query(`
		SELECT c.name
		FROM cities c
		JOIN states s ON s.id = c.state_id
		WHERE s.name=?
		ORDER BY c.name ASC`, state)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNames(rows)
}

func (r LocationRepository) Locations(state, city string) ([]string, error) {
	rows, err := r.db().Query(`
		SELECT l.name
		FROM locations l
		JOIN cities c ON c.id = l.city_id
		JOIN states s ON s.id = c.state_id
		WHERE s.name=? AND c.name=?
		ORDER BY l.name ASC`, state, city)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNames(rows)
}

func collectNames(rows *sql.Rows) ([]string, error) {
	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
