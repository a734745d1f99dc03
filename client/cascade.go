package client

import (
	"context"
	"net/url"
	"sync"
)

func pathEscape(s string) string {
	return url.PathEscape(s)
}

// Cascade drives the dependent state -> city -> location option lists.
// Every selection bumps a generation counter before the fetch starts and
// the response only commits if its generation is still current, so a slow
// response for an older selection can never overwrite a newer one.
// Changing an ancestor clears all descendant options and selections.
type Cascade struct {
	client *Client

	mu       sync.Mutex
	cityGen  uint64
	locGen   uint64
	state    string
	city     string
	location string
	cities   []string
	locs     []string
}

func NewCascade(c *Client) *Cascade {
	return &Cascade{client: c}
}

// States loads the top level; it has no ancestor so no guard is needed.
func (cs *Cascade) States(ctx context.Context) ([]string, error) {
	var out []string
	if err := cs.client.getJSON(ctx, "/api/locations/states", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SelectState changes the top level. Cities and locations from any
// earlier selection are invalid immediately, before the fetch resolves.
func (cs *Cascade) SelectState(ctx context.Context, state string) error {
	cs.mu.Lock()
	cs.state = state
	cs.city = ""
	cs.location = ""
	cs.cities = nil
	cs.locs = nil
	// invalidate in-flight fetches on every descendant level
	cs.cityGen++
	cs.locGen++
	gen := cs.cityGen
	cs.mu.Unlock()

	var cities []string
	if err := cs.client.getJSON(ctx, "/api/locations/cities/"+pathEscape(state), &cities); err != nil {
		return err
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	if gen != cs.cityGen {
		// a newer selection superseded this fetch; drop it
		return nil
	}
	cs.cities = cities
	return nil
}

// SelectCity changes the middle level and refreshes locations the same way.
func (cs *Cascade) SelectCity(ctx context.Context, city string) error {
	cs.mu.Lock()
	state := cs.state
	cs.city = city
	cs.location = ""
	cs.locs = nil
	cs.locGen++
	gen := cs.locGen
	cs.mu.Unlock()

	var locs []string
	if err := cs.client.getJSON(ctx, "/api/locations/locations/"+pathEscape(state)+"/"+pathEscape(city), &locs); err != nil {
		return err
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	if gen != cs.locGen {
		return nil
	}
	cs.locs = locs
	return nil
}

// SelectLocation completes the cascade.
func (cs *Cascade) SelectLocation(location string) {
	cs.mu.Lock()
	cs.location = location
	cs.mu.Unlock()
}

// Selection returns the current three-level choice.
func (cs *Cascade) Selection() (state, city, location string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.state, cs.city, cs.location
}

// Cities returns the committed city options for the current state.
func (cs *Cascade) Cities() []string {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return append([]string(nil), cs.cities...)
}

// Locations returns the committed location options for the current city.
func (cs *Cascade) Locations() []string {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return append([]string(nil), cs.locs...)
}
