// Package seed bootstraps the persisted collections with starter data on
// first run. Seeding happens exactly once per store, guarded by a flag in
// the store itself.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/picklebay/picklebay/internal/booking"
	"github.com/picklebay/picklebay/internal/service"
	"github.com/picklebay/picklebay/internal/store"
	"github.com/picklebay/picklebay/internal/tournament"
)

//go:embed data/cities.json
var citiesJSON []byte

//go:embed data/venues.json
var venuesJSON []byte

//go:embed data/events.json
var eventsJSON []byte

// seedEvent references its venue by name and carries dates as day offsets
// so the seeded events are always upcoming.
type seedEvent struct {
	Name            string                `json:"name"`
	VenueName       string                `json:"venueName"`
	Description     string                `json:"description"`
	SkillLevel      tournament.SkillLevel `json:"skillLevel"`
	EntryFee        int                   `json:"entryFee"`
	MaxParticipants int                   `json:"maxParticipants"`
	DeadlineInDays  int                   `json:"deadlineInDays"`
	StartInDays     int                   `json:"startInDays"`
}

// Once seeds cities, venues (with their generated slots) and events the
// first time it runs against a store; later calls are no-ops.
func Once(ds *store.DataStore, venues *service.VenueService) error {
	if ds.Seeded() {
		return nil
	}

	var cities []booking.City
	if err := json.Unmarshal(citiesJSON, &cities); err != nil {
		return fmt.Errorf("decode cities: %w", err)
	}
	if err := ds.SaveCities(cities); err != nil {
		return err
	}

	var inputs []service.VenueInput
	if err := json.Unmarshal(venuesJSON, &inputs); err != nil {
		return fmt.Errorf("decode venues: %w", err)
	}

	byName := make(map[string]booking.Venue, len(inputs))
	for _, input := range inputs {
		venue, err := venues.CreateVenue(input)
		if err != nil {
			return fmt.Errorf("seed venue %q: %w", input.Name, err)
		}
		byName[venue.Name] = *venue
	}

	var seeds []seedEvent
	if err := json.Unmarshal(eventsJSON, &seeds); err != nil {
		return fmt.Errorf("decode events: %w", err)
	}

	events := make([]tournament.Event, 0, len(seeds))
	for _, seed := range seeds {
		venue, ok := byName[seed.VenueName]
		if !ok {
			return fmt.Errorf("seed event %q: unknown venue %q", seed.Name, seed.VenueName)
		}
		now := venue.CreatedAt
		events = append(events, tournament.Event{
			ID:                   "event-" + uuid.NewString(),
			Name:                 seed.Name,
			VenueID:              venue.ID,
			CityID:               venue.CityID,
			Description:          seed.Description,
			SkillLevel:           seed.SkillLevel,
			EntryFee:             seed.EntryFee,
			MaxParticipants:      seed.MaxParticipants,
			RegistrationDeadline: now.AddDate(0, 0, seed.DeadlineInDays),
			StartDate:            now.AddDate(0, 0, seed.StartInDays),
		})
	}
	if err := ds.SaveEvents(events); err != nil {
		return err
	}

	return ds.MarkSeeded()
}
