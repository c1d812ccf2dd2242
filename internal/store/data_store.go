// Package store exposes the persisted collections as typed snapshots over
// the key-value storage boundary. Every read returns the whole collection
// and every write replaces it; there is no partial update primitive.
package store

import (
	"github.com/picklebay/picklebay/internal/booking"
	"github.com/picklebay/picklebay/internal/storage"
	"github.com/picklebay/picklebay/internal/tournament"
)

// Collection keys, namespaced the same way by every backend.
const (
	keyPrefix = "picklebay_"

	KeyCities        = "cities"
	KeyVenues        = "venues"
	KeySlots         = "slots"
	KeyBookings      = "bookings"
	KeyEvents        = "events"
	KeyRegistrations = "registrations"
	KeyPending       = "pendingBooking"
	KeySeeded        = "seeded"
)

type DataStore struct {
	kv storage.Store
}

func NewDataStore(kv storage.Store) *DataStore {
	return &DataStore{kv: kv}
}

func key(name string) string {
	return keyPrefix + name
}

func (s *DataStore) Cities() []booking.City {
	return storage.Get(s.kv, key(KeyCities), []booking.City{})
}

func (s *DataStore) SaveCities(cities []booking.City) error {
	return storage.Set(s.kv, key(KeyCities), cities)
}

func (s *DataStore) Venues() []booking.Venue {
	return storage.Get(s.kv, key(KeyVenues), []booking.Venue{})
}

func (s *DataStore) SaveVenues(venues []booking.Venue) error {
	return storage.Set(s.kv, key(KeyVenues), venues)
}

func (s *DataStore) VenueByID(id string) (booking.Venue, bool) {
	for _, venue := range s.Venues() {
		if venue.ID == id {
			return venue, true
		}
	}
	return booking.Venue{}, false
}

func (s *DataStore) Slots() []booking.Slot {
	return storage.Get(s.kv, key(KeySlots), []booking.Slot{})
}

func (s *DataStore) SaveSlots(slots []booking.Slot) error {
	return storage.Set(s.kv, key(KeySlots), slots)
}

func (s *DataStore) Bookings() []booking.Booking {
	return storage.Get(s.kv, key(KeyBookings), []booking.Booking{})
}

func (s *DataStore) AppendBooking(record booking.Booking) error {
	return storage.Set(s.kv, key(KeyBookings), append(s.Bookings(), record))
}

func (s *DataStore) Events() []tournament.Event {
	return storage.Get(s.kv, key(KeyEvents), []tournament.Event{})
}

func (s *DataStore) SaveEvents(events []tournament.Event) error {
	return storage.Set(s.kv, key(KeyEvents), events)
}

func (s *DataStore) EventByID(id string) (tournament.Event, bool) {
	for _, event := range s.Events() {
		if event.ID == id {
			return event, true
		}
	}
	return tournament.Event{}, false
}

func (s *DataStore) Registrations() []tournament.Registrant {
	return storage.Get(s.kv, key(KeyRegistrations), []tournament.Registrant{})
}

func (s *DataStore) AppendRegistration(registrant tournament.Registrant) error {
	return storage.Set(s.kv, key(KeyRegistrations), append(s.Registrations(), registrant))
}

// PendingBooking returns the live checkout session, if any.
func (s *DataStore) PendingBooking() (*booking.PendingBooking, bool) {
	pending := storage.Get[*booking.PendingBooking](s.kv, key(KeyPending), nil)
	return pending, pending != nil
}

func (s *DataStore) SavePendingBooking(pending *booking.PendingBooking) error {
	return storage.Set(s.kv, key(KeyPending), pending)
}

func (s *DataStore) ClearPendingBooking() error {
	return storage.Set[*booking.PendingBooking](s.kv, key(KeyPending), nil)
}

func (s *DataStore) Seeded() bool {
	return storage.Get(s.kv, key(KeySeeded), false)
}

func (s *DataStore) MarkSeeded() error {
	return storage.Set(s.kv, key(KeySeeded), true)
}
