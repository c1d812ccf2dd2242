package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/picklebay/picklebay/internal/booking"
	"github.com/picklebay/picklebay/internal/store"
)

// slotHorizonDays is how far ahead capacity is generated for a new venue.
const slotHorizonDays = 30

// VenueService creates venues and the bookable capacity behind them.
type VenueService struct {
	store *store.DataStore
	now   func() time.Time
}

func NewVenueService(store *store.DataStore) *VenueService {
	return &VenueService{store: store, now: time.Now}
}

type VenueInput struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	CityID       string   `json:"cityId"`
	Courts       int      `json:"courts"`
	PricePerHour int      `json:"pricePerHour"`
	OpenHours    string   `json:"openHours"`
	Amenities    []string `json:"amenities,omitempty"`
	Phone        string   `json:"phone,omitempty"`
}

// CreateVenue stores the venue and bulk-generates its capacity: one
// available slot per court per operating hour per day over the next 30
// days, all at the venue's price per hour.
func (s *VenueService) CreateVenue(input VenueInput) (*booking.Venue, error) {
	if input.Name == "" || input.Address == "" {
		return nil, fmt.Errorf("%w: name and address are required", ErrValidation)
	}
	if input.Courts < 1 {
		input.Courts = 1
	}

	venue := booking.Venue{
		ID:           "venue-" + uuid.NewString(),
		Name:         input.Name,
		Address:      input.Address,
		CityID:       input.CityID,
		Courts:       input.Courts,
		PricePerHour: input.PricePerHour,
		OpenHours:    input.OpenHours,
		Amenities:    input.Amenities,
		Phone:        input.Phone,
		Rating:       4.0, // default rating for new venues
		CreatedAt:    s.now().UTC(),
	}

	if err := s.store.SaveVenues(append(s.store.Venues(), venue)); err != nil {
		return nil, err
	}

	slots := append(s.store.Slots(), s.generateSlots(venue)...)
	if err := s.store.SaveSlots(slots); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (s *VenueService) generateSlots(venue booking.Venue) []booking.Slot {
	openHour, closeHour := venue.OperatingWindow()
	today := s.now()

	var slots []booking.Slot
	for day := 0; day < slotHorizonDays; day++ {
		date := today.AddDate(0, 0, day).Format("2006-01-02")
		for court := 1; court <= venue.Courts; court++ {
			for hour := openHour; hour < closeHour; hour++ {
				start := fmt.Sprintf("%02d:00", hour)
				slots = append(slots, booking.Slot{
					ID:          booking.SlotID(venue.ID, court, date, start),
					VenueID:     venue.ID,
					CourtNumber: court,
					Date:        date,
					StartTime:   start,
					EndTime:     fmt.Sprintf("%02d:00", hour+1),
					Price:       venue.PricePerHour,
					Status:      booking.SlotAvailable,
				})
			}
		}
	}
	return slots
}
