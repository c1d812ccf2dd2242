package service

import (
	"testing"
	"time"

	"github.com/picklebay/picklebay/internal/booking"
	"github.com/picklebay/picklebay/internal/storage"
	"github.com/picklebay/picklebay/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
}

// newBookingFixture builds a store with one freshly created venue so its
// slots exist for the fixture date.
func newBookingFixture(t *testing.T) (*store.DataStore, *SlotService, booking.Venue) {
	t.Helper()

	ds := store.NewDataStore(storage.NewMemory())
	venues := NewVenueService(ds)
	venues.now = fixedNow

	venue, err := venues.CreateVenue(VenueInput{
		Name:         "Smash Arena",
		Address:      "12 Lake Road",
		CityID:       "delhi",
		Courts:       2,
		PricePerHour: 600,
		OpenHours:    "06:00-22:00",
	})
	require.NoError(t, err)

	slots := NewSlotService(ds)
	slots.now = fixedNow
	return ds, slots, *venue
}

func slotID(venue booking.Venue, court int, start string) string {
	return booking.SlotID(venue.ID, court, "2025-03-01", start)
}

func TestListSlotsOrdered(t *testing.T) {
	_, slots, venue := newBookingFixture(t)

	listed := slots.ListSlots(venue.ID, "2025-03-01")
	require.Len(t, listed, 2*16) // 2 courts, 06:00-22:00

	for i := 1; i < len(listed); i++ {
		prev, cur := listed[i-1], listed[i]
		if prev.CourtNumber == cur.CourtNumber {
			assert.Less(t, prev.StartTime, cur.StartTime)
		} else {
			assert.Less(t, prev.CourtNumber, cur.CourtNumber)
		}
	}

	assert.Empty(t, slots.ListSlots(venue.ID, "2030-01-01"), "outside the generated horizon")
}

func TestHoldCapturesPrices(t *testing.T) {
	_, slots, venue := newBookingFixture(t)

	pending, err := slots.Hold(venue.ID, []string{
		slotID(venue, 1, "07:00"),
		slotID(venue, 1, "08:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1200, pending.Total)
	require.Len(t, pending.Slots, 2)

	for _, slot := range slots.ListSlots(venue.ID, "2025-03-01") {
		switch slot.ID {
		case slotID(venue, 1, "07:00"), slotID(venue, 1, "08:00"):
			assert.Equal(t, booking.SlotHeld, slot.Status)
		default:
			assert.Equal(t, booking.SlotAvailable, slot.Status)
		}
	}
}

func TestHoldConflictIsAllOrNothing(t *testing.T) {
	_, slots, venue := newBookingFixture(t)

	slotA := slotID(venue, 1, "07:00")
	slotB := slotID(venue, 1, "08:00")
	slotC := slotID(venue, 2, "07:00")

	_, err := slots.Hold(venue.ID, []string{slotA, slotB})
	require.NoError(t, err)

	// A is already held, so the second hold must fail without touching C,
	// even though C is named before A.
	_, err = slots.Hold(venue.ID, []string{slotC, slotA})
	assert.ErrorIs(t, err, ErrSlotConflict)

	for _, slot := range slots.ListSlots(venue.ID, "2025-03-01") {
		if slot.ID == slotC {
			assert.Equal(t, booking.SlotAvailable, slot.Status, "no partial hold may leak")
		}
	}
}

func TestHoldUnknownSlotAndVenue(t *testing.T) {
	_, slots, venue := newBookingFixture(t)

	_, err := slots.Hold("venue-nope", []string{slotID(venue, 1, "07:00")})
	assert.ErrorIs(t, err, ErrVenueNotFound)

	_, err = slots.Hold(venue.ID, []string{"slot-nope"})
	assert.ErrorIs(t, err, ErrSlotConflict)

	_, err = slots.Hold(venue.ID, nil)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestConfirmUsesHoldTimePrices(t *testing.T) {
	ds, slots, venue := newBookingFixture(t)

	held := []string{slotID(venue, 1, "07:00"), slotID(venue, 1, "08:00")}
	_, err := slots.Hold(venue.ID, held)
	require.NoError(t, err)

	// reprice every slot while the hold is live
	repriced := ds.Slots()
	for i := range repriced {
		repriced[i].Price = 900
	}
	require.NoError(t, ds.SaveSlots(repriced))

	record, err := slots.Confirm(booking.ContactInfo{Name: "Asha", Phone: "9810012345"}, "upi")
	require.NoError(t, err)

	assert.Equal(t, 1200, record.Total, "total must come from hold-time prices")
	assert.Equal(t, booking.BookingConfirmed, record.Status)
	assert.Equal(t, "upi", record.PaymentMethod)

	for _, slot := range slots.ListSlots(venue.ID, "2025-03-01") {
		if slot.ID == held[0] || slot.ID == held[1] {
			assert.Equal(t, booking.SlotBooked, slot.Status)
			require.NotNil(t, slot.BookedBy)
			assert.Equal(t, record.ID, *slot.BookedBy)
		}
	}

	bookings := ds.Bookings()
	require.Len(t, bookings, 1)
	assert.Equal(t, record.ID, bookings[0].ID)

	_, ok := ds.PendingBooking()
	assert.False(t, ok, "checkout session is cleared on confirm")
}

func TestConfirmValidatesContact(t *testing.T) {
	_, slots, venue := newBookingFixture(t)

	_, err := slots.Hold(venue.ID, []string{slotID(venue, 1, "07:00")})
	require.NoError(t, err)

	_, err = slots.Confirm(booking.ContactInfo{Name: "Asha"}, "upi")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = slots.Confirm(booking.ContactInfo{Phone: "9810012345"}, "upi")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestConfirmRequiresHeldSlots(t *testing.T) {
	ds, slots, venue := newBookingFixture(t)

	_, err := slots.Confirm(booking.ContactInfo{Name: "Asha", Phone: "9810012345"}, "upi")
	assert.ErrorIs(t, err, ErrNoPendingBooking)

	held := slotID(venue, 1, "07:00")
	_, err = slots.Hold(venue.ID, []string{held})
	require.NoError(t, err)

	// flip the slot back behind the session's back
	drifted := ds.Slots()
	for i := range drifted {
		if drifted[i].ID == held {
			drifted[i].Status = booking.SlotAvailable
		}
	}
	require.NoError(t, ds.SaveSlots(drifted))

	_, err = slots.Confirm(booking.ContactInfo{Name: "Asha", Phone: "9810012345"}, "upi")
	assert.ErrorIs(t, err, ErrSlotState)
}

func TestReleaseRoundTrip(t *testing.T) {
	ds, slots, venue := newBookingFixture(t)

	held := slotID(venue, 1, "07:00")
	_, err := slots.Hold(venue.ID, []string{held})
	require.NoError(t, err)

	require.NoError(t, slots.Release([]string{held}))

	for _, slot := range slots.ListSlots(venue.ID, "2025-03-01") {
		if slot.ID == held {
			assert.Equal(t, booking.SlotAvailable, slot.Status)
			assert.Nil(t, slot.BookedBy)
		}
	}

	_, ok := ds.PendingBooking()
	assert.False(t, ok)

	// the slot is bookable again
	_, err = slots.Hold(venue.ID, []string{held})
	assert.NoError(t, err)
}

func TestReleaseRequiresHeld(t *testing.T) {
	_, slots, venue := newBookingFixture(t)

	err := slots.Release([]string{slotID(venue, 1, "07:00")})
	assert.ErrorIs(t, err, ErrSlotState)
}
