package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/picklebay/picklebay/internal/booking"
	"github.com/picklebay/picklebay/internal/store"
	"github.com/picklebay/picklebay/internal/utils"
)

// SlotService is the ledger for bookable court time. It owns every slot
// status transition: available -> held -> booked, with held slots
// releasable back to available when a checkout is abandoned. Held slots
// never expire on their own; abandoning callers must invoke Release.
type SlotService struct {
	store *store.DataStore
	now   func() time.Time
}

func NewSlotService(store *store.DataStore) *SlotService {
	return &SlotService{store: store, now: time.Now}
}

// ListSlots returns every slot for a venue and date, whatever its status,
// ordered by court then start time. Callers filter by status for display.
func (s *SlotService) ListSlots(venueID, date string) []booking.Slot {
	var slots []booking.Slot
	for _, slot := range s.store.Slots() {
		if slot.VenueID == venueID && slot.Date == date {
			slots = append(slots, slot)
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		if slots[i].CourtNumber != slots[j].CourtNumber {
			return slots[i].CourtNumber < slots[j].CourtNumber
		}
		return slots[i].StartTime < slots[j].StartTime
	})
	return slots
}

// Hold claims every named slot for checkout. The operation is
// all-or-nothing: if any slot is not currently available the whole hold
// fails with ErrSlotConflict and no status change is persisted. On
// success the held slots and their price total are stored as the pending
// booking session, so a later Confirm charges the prices captured here.
func (s *SlotService) Hold(venueID string, slotIDs []string) (*booking.PendingBooking, error) {
	if _, ok := s.store.VenueByID(venueID); !ok {
		return nil, ErrVenueNotFound
	}
	if len(slotIDs) == 0 {
		return nil, fmt.Errorf("%w: no slots selected", ErrValidation)
	}

	slots := s.store.Slots()
	byID := indexSlots(slots)

	held := make([]booking.Slot, 0, len(slotIDs))
	total := 0
	for _, id := range slotIDs {
		i, ok := byID[id]
		if !ok || slots[i].Status != booking.SlotAvailable {
			return nil, fmt.Errorf("%w: %s", ErrSlotConflict, id)
		}
		slots[i].Status = booking.SlotHeld
		held = append(held, slots[i])
		total += slots[i].Price
	}

	pending := &booking.PendingBooking{VenueID: venueID, Slots: held, Total: total}

	if err := s.store.SaveSlots(slots); err != nil {
		return nil, err
	}
	if err := s.store.SavePendingBooking(pending); err != nil {
		return nil, err
	}
	return pending, nil
}

// Confirm finalises the pending booking: every held slot becomes booked
// and is stamped with the new booking id. The total comes from the prices
// captured at hold time, so repricing a slot while it is held cannot
// change what the booking charges.
func (s *SlotService) Confirm(contact booking.ContactInfo, paymentMethod string) (*booking.Booking, error) {
	if contact.Name == "" || contact.Phone == "" {
		return nil, fmt.Errorf("%w: name and phone are required", ErrValidation)
	}

	pending, ok := s.store.PendingBooking()
	if !ok {
		return nil, ErrNoPendingBooking
	}

	slots := s.store.Slots()
	byID := indexSlots(slots)
	bookingID := "PB-" + uuid.NewString()

	for _, heldSlot := range pending.Slots {
		i, ok := byID[heldSlot.ID]
		if !ok || slots[i].Status != booking.SlotHeld {
			return nil, fmt.Errorf("%w: %s", ErrSlotState, heldSlot.ID)
		}
		slots[i].Status = booking.SlotBooked
		slots[i].BookedBy = utils.Ptr(bookingID)
	}

	record := booking.Booking{
		ID:            bookingID,
		VenueID:       pending.VenueID,
		Slots:         pending.Slots,
		Contact:       contact,
		Total:         pending.Total,
		PaymentMethod: paymentMethod,
		Status:        booking.BookingConfirmed,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.store.SaveSlots(slots); err != nil {
		return nil, err
	}
	if err := s.store.AppendBooking(record); err != nil {
		return nil, err
	}
	if err := s.store.ClearPendingBooking(); err != nil {
		return nil, err
	}
	return &record, nil
}

// Release reverts held slots to available and clears the checkout
// session. This is the abandonment path; booked slots are never released.
func (s *SlotService) Release(slotIDs []string) error {
	slots := s.store.Slots()
	byID := indexSlots(slots)

	for _, id := range slotIDs {
		i, ok := byID[id]
		if !ok || slots[i].Status != booking.SlotHeld {
			return fmt.Errorf("%w: %s", ErrSlotState, id)
		}
		slots[i].Status = booking.SlotAvailable
		slots[i].BookedBy = nil
	}

	if err := s.store.SaveSlots(slots); err != nil {
		return err
	}
	return s.store.ClearPendingBooking()
}

func indexSlots(slots []booking.Slot) map[string]int {
	byID := make(map[string]int, len(slots))
	for i, slot := range slots {
		byID[slot.ID] = i
	}
	return byID
}
