package service

import "errors"

// Sentinel errors surfaced by the booking and registration services. All
// of them are local, synchronous conditions reported straight to the
// caller; nothing is retried or swallowed internally.
var (
	// ErrSlotConflict is returned when a hold names a slot that is no
	// longer available. The whole hold fails and nothing is persisted.
	ErrSlotConflict = errors.New("slot is not available")

	// ErrSlotState is returned when a confirm or release names a slot
	// that is not currently held.
	ErrSlotState = errors.New("slot is not held")

	// ErrValidation covers missing required input fields.
	ErrValidation = errors.New("required fields are missing")

	ErrVenueNotFound    = errors.New("venue not found")
	ErrEventNotFound    = errors.New("event not found")
	ErrNoPendingBooking = errors.New("no pending booking")

	ErrRegistrationClosed = errors.New("registration is closed")
	ErrEventFull          = errors.New("event is full")
	ErrAlreadyRegistered  = errors.New("already registered for this event")
)
