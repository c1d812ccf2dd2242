package booking

import "time"

type BookingStatus string

const BookingConfirmed BookingStatus = "confirmed"

// ContactInfo is the purchaser's details collected at checkout. Name and
// phone are required, email is optional.
type ContactInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// Booking is a confirmed purchase of one or more slots. The embedded slots
// carry the prices captured when the hold was taken, so the total cannot
// drift if a slot is repriced while held.
type Booking struct {
	ID            string        `json:"id"`
	VenueID       string        `json:"venueId"`
	Slots         []Slot        `json:"slots"`
	Contact       ContactInfo   `json:"contactInfo"`
	Total         int           `json:"total"`
	PaymentMethod string        `json:"paymentMethod"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// PendingBooking is the checkout session that lives between hold and
// confirm. Slots and total are snapshots from hold time.
type PendingBooking struct {
	VenueID string `json:"venueId"`
	Slots   []Slot `json:"slots"`
	Total   int    `json:"total"`
}
