// Package booking holds the domain types behind the venue booking flow:
// venues, the slots that make up their bookable capacity, and the bookings
// that claim those slots.
package booking

import "fmt"

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotHeld      SlotStatus = "held"
	SlotBooked    SlotStatus = "booked"
)

// Slot is one bookable hour on one court on one date. Its status only
// moves forward within a booking cycle (available -> held -> booked);
// the one backward edge is held -> available when a checkout is abandoned.
type Slot struct {
	ID          string     `json:"id"`
	VenueID     string     `json:"venueId"`
	CourtNumber int        `json:"courtNumber"`
	Date        string     `json:"date"`      // YYYY-MM-DD
	StartTime   string     `json:"startTime"` // HH:MM, hour aligned
	EndTime     string     `json:"endTime"`
	Price       int        `json:"price"`
	Status      SlotStatus `json:"status"`
	BookedBy    *string    `json:"bookedBy,omitempty"`
}

// SlotID builds the deterministic id used for bulk-generated slots.
func SlotID(venueID string, court int, date, startTime string) string {
	return fmt.Sprintf("slot-%s-%d-%s-%s", venueID, court, date, startTime)
}
