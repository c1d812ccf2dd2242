// Package ics renders confirmed bookings as RFC 5545 calendar documents
// so they can be imported into a calendar app.
package ics

import (
	"fmt"
	"strings"
	"time"

	"github.com/picklebay/picklebay/internal/booking"
)

const stampLayout = "20060102T150405Z"

// Event is one calendar entry.
type Event struct {
	UID         string
	Title       string
	Start       time.Time
	End         time.Time
	Description string
	Location    string
}

// ForSlot builds the calendar event for a single booked slot at a venue.
func ForSlot(record booking.Booking, venue booking.Venue, slot booking.Slot) (Event, error) {
	start, err := time.Parse("2006-01-02 15:04", slot.Date+" "+slot.StartTime)
	if err != nil {
		return Event{}, fmt.Errorf("parse slot start: %w", err)
	}
	end, err := time.Parse("2006-01-02 15:04", slot.Date+" "+slot.EndTime)
	if err != nil {
		return Event{}, fmt.Errorf("parse slot end: %w", err)
	}

	return Event{
		UID:         record.ID + "-" + slot.ID,
		Title:       fmt.Sprintf("Court %d at %s", slot.CourtNumber, venue.Name),
		Start:       start,
		End:         end,
		Description: "Booking " + record.ID,
		Location:    venue.Address,
	}, nil
}

// Build returns the VCALENDAR document for a single event. Lines are
// CRLF-separated as the format requires.
func Build(event Event) string {
	uid := event.UID
	if uid == "" {
		uid = fmt.Sprintf("picklebay-%d@local", time.Now().UnixMilli())
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//PickleBay//EN",
		"CALSCALE:GREGORIAN",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + time.Now().UTC().Format(stampLayout),
		"DTSTART:" + event.Start.UTC().Format(stampLayout),
		"DTEND:" + event.End.UTC().Format(stampLayout),
		"SUMMARY:" + escape(event.Title),
		"DESCRIPTION:" + escape(event.Description),
		"LOCATION:" + escape(event.Location),
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n")
}

var escaper = strings.NewReplacer(`\`, `\\`, ",", `\,`, ";", `\;`, "\n", `\n`)

func escape(s string) string {
	return escaper.Replace(s)
}
