package booking

import (
	"strconv"
	"strings"
	"time"
)

const defaultOpenHours = "06:00-22:00"

// Venue is a bookable facility with one or more courts, all sharing the
// same price per hour and operating window.
type Venue struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	CityID       string    `json:"cityId"`
	Courts       int       `json:"courts"`
	PricePerHour int       `json:"pricePerHour"`
	OpenHours    string    `json:"openHours"`
	Amenities    []string  `json:"amenities,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Rating       float64   `json:"rating"`
	CreatedAt    time.Time `json:"createdAt"`
}

// City is a lookup entry venues point at.
type City struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OperatingWindow parses the venue's "HH:MM-HH:MM" open hours into start
// and end hours. Missing or malformed values fall back to 06:00-22:00.
func (v Venue) OperatingWindow() (openHour, closeHour int) {
	hours := v.OpenHours
	if hours == "" {
		hours = defaultOpenHours
	}

	open, close, ok := strings.Cut(hours, "-")
	if !ok {
		return 6, 22
	}

	openHour = parseHour(open)
	closeHour = parseHour(close)
	if openHour < 0 || closeHour < 0 || closeHour <= openHour || closeHour > 24 {
		return 6, 22
	}
	return openHour, closeHour
}

func parseHour(s string) int {
	h, _, _ := strings.Cut(strings.TrimSpace(s), ":")
	n, err := strconv.Atoi(h)
	if err != nil {
		return -1
	}
	return n
}
