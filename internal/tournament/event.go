// Package tournament holds the domain types for tournament discovery and
// registration: events and the registrants that make up their rosters.
package tournament

import "time"

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillPro          SkillLevel = "pro"
)

// Event is a tournament listing at a venue.
type Event struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	VenueID              string     `json:"venueId"`
	CityID               string     `json:"cityId"`
	Description          string     `json:"description,omitempty"`
	SkillLevel           SkillLevel `json:"skillLevel"`
	EntryFee             int        `json:"entryFee"`
	MaxParticipants      int        `json:"maxParticipants"`
	RegistrationDeadline time.Time  `json:"registrationDeadline"`
	StartDate            time.Time  `json:"startDate"`
}

// RegistrationOpen reports whether the event still accepts sign-ups at the
// given roster size.
func (e Event) RegistrationOpen(now time.Time, registered int) bool {
	return !now.After(e.RegistrationDeadline) && registered < e.MaxParticipants
}
