package tournament

import "time"

type RegistrationStatus string

const RegistrationConfirmed RegistrationStatus = "confirmed"

// Registrant is one confirmed sign-up for an event. Records are
// append-only: once created they are never mutated.
type Registrant struct {
	ID          string             `json:"id"`
	EventID     string             `json:"eventId"`
	Name        string             `json:"name"`
	Phone       string             `json:"phone"`
	Email       string             `json:"email,omitempty"`
	SkillLevel  SkillLevel         `json:"skillLevel"`
	PartnerName *string            `json:"partnerName,omitempty"`
	Status      RegistrationStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
}
