package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/picklebay/picklebay/internal/bracket"
	"github.com/picklebay/picklebay/internal/store"
	"github.com/picklebay/picklebay/internal/tournament"
	"github.com/picklebay/picklebay/internal/utils"
)

// MinBracketPlayers is the roster size at which a bracket is first built.
const MinBracketPlayers = 4

// RegistrationService handles tournament sign-ups and keeps each event's
// bracket in step with its roster.
type RegistrationService struct {
	store *store.DataStore
	now   func() time.Time
}

func NewRegistrationService(store *store.DataStore) *RegistrationService {
	return &RegistrationService{store: store, now: time.Now}
}

type RegistrationInput struct {
	Name        string
	Phone       string
	Email       string
	SkillLevel  tournament.SkillLevel
	PartnerName string
}

// Register validates and stores a new registrant, then rebuilds the
// event's bracket in full from the roster in registration order. The
// returned bracket is nil while the roster is below MinBracketPlayers.
// A phone or email already on the roster rejects the sign-up before any
// record is created.
func (s *RegistrationService) Register(eventID string, input RegistrationInput) (*tournament.Registrant, []bracket.Round, error) {
	if input.Name == "" || input.Phone == "" {
		return nil, nil, fmt.Errorf("%w: name and phone are required", ErrValidation)
	}

	event, ok := s.store.EventByID(eventID)
	if !ok {
		return nil, nil, ErrEventNotFound
	}

	roster := s.Roster(eventID)
	if s.now().After(event.RegistrationDeadline) {
		return nil, nil, ErrRegistrationClosed
	}
	if len(roster) >= event.MaxParticipants {
		return nil, nil, ErrEventFull
	}
	for _, existing := range roster {
		if existing.Phone == input.Phone || (input.Email != "" && existing.Email == input.Email) {
			return nil, nil, ErrAlreadyRegistered
		}
	}

	skill := input.SkillLevel
	if skill == "" {
		skill = tournament.SkillBeginner
	}

	registrant := tournament.Registrant{
		ID:          "REG-" + uuid.NewString(),
		EventID:     eventID,
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		SkillLevel:  skill,
		PartnerName: utils.StringOrNil(input.PartnerName),
		Status:      tournament.RegistrationConfirmed,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.store.AppendRegistration(registrant); err != nil {
		return nil, nil, err
	}

	return &registrant, buildBracket(append(roster, registrant)), nil
}

// Bracket returns the event's current bracket, rebuilt in full from the
// roster, or nil while fewer than MinBracketPlayers have signed up.
func (s *RegistrationService) Bracket(eventID string) []bracket.Round {
	return buildBracket(s.Roster(eventID))
}

// Roster returns the event's registrants in registration order.
func (s *RegistrationService) Roster(eventID string) []tournament.Registrant {
	var roster []tournament.Registrant
	for _, r := range s.store.Registrations() {
		if r.EventID == eventID {
			roster = append(roster, r)
		}
	}
	return roster
}

func buildBracket(roster []tournament.Registrant) []bracket.Round {
	if len(roster) < MinBracketPlayers {
		return nil
	}

	players := make([]bracket.Player, 0, len(roster))
	for _, r := range roster {
		players = append(players, bracket.Player{
			ID:         r.ID,
			Name:       r.Name,
			SkillLevel: string(r.SkillLevel),
		})
	}
	return bracket.Generate(players)
}
