// Package bracket builds single-elimination tournament brackets from an
// ordered roster of players.
package bracket

import (
	"fmt"
	"math"
)

// ByeName marks the synthetic players used to pad a roster to a power of
// two. A BYE pairing is automatically won by the real player.
const ByeName = "BYE"

// Player is one bracket participant.
type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SkillLevel string `json:"skillLevel"`
}

// IsBye reports whether the player is a synthetic padding entry.
func (p Player) IsBye() bool {
	return p.Name == ByeName
}

// Match pairs two player slots within a round. A nil player pointer means
// the slot is unresolved: rounds after the first start with both slots
// empty because winners are not advanced automatically.
type Match struct {
	ID      string  `json:"id"`
	Round   int     `json:"round"`
	Player1 *Player `json:"player1"`
	Player2 *Player `json:"player2"`
	Winner  *Player `json:"winner"`
}

// Round is the ordered set of matches played at the same depth.
type Round []Match

// Size gets the nearest power of 2 while rounding up, so with input 5 it
// returns 8 and so on.
func Size(count int) int {
	if count <= 0 {
		return 0
	}

	// Log2 -> Ceil -> 2^^log2 to round up
	log2 := math.Ceil(math.Log2(float64(count)))
	return int(math.Pow(2, log2))
}

// Generate builds the full single-elimination structure for a roster in
// registration order: no shuffling and no seeding by skill level. The
// roster is padded to a power of two with BYE entries appended after the
// real players, round 0 pairs neighbours by position, and every later
// round halves the match count with both slots unresolved. Rosters of
// fewer than two players produce no rounds. The output depends only on
// the roster order, so the same input always yields the same bracket.
func Generate(players []Player) []Round {
	if len(players) < 2 {
		return nil
	}

	size := Size(len(players))
	padded := make([]Player, 0, size)
	padded = append(padded, players...)
	for len(padded) < size {
		padded = append(padded, Player{
			ID:         fmt.Sprintf("bye-%d", len(padded)),
			Name:       ByeName,
			SkillLevel: "beginner",
		})
	}

	first := make(Round, 0, size/2)
	for i := 0; i < len(padded); i += 2 {
		first = append(first, Match{
			ID:      fmt.Sprintf("match-0-%d", i/2),
			Round:   0,
			Player1: &padded[i],
			Player2: &padded[i+1],
		})
	}

	rounds := []Round{first}
	for prev := first; len(prev) > 1; {
		num := len(rounds)
		next := make(Round, 0, len(prev)/2)
		for i := 0; i < len(prev); i += 2 {
			next = append(next, Match{
				ID:    fmt.Sprintf("match-%d-%d", num, i/2),
				Round: num,
			})
		}
		rounds = append(rounds, next)
		prev = next
	}

	return rounds
}
