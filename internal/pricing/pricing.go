// Package pricing holds the fee arithmetic for court time and tournament
// entry.
package pricing

import (
	"math"

	"github.com/picklebay/picklebay/internal/tournament"
)

// peakSurge is the multiplier applied to peak-hour court time.
const peakSurge = 1.5

// SlotPrice returns the cost of duration hours of court time at basePrice
// per hour, with a 50% surge during peak hours.
func SlotPrice(basePrice, duration int, peakHour bool) int {
	price := float64(basePrice * duration)
	if peakHour {
		price *= peakSurge
	}
	return int(math.Round(price))
}

// TournamentFee returns the entry fee for a skill level: pro pays double,
// advanced pays half again, and early-bird registration takes 20% off.
func TournamentFee(baseFee int, skill tournament.SkillLevel, earlyBird bool) int {
	fee := float64(baseFee)

	switch skill {
	case tournament.SkillPro:
		fee *= 2
	case tournament.SkillAdvanced:
		fee *= 1.5
	}

	if earlyBird {
		fee *= 0.8
	}
	return int(math.Round(fee))
}
