package password

import (
	"strings"
	"unicode/utf8"
)

// strengthSymbols is the symbol set the scorer looks for. It is narrower than
// the generator's symbol class.
const strengthSymbols = "$@#&!"

const criteriaCount = 5

// Tier is a coarse strength classification used for display.
type Tier int

const (
	TierWeak Tier = iota
	TierMedium
	TierStrong
)

// StrongThreshold is the lowest score counted as strong.
const StrongThreshold = 60

func (t Tier) String() string {
	switch t {
	case TierStrong:
		return "strong"
	case TierMedium:
		return "medium"
	default:
		return "weak"
	}
}

// Color is the hex display colour of the tier: red, yellow or green.
func (t Tier) Color() string {
	switch t {
	case TierStrong:
		return "#22c55e"
	case TierMedium:
		return "#eab308"
	default:
		return "#ef4444"
	}
}

// Score rates pw from 0 to 100 in steps of 20: one step each for a length of
// at least 8, a lowercase letter, an uppercase letter, a digit and a symbol
// from "$@#&!". The empty string scores 0.
func Score(pw string) int {
	points := 0
	if utf8.RuneCountInString(pw) >= MinLength {
		points++
	}
	if strings.ContainsAny(pw, lowercaseChars) {
		points++
	}
	if strings.ContainsAny(pw, uppercaseChars) {
		points++
	}
	if strings.ContainsAny(pw, numberChars) {
		points++
	}
	if strings.ContainsAny(pw, strengthSymbols) {
		points++
	}
	return points * 100 / criteriaCount
}

// TierFor maps a score to its tier.
func TierFor(score int) Tier {
	switch {
	case score < 30:
		return TierWeak
	case score < StrongThreshold:
		return TierMedium
	default:
		return TierStrong
	}
}
