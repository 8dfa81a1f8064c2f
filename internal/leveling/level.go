// Package leveling folds evaluated answers into the learner's profile:
// overall score, weighted skill score, streak, XP, and CEFR level
// movement.
package leveling

import "fmt"

// Level is a CEFR proficiency step.
type Level string

const (
	A1 Level = "A1"
	A2 Level = "A2"
	B1 Level = "B1"
	B2 Level = "B2"
	C1 Level = "C1"
	C2 Level = "C2"
)

// Levels lists the CEFR scale in ascending order.
var Levels = []Level{A1, A2, B1, B2, C1, C2}

// ParseLevel returns the Level for a label like "B1".
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown level %q", s)
}

// index returns the position of l on the scale, or -1.
func (l Level) index() int {
	for i, known := range Levels {
		if l == known {
			return i
		}
	}
	return -1
}

// Valid reports whether l is one of the six CEFR steps.
func (l Level) Valid() bool {
	return l.index() >= 0
}

// Next returns the step above l. C2 is the ceiling.
func (l Level) Next() Level {
	i := l.index()
	if i < 0 || i == len(Levels)-1 {
		return l
	}
	return Levels[i+1]
}

// Before reports whether l is strictly below other on the scale.
func (l Level) Before(other Level) bool {
	return l.index() < other.index()
}

// PlacementLevel maps an absolute placement score onto the scale. The
// diagnostic only distinguishes three tiers, so the mapping lands on
// the middle step of each band rather than using all six levels.
func PlacementLevel(score int) Level {
	switch {
	case score < 30:
		return A1
	case score < 70:
		return B1
	default:
		return C1
	}
}
