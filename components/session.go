package components

import "github.com/yohamta/donburi"

// SessionData holds the scoring state machine's fields. Mutated only through
// the transition functions in systems/scoring.go.
type SessionData struct {
	Score       int
	Lives       int
	MaxLives    int
	Streak      int // consecutive fruit slices without a miss
	Multiplier  int // derived from Streak via the threshold table
	ComboCount  int // slices within the rolling combo window
	LastSliceMs float64
	Over        bool
}

var Session = donburi.NewComponentType[SessionData]()
