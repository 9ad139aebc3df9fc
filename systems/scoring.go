package systems

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/LeulTew/Kitefew/components"
	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/LeulTew/Kitefew/events"
	"github.com/LeulTew/Kitefew/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MultiplierFor scans the descending streak threshold table and returns the
// multiplier for the highest threshold the streak meets.
func MultiplierFor(streak int) int {
	for _, t := range cfg.Scoring.MultiplierThresholds {
		if streak >= t.Streak {
			return t.Multiplier
		}
	}
	return 1
}

// ResolveSlice applies the scoring transition for a freshly sliced target
// and removes it from the simulation.
func ResolveSlice(e *ecs.ECS, entry *donburi.Entry) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	t := components.Target.Get(entry)

	switch t.Kind {
	case components.KindHazard:
		sliceHazard(e, session, t)
	case components.KindLifeBonus:
		sliceLifeBonus(e, session, t)
	default:
		sliceFruit(e, session, t)
	}

	factory.DestroyTarget(e, entry)
}

// sliceHazard is the terminal transition: the session ends with the score
// unchanged and nothing after it scores.
func sliceHazard(e *ecs.ECS, session *components.SessionData, t *components.TargetData) {
	if rng := spawnerRand(e); rng != nil {
		factory.SpawnSparks(e, rng, t.X, t.Y)
	}
	endSession(e, session)
}

func sliceLifeBonus(e *ecs.ECS, session *components.SessionData, t *components.TargetData) {
	if session.Lives < session.MaxLives {
		session.Lives++
		events.Publish(e.World, events.Notice{Kind: events.NoticeLives, Lives: session.Lives})
		feedback(e, t.X, t.Y, "+1 LIFE")
	} else {
		pts := cfg.Scoring.LifeBonusPts * session.Multiplier
		session.Score += pts
		events.Publish(e.World, events.Notice{Kind: events.NoticeScore, Score: session.Score})
		feedback(e, t.X, t.Y, fmt.Sprintf("BONUS +%d", pts))
	}
	if rng := spawnerRand(e); rng != nil {
		factory.SpawnSliceBurst(e, rng, t.X, t.Y, t.Kind)
	}
}

func sliceFruit(e *ecs.ECS, session *components.SessionData, t *components.TargetData) {
	now := clockNow(e)

	// Combo window tracks bursts of fruit slices, independent of streak.
	if session.ComboCount > 0 && now-session.LastSliceMs <= cfg.Scoring.ComboWindowMs {
		session.ComboCount++
	} else {
		session.ComboCount = 1
	}
	session.LastSliceMs = now

	base := 1 * session.Multiplier
	bonus := 0
	var parts []string

	// Highest matching combo tier only.
	switch {
	case session.ComboCount == 2:
		bonus += cfg.Scoring.DoubleBonus
		parts = append(parts, "DOUBLE!")
	case session.ComboCount == 3:
		bonus += cfg.Scoring.TripleBonus
		parts = append(parts, "TRIPLE!")
	case session.ComboCount >= 4:
		bonus += cfg.Scoring.MegaBonus
		parts = append(parts, "MEGA!")
	}

	if t.Paired {
		bonus += cfg.Scoring.PairBonus
		parts = append(parts, "PAIR!")
	}

	session.Streak++
	session.Multiplier = MultiplierFor(session.Streak)
	session.Score += base + bonus

	events.Publish(e.World, events.Notice{Kind: events.NoticeScore, Score: session.Score})
	events.Publish(e.World, events.Notice{
		Kind:       events.NoticeStreak,
		Streak:     session.Streak,
		Multiplier: session.Multiplier,
	})
	if len(parts) > 0 {
		feedback(e, t.X, t.Y, strings.Join(parts, " "))
	}

	if rng := spawnerRand(e); rng != nil {
		factory.SpawnSliceBurst(e, rng, t.X, t.Y, t.Kind)
	}
}

// ResolveMiss handles a fruit target exiting the field un-sliced: the streak
// breaks and a life is lost. Hazard and life-bonus exits carry no penalty.
func ResolveMiss(e *ecs.ECS, t *components.TargetData) {
	if !t.Kind.IsFruit() {
		return
	}
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	if session.Over {
		return
	}

	resetStreak(e, session)

	session.Lives--
	if session.Lives < 0 {
		session.Lives = 0
	}
	events.Publish(e.World, events.Notice{Kind: events.NoticeLives, Lives: session.Lives})

	if session.Lives == 0 {
		endSession(e, session)
	}
}

// BreakStreak performs the miss reset without the life penalty, for
// external triggers.
func BreakStreak(e *ecs.ECS) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	if session.Over {
		return
	}
	resetStreak(e, session)
}

func resetStreak(e *ecs.ECS, session *components.SessionData) {
	session.Streak = 0
	session.Multiplier = 1
	session.ComboCount = 0
	events.Publish(e.World, events.Notice{
		Kind:       events.NoticeStreak,
		Streak:     0,
		Multiplier: 1,
	})
}

func endSession(e *ecs.ECS, session *components.SessionData) {
	session.Over = true
	events.Publish(e.World, events.Notice{Kind: events.NoticeEnded, Score: session.Score})
}

func feedback(e *ecs.ECS, x, y float64, text string) {
	factory.CreateSplash(e, x, y, text)
	events.Publish(e.World, events.Notice{Kind: events.NoticeFeedback, X: x, Y: y, Text: text})
}

func clockNow(e *ecs.ECS) float64 {
	if clockEntry, ok := components.Clock.First(e.World); ok {
		return components.Clock.Get(clockEntry).NowMs
	}
	return 0
}

func spawnerRand(e *ecs.ECS) *rand.Rand {
	if spawnerEntry, ok := components.Spawner.First(e.World); ok {
		return components.Spawner.Get(spawnerEntry).Rand
	}
	return nil
}
