// Package engine drives the simulation headlessly: the embedding shell feeds
// pointer samples and frame steps in, and observes the session through
// callbacks. Rendering is layered on top by the scenes package.
package engine

import (
	"math/rand"

	"github.com/LeulTew/Kitefew/components"
	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/LeulTew/Kitefew/events"
	"github.com/LeulTew/Kitefew/systems"
	"github.com/LeulTew/Kitefew/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Callbacks receive session output notices, in the exact order the scoring
// transitions emitted them within a tick. Nil fields are skipped.
type Callbacks struct {
	ScoreChanged  func(score int)
	LivesChanged  func(lives int)
	StreakChanged func(streak, multiplier int)
	Feedback      func(x, y float64, text string)
	SessionEnded  func(finalScore int)
}

// Engine owns the ECS world and the frame loop. It does not render; use ECS()
// to attach renderers.
type Engine struct {
	ecs       *ecs.ECS
	rng       *rand.Rand
	callbacks Callbacks
	width     float64
	height    float64
	running   bool
}

// New creates an engine for a field of the given size. The seed fixes the
// spawn sequence; pass a clock-derived value for normal play.
func New(width, height int, seed int64, callbacks Callbacks) *Engine {
	e := &Engine{
		rng:       rand.New(rand.NewSource(seed)),
		callbacks: callbacks,
		width:     float64(width),
		height:    float64(height),
	}
	e.buildWorld()
	return e
}

// ECS exposes the world for renderers and tests.
func (e *Engine) ECS() *ecs.ECS {
	return e.ecs
}

// Running reports whether Step currently advances the simulation.
func (e *Engine) Running() bool {
	return e.running
}

// Start begins a fresh session: a new world with full lives, zero score and
// the pointer centered. Safe to call again after a session ends.
func (e *Engine) Start() {
	e.buildWorld()
	e.running = true
}

// Stop freezes the simulation without discarding the world.
func (e *Engine) Stop() {
	e.running = false
}

// SetPointer feeds the latest raw pointer sample. Visible=false marks a
// tracking loss; smoothing restarts from the next visible sample.
func (e *Engine) SetPointer(x, y float64, visible bool) {
	pointerEntry, ok := components.Pointer.First(e.ecs.World)
	if !ok {
		return
	}
	ptr := components.Pointer.Get(pointerEntry)
	ptr.RawX = x
	ptr.RawY = y
	ptr.Visible = visible
}

// Step advances the simulation by dt nominal frames (dt=1 is one 60Hz frame).
// Out-of-range dt values are clamped, never split. Queued notices drain into
// the callbacks before Step returns.
func (e *Engine) Step(dt float64) {
	if !e.running {
		return
	}
	if dt <= 0 {
		return
	}
	if dt > cfg.Engine.MaxStepScale {
		dt = cfg.Engine.MaxStepScale
	}

	clockEntry, ok := components.Clock.First(e.ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)
	clock.DT = dt
	clock.NowMs += dt * cfg.NominalFrameMs
	clock.Frame++

	e.ecs.Update()
	events.ProcessAll(e.ecs.World)

	if sessionEntry, ok := components.Session.First(e.ecs.World); ok {
		if components.Session.Get(sessionEntry).Over {
			e.running = false
		}
	}
}

// Resize changes the field dimensions mid-session. The broad-phase space is
// rebuilt and every live collision object re-added.
func (e *Engine) Resize(width, height int) {
	e.width = float64(width)
	e.height = float64(height)

	if fieldEntry, ok := components.Field.First(e.ecs.World); ok {
		field := components.Field.Get(fieldEntry)
		field.Width = e.width
		field.Height = e.height
	}

	spaceEntry, ok := components.Space.First(e.ecs.World)
	if !ok {
		return
	}
	fresh := factory.NewSpace(width, height)
	components.Object.Each(e.ecs.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj != nil && obj.Object != nil {
			fresh.Add(obj.Object)
		}
	})
	components.Space.Set(spaceEntry, fresh)
}

func (e *Engine) buildWorld() {
	world := donburi.NewWorld()
	es := ecs.NewECS(world)

	es.AddSystem(systems.UpdatePointer)
	es.AddSystem(systems.UpdateSpawner)
	es.AddSystem(systems.UpdateTargets)
	es.AddSystem(systems.UpdateSlices)
	es.AddSystem(systems.UpdateParticles)
	es.AddSystem(systems.UpdateSplashes)

	factory.CreateClock(es)
	factory.CreateField(es, e.width, e.height)
	factory.CreateSession(es)
	factory.CreateSpawner(es, e.rng)
	spaceEntry := factory.CreateSpace(es, int(e.width), int(e.height))
	space := components.Space.Get(spaceEntry)
	factory.CreatePointer(es, space, e.width, e.height)

	events.Notices.Subscribe(world, e.dispatch)

	e.ecs = es
}

func (e *Engine) dispatch(_ donburi.World, n events.Notice) {
	switch n.Kind {
	case events.NoticeScore:
		if e.callbacks.ScoreChanged != nil {
			e.callbacks.ScoreChanged(n.Score)
		}
	case events.NoticeLives:
		if e.callbacks.LivesChanged != nil {
			e.callbacks.LivesChanged(n.Lives)
		}
	case events.NoticeStreak:
		if e.callbacks.StreakChanged != nil {
			e.callbacks.StreakChanged(n.Streak, n.Multiplier)
		}
	case events.NoticeFeedback:
		if e.callbacks.Feedback != nil {
			e.callbacks.Feedback(n.X, n.Y, n.Text)
		}
	case events.NoticeEnded:
		if e.callbacks.SessionEnded != nil {
			e.callbacks.SessionEnded(n.Score)
		}
	}
}
