package systems

import (
	"math/rand"

	"github.com/LeulTew/Kitefew/components"
	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/LeulTew/Kitefew/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testFieldW = 640.0
	testFieldH = 360.0
)

// newTestECS builds a world with all singletons but no registered systems,
// so tests invoke systems directly with full control over ordering.
func newTestECS(seed int64) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateClock(e)
	factory.CreateField(e, testFieldW, testFieldH)
	factory.CreateSession(e)
	factory.CreateSpawner(e, rand.New(rand.NewSource(seed)))
	spaceEntry := factory.CreateSpace(e, int(testFieldW), int(testFieldH))
	factory.CreatePointer(e, components.Space.Get(spaceEntry), testFieldW, testFieldH)
	return e
}

// stepClock advances the simulation clock by dt nominal frames.
func stepClock(e *ecs.ECS, dt float64) {
	clockEntry, _ := components.Clock.First(e.World)
	clock := components.Clock.Get(clockEntry)
	clock.DT = dt
	clock.NowMs += dt * cfg.NominalFrameMs
	clock.Frame++
}

func testSession(e *ecs.ECS) *components.SessionData {
	entry, _ := components.Session.First(e.World)
	return components.Session.Get(entry)
}

func testPointer(e *ecs.ECS) (*components.PointerData, *components.TrailData) {
	entry, _ := components.Pointer.First(e.World)
	return components.Pointer.Get(entry), components.Trail.Get(entry)
}

func countTargets(e *ecs.ECS) int {
	n := 0
	components.Target.Each(e.World, func(entry *donburi.Entry) {
		n++
	})
	return n
}
