package systems

import (
	"github.com/LeulTew/Kitefew/components"
	"github.com/LeulTew/Kitefew/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSplashes advances the rise and fade tweens of feedback text and
// removes finished entries.
func UpdateSplashes(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	dt := float32(components.Clock.Get(clockEntry).DT)

	var done []*donburi.Entry

	tags.Splash.Each(e.World, func(entry *donburi.Entry) {
		s := components.Splash.Get(entry)
		_, riseDone := s.Rise.Update(dt)
		_, fadeDone := s.Fade.Update(dt)
		if riseDone && fadeDone {
			s.Done = true
			done = append(done, entry)
		}
	})

	for _, entry := range done {
		e.World.Remove(entry.Entity())
	}
}
