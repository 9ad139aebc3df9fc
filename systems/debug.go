package systems

import (
	"image/color"

	"github.com/LeulTew/Kitefew/components"
	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/LeulTew/Kitefew/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the padded hit radii and the broad-phase boxes when the
// overlay is enabled.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitRadii {
		return
	}

	tags.Target.Each(e.World, func(entry *donburi.Entry) {
		t := components.Target.Get(entry)
		if !t.Active {
			return
		}
		vector.StrokeCircle(screen,
			float32(t.X), float32(t.Y),
			float32(t.Radius+cfg.Collision.HitboxPadding),
			1, color.RGBA{0, 255, 255, 255}, false)

		obj := components.Object.Get(entry)
		if obj != nil && obj.Object != nil {
			vector.StrokeRect(screen,
				float32(obj.X), float32(obj.Y),
				float32(obj.W), float32(obj.H),
				1, color.RGBA{255, 0, 255, 255}, false)
		}
	})

	if pointerEntry, ok := components.Pointer.First(e.World); ok {
		if probe := components.Object.Get(pointerEntry); probe != nil && probe.Object != nil {
			vector.StrokeRect(screen,
				float32(probe.X), float32(probe.Y),
				float32(probe.W), float32(probe.H),
				1, color.RGBA{0, 255, 0, 255}, false)
		}
	}
}
