package systems

import (
	"image/color"
	"math"

	"github.com/LeulTew/Kitefew/components"
	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/LeulTew/Kitefew/gmath"
	"github.com/LeulTew/Kitefew/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

// DrawTargets renders every active target as a filled circle with a radial
// rotation cue.
func DrawTargets(e *ecs.ECS, screen *ebiten.Image) {
	tags.Target.Each(e.World, func(entry *donburi.Entry) {
		t := components.Target.Get(entry)
		if !t.Active {
			return
		}

		hue := t.Kind.Hue()
		cx, cy := float32(t.X), float32(t.Y)
		r := float32(t.Radius)

		vector.FillCircle(screen, cx, cy, r, hue, true)

		// Rotation cue: a spoke from the center to the rim.
		ex := float32(t.X + math.Cos(t.Rotation)*t.Radius)
		ey := float32(t.Y + math.Sin(t.Rotation)*t.Radius)
		vector.StrokeLine(screen, cx, cy, ex, ey, 2, cfg.White, true)

		if t.Kind == components.KindHazard {
			vector.StrokeCircle(screen, cx, cy, r, 2, cfg.Red, true)
		}
	})
}

// DrawTrail renders the smoothed pointer path as a polyline, newest segments
// brightest.
func DrawTrail(e *ecs.ECS, screen *ebiten.Image) {
	pointerEntry, ok := components.Pointer.First(e.World)
	if !ok {
		return
	}
	ptr := components.Pointer.Get(pointerEntry)
	trail := components.Trail.Get(pointerEntry)

	n := len(trail.Points)
	for i := 0; i+1 < n; i++ {
		a := trail.Points[i]
		b := trail.Points[i+1]
		fade := float64(i+1) / float64(n)
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y),
			float32(b.X), float32(b.Y),
			2, scaleAlpha(cfg.TrailBlue, fade), true)
	}

	if ptr.Visible {
		vector.FillCircle(screen, float32(ptr.X), float32(ptr.Y), 3, cfg.White, true)
	}
}

// DrawParticles renders slice debris and hazard sparks, fading with life.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		size := float32(3)
		if p.Spark {
			size = 2
		}
		vector.FillCircle(screen,
			float32(p.X), float32(p.Y), size,
			scaleAlpha(p.Hue, p.Life), true)
	})
}

// DrawSplashes renders feedback text rising from its spawn point and fading
// out.
func DrawSplashes(e *ecs.ECS, screen *ebiten.Image) {
	tags.Splash.Each(e.World, func(entry *donburi.Entry) {
		s := components.Splash.Get(entry)
		rise, _ := s.Rise.Update(0)
		fade, _ := s.Fade.Update(0)

		x := int(s.X) - len(s.Text)*basicfont.Face7x13.Advance/2
		y := int(s.Y - float64(rise))
		text.Draw(screen, s.Text, basicfont.Face7x13, x, y, scaleAlpha(cfg.White, float64(fade)))
	})
}

// scaleAlpha scales a premultiplied color by t in [0, 1].
func scaleAlpha(c color.RGBA, t float64) color.RGBA {
	t = gmath.Clamp(t, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * t),
		G: uint8(float64(c.G) * t),
		B: uint8(float64(c.B) * t),
		A: uint8(float64(c.A) * t),
	}
}
