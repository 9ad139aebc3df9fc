package factory

import (
	"github.com/LeulTew/Kitefew/archetypes"
	"github.com/LeulTew/Kitefew/components"
	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSplash spawns rising, fading feedback text at a field position.
func CreateSplash(e *ecs.ECS, x, y float64, text string) *donburi.Entry {
	splash := archetypes.Splash.Spawn(e)
	dur := float32(cfg.Splash.DurationFrames)
	components.Splash.SetValue(splash, components.SplashData{
		Text: text,
		X:    x,
		Y:    y,
		Rise: gween.New(0, float32(cfg.Splash.RisePx), dur, ease.OutQuad),
		Fade: gween.New(1, 0, dur, ease.InQuad),
	})
	return splash
}
