package scenes

import (
	"image/color"
	"sync"
	"time"

	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/LeulTew/Kitefew/engine"
	"github.com/LeulTew/Kitefew/input"
	"github.com/LeulTew/Kitefew/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameScene runs a single arcade session driven by the mouse. When the
// session ends it waits for a click and starts a new one.
type GameScene struct {
	engine *engine.Engine
	source input.Source
	once   sync.Once
}

func NewGameScene() *GameScene {
	return &GameScene{}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)

	sample := gs.source.Poll()
	gs.engine.SetPointer(sample.X, sample.Y, sample.Visible)

	// One ebiten tick is one nominal frame.
	gs.engine.Step(1)

	if !gs.engine.Running() && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		gs.engine.Start()
		gs.attachRenderers()
	}
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if gs.engine == nil {
		return
	}
	gs.engine.ECS().Draw(screen)
}

func (gs *GameScene) configure() {
	gs.source = input.NewMouseSource(cfg.C.Width, cfg.C.Height)
	gs.engine = engine.New(cfg.C.Width, cfg.C.Height, time.Now().UnixNano(), engine.Callbacks{})
	gs.engine.Start()
	gs.attachRenderers()
}

// attachRenderers registers the draw passes on the engine's current world.
// Start rebuilds the world, so this runs again after every restart.
func (gs *GameScene) attachRenderers() {
	e := gs.engine.ECS()
	e.AddRenderer(cfg.Default, systems.DrawTargets)
	e.AddRenderer(cfg.Default, systems.DrawParticles)
	e.AddRenderer(cfg.Default, systems.DrawTrail)
	e.AddRenderer(cfg.Default, systems.DrawSplashes)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawGameOver)
}
