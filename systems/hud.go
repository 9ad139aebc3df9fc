package systems

import (
	"fmt"

	"github.com/LeulTew/Kitefew/components"
	cfg "github.com/LeulTew/Kitefew/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin    = 10
	hudLineGap   = 14
	heartRadius  = 5
	heartSpacing = 14
)

// DrawHUD renders the score, remaining lives and the streak multiplier in the
// top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	text.Draw(screen, fmt.Sprintf("SCORE %d", session.Score),
		basicfont.Face7x13, hudMargin, hudMargin+basicfont.Face7x13.Ascent, cfg.White)

	heartsY := float32(hudMargin + hudLineGap + heartRadius)
	for i := 0; i < session.Lives; i++ {
		vector.FillCircle(screen,
			float32(hudMargin+heartRadius+i*heartSpacing), heartsY,
			heartRadius, cfg.HeartRed, true)
	}

	if session.Multiplier > 1 || session.Streak > 0 {
		text.Draw(screen, fmt.Sprintf("x%d  STREAK %d", session.Multiplier, session.Streak),
			basicfont.Face7x13, hudMargin, hudMargin+2*hudLineGap+basicfont.Face7x13.Ascent, cfg.Yellow)
	}
}

// DrawGameOver dims the field and shows the final score once the session has
// ended.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	if !session.Over {
		return
	}

	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.BlackOverlay, false)

	title := "GAME OVER"
	titleX := (w - len(title)*basicfont.Face7x13.Advance) / 2
	text.Draw(screen, title, basicfont.Face7x13, titleX, h/2-hudLineGap, cfg.Red)

	final := fmt.Sprintf("FINAL SCORE %d", session.Score)
	finalX := (w - len(final)*basicfont.Face7x13.Advance) / 2
	text.Draw(screen, final, basicfont.Face7x13, finalX, h/2+hudLineGap, cfg.White)

	hint := "CLICK TO RESTART"
	hintX := (w - len(hint)*basicfont.Face7x13.Advance) / 2
	text.Draw(screen, hint, basicfont.Face7x13, hintX, h/2+3*hudLineGap, cfg.Yellow)
}
