package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-splash/internal/core"
)

// A character cell covers 8x16 logical pixels, so the 640x240 scene is
// 80x15 cells.
const (
	cellW = 8
	cellH = 16
)

// Ground pattern tuning.
const (
	groundPatternPx    = 64 // Distance between ground tick marks, px
	groundPatternCells = groundPatternPx / cellW
	dirtCadenceCells   = 11
	legSwapTicks       = 6 // Running ticks between leg glyph swaps
)

// Visual characters for rendering
const (
	PlayerBody = '█'
	PlayerHead = '◆'
	LegLeft    = '╱'
	LegRight   = '╲'
	LegTuckL   = '▞'
	LegTuckR   = '▚'
	CactusChar = '▓'
	GroundChar = '═'
	GroundTick = '╪'
	DirtChar   = '·'
	BirdBody   = '●'
	WingA      = '╱'
	WingB      = '╲'
)

func toCol(x float64) int { return int(math.Floor(x / cellW)) }
func toRow(y float64) int { return int(math.Floor(y / cellH)) }

// Render draws the current frame into the screen buffer. After a collision
// the inputs to this function stop changing, so the crash frame stays on
// screen under the game-over banner.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawGround(dst)

	for _, o := range g.spawner.Obstacles() {
		if o.Kind == KindAir {
			g.drawBird(dst, o)
		} else {
			g.drawCactus(dst, o)
		}
	}

	g.drawPlayer(dst)

	// HUD
	if g.state != StateIdle {
		dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", g.score), g.theme.Score)
	}

	// Overlays go last so nothing draws over them
	switch g.state {
	case StateIdle:
		g.drawCenteredMessage(dst, "WARM-UP RUNNER", "Press Space or ↑ to start")
	case StateGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Jump to retry", g.score))
	}
}

// drawGround renders the ground line with its scrolling tick pattern and a
// sparse belt of dirt below it. The pattern phase derives from the total
// distance travelled, so the ground stands still whenever the run does.
func (g *Game) drawGround(dst *core.Screen) {
	groundRow := GroundY / cellH
	travelled := int(float64(g.frame) * ScrollSpeed) // Total scroll distance, px
	phase := (travelled % groundPatternPx) / cellW   // Pattern shift, cells

	for c := 0; c < dst.Width(); c++ {
		ch := GroundChar
		if (c+phase)%groundPatternCells == 0 {
			ch = GroundTick
		}
		dst.SetColor(c, groundRow, ch, g.theme.Ground)
	}

	dirtShift := travelled / cellW
	for c := 0; c < dst.Width(); c++ {
		if (c+dirtShift)%dirtCadenceCells == 0 {
			dst.SetColor(c, groundRow+1, DirtChar, g.theme.Ground)
		}
	}
}

// drawCactus renders a ground obstacle rising from the ground line.
func (g *Game) drawCactus(dst *core.Screen, o Obstacle) {
	r := o.Rect()
	c0, c1 := toCol(r.X), toCol(r.Right()-1)
	r0, r1 := toRow(r.Y), GroundY/cellH-1
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			dst.SetColor(col, row, CactusChar, g.theme.ObstacleGround)
		}
	}
}

// drawBird renders an air obstacle with flapping wings and a slight bob.
// Both are display effects keyed off the tick counter; the collision box
// never moves with them.
func (g *Game) drawBird(dst *core.Screen, o Obstacle) {
	r := o.Rect()
	flap := math.Sin(float64(g.frame) * 0.25)
	row := toRow(r.Y + r.H/2 + flap*5)
	col := toCol(r.X)

	left, right := WingA, WingB
	if flap < 0 {
		left, right = WingB, WingA
	}
	dst.SetColor(col, row, left, g.theme.ObstacleAir)
	dst.SetColor(col+1, row, BirdBody, g.theme.ObstacleAir)
	dst.SetColor(col+2, row, right, g.theme.ObstacleAir)
}

// drawPlayer renders the 4x2 runner sprite with animated legs.
func (g *Game) drawPlayer(dst *core.Screen) {
	r := g.player.Rect()
	col, row := toCol(r.X), toRow(r.Y)

	// Body and head
	dst.SetColor(col+1, row, PlayerBody, g.theme.Player)
	dst.SetColor(col+2, row, PlayerBody, g.theme.Player)
	dst.SetColor(col+3, row, PlayerHead, g.theme.Player)

	// Legs: tucked in the air, striding on the ground
	switch {
	case g.player.Airborne:
		dst.SetColor(col, row+1, LegTuckL, g.theme.Player)
		dst.SetColor(col+1, row+1, PlayerBody, g.theme.Player)
		dst.SetColor(col+2, row+1, PlayerBody, g.theme.Player)
		dst.SetColor(col+3, row+1, LegTuckR, g.theme.Player)
	case (g.frame/legSwapTicks)%2 == 0:
		dst.SetColor(col, row+1, LegLeft, g.theme.Player)
		dst.SetColor(col+1, row+1, PlayerBody, g.theme.Player)
		dst.SetColor(col+2, row+1, PlayerBody, g.theme.Player)
		dst.SetColor(col+3, row+1, LegRight, g.theme.Player)
	default:
		dst.SetColor(col, row+1, LegRight, g.theme.Player)
		dst.SetColor(col+1, row+1, PlayerBody, g.theme.Player)
		dst.SetColor(col+2, row+1, PlayerBody, g.theme.Player)
		dst.SetColor(col+3, row+1, LegLeft, g.theme.Player)
	}
}

// drawCenteredMessage draws a message box in the center of the scene.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBoxColor(core.NewRect(boxX, boxY, boxW, boxH), g.theme.OverlayTitle)

	dst.DrawTextColor(boxX+(boxW-titleLen)/2, boxY+1, title, g.theme.OverlayTitle)
	dst.DrawTextColor(boxX+(boxW-subLen)/2, boxY+3, subtitle, g.theme.OverlayText)
}
