package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/spawn"
)

// Visual characters for rendering
const (
	PlayerChar   = '▲'
	CrashChar    = '✖'
	ObstacleChar = '█'
	CoinChar     = '●'
	BigCoinChar  = '◆'
	RoadEdgeChar = '│'
	LaneDashChar = '┊'
)

const (
	unitsPerRow   = 2.0 // World units covered by one screen row
	colsPerUnit   = 3.0 // Shrunk to fit narrow screens
	dashLength    = 4.0 // World units per lane dash period
	hudRows       = 1
	minPlayfieldH = 3
)

// viewport maps road-local coordinates to screen cells. The camera sits on the
// bottom row, looking forward up the screen.
type viewport struct {
	w, h        int
	centerCol   float64
	viewLateral float64
	viewAlong   float64
	colScale    float64
}

func (g *Game) viewport(dst *core.Screen) viewport {
	lateral, along := g.frame.Local(g.camera.View())
	scale := colsPerUnit
	if fit := float64(dst.Width()-2) / g.frame.Width; fit < scale {
		scale = math.Max(fit, 0.5)
	}
	return viewport{
		w:           dst.Width(),
		h:           dst.Height(),
		centerCol:   float64(dst.Width()) / 2,
		viewLateral: lateral,
		viewAlong:   along,
		colScale:    scale,
	}
}

func (v viewport) col(lateral float64) int {
	return int(math.Round(v.centerCol + (lateral-v.viewLateral)*v.colScale))
}

func (v viewport) row(along float64) int {
	return v.h - 1 - int(math.Round((along-v.viewAlong)/unitsPerRow))
}

func (v viewport) visible(row int) bool {
	return row >= hudRows && row < v.h
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.player == nil || dst.Height() < hudRows+minPlayfieldH {
		return
	}

	v := g.viewport(dst)
	g.drawRoad(dst, v)
	for _, e := range g.world.Entities() {
		g.drawEntity(dst, v, e)
	}
	g.drawPlayer(dst, v)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		title := "GAME OVER"
		if !g.crashed {
			title = "STOPPED"
		}
		g.drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  Press R to restart", g.score.Score()))
	}
}

// drawRoad renders the road edges and dashed lane separators.
func (g *Game) drawRoad(dst *core.Screen, v viewport) {
	half := g.frame.Width / 2
	playH := v.h - hudRows
	dst.DrawVLine(v.col(-half)-1, hudRows, playH, RoadEdgeChar, core.ColorRoad)
	dst.DrawVLine(v.col(half)+1, hudRows, playH, RoadEdgeChar, core.ColorRoad)

	lanes := g.cfg.Road.Lanes
	for i := 1; i < lanes; i++ {
		left := spawn.LaneOffset(i-1, lanes, g.cfg.Road.LaneWidth, g.frame.Width)
		right := spawn.LaneOffset(i, lanes, g.cfg.Road.LaneWidth, g.frame.Width)
		x := v.col((left + right) / 2)
		for y := hudRows; y < v.h; y++ {
			along := v.viewAlong + float64(v.h-1-y)*unitsPerRow
			if math.Mod(math.Floor(along/(dashLength/2)), 2) == 0 {
				dst.SetColored(x, y, LaneDashChar, core.ColorLane)
			}
		}
	}
}

// drawEntity renders a single obstacle or coin.
func (g *Game) drawEntity(dst *core.Screen, v viewport, e Entity) {
	switch e.Kind {
	case spawn.FamilyObstacle:
		x0 := v.col(e.Lateral - e.Width/2)
		x1 := v.col(e.Lateral + e.Width/2)
		y0 := v.row(e.Along + e.Depth/2)
		y1 := v.row(e.Along - e.Depth/2)
		for y := y0; y <= y1; y++ {
			if !v.visible(y) {
				continue
			}
			for x := x0; x <= x1; x++ {
				dst.SetColored(x, y, ObstacleChar, core.ColorObstacle)
			}
		}
	default:
		y := v.row(e.Along)
		if !v.visible(y) {
			return
		}
		ch, color := CoinChar, core.ColorCoin
		if e.Value > 1 {
			ch, color = BigCoinChar, core.ColorOrange
		}
		dst.SetColored(v.col(e.Lateral), y, ch, color)
	}
}

// drawPlayer renders the player at its road position.
func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	y := v.row(g.player.Along())
	if !v.visible(y) {
		y = v.h - 1
	}
	ch, color := PlayerChar, core.ColorPlayer
	if g.crashed {
		ch, color = CrashChar, core.ColorObstacle
	}
	dst.SetColored(v.col(g.player.Lateral()), y, ch, color)
}

// drawHUD renders the score line.
func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" Score: %d  Coins: %d ", g.score.Score(), int(g.score.CoinScore()))
	dst.DrawTextColored(1, 0, left, core.ColorHUD)

	right := fmt.Sprintf(" Spd %.1f  Phase %d  Hi %d ", g.player.Speed(), g.director.Phase(), g.score.HighScore())
	x := dst.Width() - len([]rune(right)) - 1
	if x > len(left)+1 {
		dst.DrawTextColored(x, 0, right, core.ColorHUD)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorHUD)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
