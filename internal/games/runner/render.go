package runner

import (
	"fmt"

	"github.com/vovakirdan/gesture-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerBody  = '█'
	PlayerHead  = '◆'
	ObstacleCh  = '▓'
	GemCh       = '◈'
	DecorCh     = '·'
	SeamCh      = '─'
	WallCh      = '│'
	perspective = 0.65 // how much lanes converge toward the horizon
)

// Render draws the current state as a pseudo-3D corridor: the horizon
// near the top, the player near the bottom, entities shrinking toward
// their vanishing point as distance grows.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	horizonRow := 2
	playerRow := h - 4
	if playerRow <= horizonRow {
		playerRow = horizonRow + 1
	}

	viewDepth := g.cfg.Terrain.Ahead
	snap := g.Snapshot()

	// project maps a distance-ahead and world X to screen coordinates.
	project := func(dist, worldX float64) (int, int, bool) {
		if dist < 0 || dist > viewDepth {
			return 0, 0, false
		}
		t := dist / viewDepth
		row := playerRow - int(float64(playerRow-horizonRow)*t)
		scale := (1 - t*perspective) * float64(w) / (4 * g.cfg.Player.LaneOffset)
		col := w/2 + int(worldX*scale)
		return col, row, true
	}

	// Far to near so close entities overdraw distant ones.

	for _, seg := range snap.Terrain {
		if col, row, ok := project(seg.Z-snap.Player.Z, 0); ok {
			half := w / 2
			t := (seg.Z - snap.Player.Z) / viewDepth
			span := int(float64(half) * (1 - t*perspective))
			dst.DrawHLine(col-span/2, row, span, SeamCh, core.ColorGray)
		}
	}

	for _, d := range snap.Decorations {
		wallX := 2 * g.cfg.Player.LaneOffset * float64(d.Side)
		if col, row, ok := project(d.Z-snap.Player.Z, wallX); ok {
			dst.SetCell(col, row, DecorCh, core.ColorGray)
			dst.SetCell(col, row-1, WallCh, core.ColorGray)
		}
	}

	for _, o := range snap.Obstacles {
		if col, row, ok := project(o.Z-snap.Player.Z, o.Lane.Offset(g.cfg.Player.LaneOffset)); ok {
			dst.SetCell(col-1, row, ObstacleCh, core.ColorRed)
			dst.SetCell(col, row, ObstacleCh, core.ColorRed)
			dst.SetCell(col+1, row, ObstacleCh, core.ColorRed)
			dst.SetCell(col, row-1, ObstacleCh, core.ColorRed)
		}
	}

	for _, gem := range snap.Gems {
		if col, row, ok := project(gem.Z-snap.Player.Z, gem.Lane.Offset(g.cfg.Player.LaneOffset)); ok {
			dst.SetCell(col, row, GemCh, core.ColorYellow)
		}
	}

	g.drawPlayer(dst, playerRow, w, snap.Player)
	g.drawHUD(dst, snap)

	if g.clk.Paused() {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

func (g *Game) drawPlayer(dst *core.Screen, playerRow, w int, p PlayerView) {
	scale := float64(w) / (4 * g.cfg.Player.LaneOffset)
	col := w/2 + int(p.X*scale)
	row := playerRow - int(p.Y)

	color := core.ColorCyan
	if p.Invulnerable {
		color = core.ColorYellow
	}

	dst.SetCell(col, row-1, PlayerHead, color)
	dst.SetCell(col-1, row, PlayerBody, color)
	dst.SetCell(col, row, PlayerBody, color)
	dst.SetCell(col+1, row, PlayerBody, color)
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorWhite)
	dst.DrawText(2, 1, fmt.Sprintf(" Gems: %d ", g.gems), core.ColorYellow)

	spd := fmt.Sprintf(" Spd: %.2f ", g.tuning.PlayerSpeed)
	dst.DrawText(dst.Width()-len(spd)-2, 0, spd, core.ColorWhite)

	if fps := g.clk.CurrentFPS(); fps > 0 {
		text := fmt.Sprintf(" %2.0f fps ", fps)
		dst.DrawText(dst.Width()-len(text)-2, 1, text, core.ColorGray)
	}

	if snap.Player.Invulnerable {
		dst.DrawTextCentered(0, " SHIELDED ", core.ColorYellow)
	}
}

func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorGray)
}
