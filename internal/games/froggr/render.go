package froggr

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-froggr/internal/core"
)

// Each field cell is drawn as cellChars characters on one screen row.
const (
	cellChars = 4
	hudRows   = 2 // HUD line plus the top border
)

// fieldSize returns the field area in screen cells.
func (g *Game) fieldSize() (w, h int) {
	grid := g.engine.Grid()
	return grid.Cols() * cellChars, grid.Rows()
}

func (g *Game) minSize() (w, h int) {
	fw, fh := g.fieldSize()
	return fw + 2, fh + hudRows + 2 // Side borders; bottom border and message line
}

func (g *Game) checkSize() {
	minW, minH := g.minSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Render draws the field, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.screenW, g.screenH = dst.Width(), dst.Height()
		g.checkSize()
	}

	if g.tooSmall {
		minW, minH := g.minSize()
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	fw, fh := g.fieldSize()
	ox := (dst.Width() - fw) / 2
	oy := hudRows

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(ox-1, oy-1, fw+2, fh+2))
	g.renderLanes(dst, ox, oy)
	g.renderZones(dst, ox, oy)
	g.renderObjects(dst, ox, oy, g.engine.Platforms())
	g.renderObjects(dst, ox, oy, g.engine.Vehicles())
	g.renderActor(dst, ox, oy)
	g.renderLives(dst, ox, oy)

	if g.messageTicks > 0 && g.message != "" {
		dst.DrawTextCentered(oy+fh+1, g.message)
	}
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := g.engine.Session()
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score))
	dst.DrawTextCentered(0, g.title)

	goals := fmt.Sprintf("Goals: %d/%d", s.GoalsConsumed, len(g.engine.WinZones()))
	dst.DrawText(dst.Width()-len(goals)-1, 0, goals)
}

// laneStyles is the background of each lane role.
var laneStyles = map[Role]struct {
	fill  rune
	color core.Color
}{
	RoleGoal:  {'▒', core.ColorGreen},
	RoleWater: {'~', core.ColorBlue},
	RoleGrass: {'░', core.ColorGreen},
	RoleRoad:  {' ', core.ColorDefault},
	RoleStart: {'░', core.ColorGreen},
}

func (g *Game) renderLanes(dst *core.Screen, ox, oy int) {
	fw, _ := g.fieldSize()
	for _, l := range g.engine.Lanes() {
		style := laneStyles[l.Role]
		row := oy + l.Index
		dst.FillRect(core.NewRect(ox, row, fw, 1), style.fill, style.color)

		if l.Role == RoleRoad {
			for x := ox; x < ox+fw; x += cellChars {
				dst.SetColored(x, row, '·', core.ColorGray)
			}
		}
	}
}

func (g *Game) renderZones(dst *core.Screen, ox, oy int) {
	cell := g.engine.Grid().Cell
	for _, z := range g.engine.WinZones() {
		x := ox + z.X*cellChars/cell
		if z.Consumed {
			dst.DrawTextColored(x, oy, "[@@]", core.ColorBrightGreen)
		} else {
			dst.DrawTextColored(x, oy, "[  ]", core.ColorCyan)
		}
	}
}

func (g *Game) renderObjects(dst *core.Screen, ox, oy int, objs []Object) {
	fw, _ := g.fieldSize()
	cell := g.engine.Grid().Cell
	for _, o := range objs {
		if o.Removed {
			continue
		}
		x0 := core.Clamp(o.X*cellChars/cell, 0, fw)
		x1 := core.Clamp((o.X+o.Length*cell)*cellChars/cell, 0, fw)
		row := oy + o.Y/cell
		for x := x0; x < x1; x++ {
			dst.SetColored(ox+x, row, o.Kind.Glyph(), o.Kind.Color())
		}
	}
}

func (g *Game) renderActor(dst *core.Screen, ox, oy int) {
	a := g.engine.Actor()
	cell := g.engine.Grid().Cell
	x := ox + g.engine.ActorDrawX()*cellChars/cell
	y := oy + a.Y/cell

	if a.Alive {
		dst.DrawTextColored(x, y, "<@@>", core.ColorBrightGreen)
		return
	}
	dst.DrawTextColored(x, y, "xXXx", core.ColorBrightRed)
}

// renderLives draws the remaining lives on the row under the lanes.
func (g *Game) renderLives(dst *core.Screen, ox, oy int) {
	a := g.engine.Actor()
	lanes := len(g.engine.Lanes())
	if lanes >= g.engine.Grid().Rows() {
		return
	}
	dst.DrawTextColored(ox+1, oy+lanes, strings.Repeat("@ ", a.Lives), core.ColorGreen)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.engine.Status() {
	case StatusPaused:
		g.drawCenteredBox(dst, "PAUSED", "P resume  |  Q quit")

	case StatusLost:
		o := g.engine.Outcome()
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Final Score: %d", o.FinalScore),
			"R restart  |  B menu  |  Q quit")

	case StatusWon:
		o := g.engine.Outcome()
		g.drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d", o.FinalScore),
			"R restart  |  B menu  |  Q quit")
	}
}

// drawCenteredBox draws a centered message box with a title and text lines.
func (g *Game) drawCenteredBox(dst *core.Screen, title string, lines ...string) {
	boxW := len(title)
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len(l))/2, boxY+3+i, l)
	}
}
