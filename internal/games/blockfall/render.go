package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	cellW    = 2 // Screen columns per board cell
	wellW    = BoardWidth*cellW + 2
	wellH    = BoardHeight + 2
	panelW   = 16
	previewW = 4*cellW + 2
	previewH = 4 + 2
)

// Render draws the well, the falling piece, the next-piece preview and
// the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.engine.Snapshot()
	wellX := (g.runtime.ScreenW - wellW - 2 - panelW) / 2
	panelX := wellX + wellW + 2

	dst.DrawBox(core.NewRect(wellX, 0, wellW, wellH), core.ColorGray)
	g.renderBoard(dst, &snap, wellX+1, 1)
	g.renderPanel(dst, &snap, panelX, 0)
	g.renderOverlay(dst, &snap, wellX, wellH/2)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.runtime.ScreenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

func (g *Game) renderBoard(dst *core.Screen, snap *Snapshot, ox, oy int) {
	for y := range BoardHeight {
		for x := range BoardWidth {
			sx := ox + x*cellW
			if k := snap.Board[y][x]; k != KindNone {
				drawCell(dst, sx, oy+y, '█', k.Color())
				continue
			}
			dst.SetColor(sx+1, oy+y, '·', core.ColorGray)
		}
	}

	if snap.Current == nil {
		return
	}
	if gy, ok := g.engine.GhostY(); ok && gy != snap.Current.Y {
		ghost := snap.Current.At(snap.Current.X, gy, snap.Current.Orientation)
		for c := range ghost.Cells() {
			drawCell(dst, ox+c.X*cellW, oy+c.Y, '░', core.ColorGray)
		}
	}
	for c := range snap.Current.Cells() {
		drawCell(dst, ox+c.X*cellW, oy+c.Y, '█', snap.Current.Color())
	}
}

func (g *Game) renderPanel(dst *core.Screen, snap *Snapshot, px, py int) {
	dst.DrawTextColor(px, py, "BLOCKFALL", core.ColorBrightWhite)

	dst.DrawText(px, py+2, "Next")
	dst.DrawBox(core.NewRect(px, py+3, previewW, previewH), core.ColorGray)
	if snap.Next != nil {
		k := snap.Next.Kind
		dx, dy := previewOffset(k)
		for c := range (Piece{Kind: k}).Cells() {
			drawCell(dst, px+1+c.X*cellW+dx, py+4+c.Y+dy, '█', k.Color())
		}
	}

	hud := py + 3 + previewH + 1
	dst.DrawText(px, hud, fmt.Sprintf("Score %d", snap.Score))
	dst.DrawText(px, hud+1, fmt.Sprintf("Lines %d", snap.Rows))
	dst.DrawText(px, hud+2, fmt.Sprintf("Level %d", snap.Level))
	dst.DrawText(px, hud+3, fmt.Sprintf("Speed %dms", snap.Delay.Milliseconds()))
}

// previewOffset converts the half-cell preview shifts of k into screen
// columns and rows. A cell is cellW columns wide and one row tall.
func previewOffset(k Kind) (cols, rows int) {
	dx, dy := k.PreviewShift(0)
	return dx * cellW / 2, dy / 2
}

func (g *Game) renderOverlay(dst *core.Screen, snap *Snapshot, wellX, y int) {
	center := func(row int, text string, c core.Color) {
		x := wellX + (wellW-len([]rune(text)))/2
		dst.DrawTextColor(x, row, text, c)
	}

	switch {
	case snap.Phase == PhasePaused:
		center(y, " PAUSED ", core.ColorYellow)
		center(y+1, " Enter to continue ", core.ColorDefault)
	case snap.Phase == PhaseCancelled && snap.ToppedOut:
		center(y, " GAME OVER ", core.ColorRed)
		center(y+1, fmt.Sprintf(" Score %d ", snap.Score), core.ColorDefault)
		center(y+2, " Enter to start ", core.ColorDefault)
	case snap.Phase == PhaseCancelled:
		center(y, " Press Enter ", core.ColorDefault)
		center(y+1, " to start ", core.ColorDefault)
	}
}

func drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	dst.SetColor(x, y, r, c)
	dst.SetColor(x+1, y, r, c)
}
