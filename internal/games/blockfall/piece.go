package blockfall

import (
	"iter"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Piece is a falling or placed piece. It is an immutable value:
// every move produces a new Piece and color is derived from Kind.
type Piece struct {
	Kind        Kind
	X, Y        int // Top-left of the 4x4 bounding box
	Orientation Orientation
}

// Cells yields every board coordinate the piece covers.
// The sequence is finite (4 cells) and can be ranged over repeatedly.
func (p Piece) Cells() iter.Seq[core.Point] {
	return cellsAt(p.Kind, p.X, p.Y, p.Orientation)
}

// Color returns the display color of the piece.
func (p Piece) Color() core.Color {
	return p.Kind.Color()
}

// At returns a copy of the piece at a different position and orientation.
func (p Piece) At(x, y int, o Orientation) Piece {
	return Piece{Kind: p.Kind, X: x, Y: y, Orientation: o}
}

// WouldCollide reports whether the piece placed at (x, y) with orientation o
// would leave the board or overlap a locked cell. It stops at the first
// offending cell. Every move, rotation and drop goes through this check.
func (p Piece) WouldCollide(b *Board, x, y int, o Orientation) bool {
	for c := range cellsAt(p.Kind, x, y, o) {
		if !InBounds(c.X, c.Y) || b.Occupied(c.X, c.Y) {
			return true
		}
	}
	return false
}

// Collides reports whether the piece overlaps the board at its own position.
func (p Piece) Collides(b *Board) bool {
	return p.WouldCollide(b, p.X, p.Y, p.Orientation)
}

// InBounds reports whether (x, y) lies inside the well.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardWidth && y >= 0 && y < BoardHeight
}

func cellsAt(k Kind, x0, y0 int, o Orientation) iter.Seq[core.Point] {
	mask := k.Mask(o)
	return func(yield func(core.Point) bool) {
		for i := range 16 {
			if mask&(0x8000>>i) == 0 {
				continue
			}
			col, row := maskCell(i)
			if !yield(core.Point{X: x0 + col, Y: y0 + row}) {
				return
			}
		}
	}
}
