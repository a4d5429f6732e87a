package blockfall

import "github.com/kamstrup/intmap"

// Board holds the locked cells of the well. Each column is a sparse
// row -> kind map; absent rows are empty.
type Board struct {
	cols [BoardWidth]*intmap.Map[int, Kind]
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	b := &Board{}
	for x := range b.cols {
		b.cols[x] = intmap.New[int, Kind](BoardHeight)
	}
	return b
}

// CellAt returns the kind locked at (x, y). Out-of-range or empty cells
// return KindNone.
func (b *Board) CellAt(x, y int) Kind {
	if !InBounds(x, y) {
		return KindNone
	}
	k, ok := b.cols[x].Get(y)
	if !ok {
		return KindNone
	}
	return k
}

// Occupied reports whether (x, y) holds a locked cell.
func (b *Board) Occupied(x, y int) bool {
	return b.CellAt(x, y) != KindNone
}

// Place locks every cell of p into the board. It does not check for
// collisions; callers must have validated the position with WouldCollide.
// Cells outside the well are dropped.
func (b *Board) Place(p Piece) {
	for c := range p.Cells() {
		if !InBounds(c.X, c.Y) {
			continue
		}
		b.cols[c.X].Put(c.Y, p.Kind)
	}
}

// ClearCompletedRows removes every full row and shifts the rows above it
// down. Rows are scanned bottom-up and a row index is re-examined after a
// removal since the row above has moved into it. Returns the number of
// rows removed.
func (b *Board) ClearCompletedRows() int {
	removed := 0
	for y := BoardHeight - 1; y >= 0; {
		if !b.rowFull(y) {
			y--
			continue
		}
		b.collapse(y)
		removed++
	}
	return removed
}

func (b *Board) rowFull(y int) bool {
	for x := range BoardWidth {
		if _, ok := b.cols[x].Get(y); !ok {
			return false
		}
	}
	return true
}

// collapse deletes row y, moves every row above it down by one and
// leaves row 0 empty.
func (b *Board) collapse(y int) {
	for _, col := range b.cols {
		for row := y; row > 0; row-- {
			if k, ok := col.Get(row - 1); ok {
				col.Put(row, k)
			} else {
				col.Del(row)
			}
		}
		col.Del(0)
	}
}

// Count returns the number of locked cells.
func (b *Board) Count() int {
	n := 0
	for _, col := range b.cols {
		n += col.Len()
	}
	return n
}

// Reset empties the board.
func (b *Board) Reset() {
	for _, col := range b.cols {
		col.Clear()
	}
}

// Grid returns a dense row-major copy of the board.
func (b *Board) Grid() [BoardHeight][BoardWidth]Kind {
	var g [BoardHeight][BoardWidth]Kind
	for x, col := range b.cols {
		for y := range BoardHeight {
			if k, ok := col.Get(y); ok {
				g[y][x] = k
			}
		}
	}
	return g
}
