package blockfall

import "testing"

func setCell(b *Board, x, y int, k Kind) {
	b.cols[x].Put(y, k)
}

func fillRow(b *Board, y int, k Kind) {
	for x := range BoardWidth {
		setCell(b, x, y, k)
	}
}

func TestBoardCellAtOutOfRange(t *testing.T) {
	b := NewBoard()
	fillRow(b, 0, KindT)

	for _, pos := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 20}} {
		if k := b.CellAt(pos[0], pos[1]); k != KindNone {
			t.Errorf("CellAt(%d,%d) = %s, want empty", pos[0], pos[1], k)
		}
	}
	if b.CellAt(3, 0) != KindT {
		t.Error("CellAt(3,0) lost its kind")
	}
}

func TestBoardPlace(t *testing.T) {
	b := NewBoard()
	b.Place(Piece{Kind: KindS, X: 2, Y: 10})

	if b.Count() != 4 {
		t.Fatalf("Count() = %d, want 4", b.Count())
	}
	// S spawn mask 0x06C0: row 1 cols 1-2, row 2 cols 0-1.
	for _, c := range [][2]int{{3, 11}, {4, 11}, {2, 12}, {3, 12}} {
		if b.CellAt(c[0], c[1]) != KindS {
			t.Errorf("cell (%d,%d) not S", c[0], c[1])
		}
	}
}

func TestClearCompletedRowsNone(t *testing.T) {
	b := NewBoard()
	for x := range BoardWidth - 1 {
		setCell(b, x, 19, KindJ)
	}
	before := b.Grid()

	if n := b.ClearCompletedRows(); n != 0 {
		t.Fatalf("ClearCompletedRows() = %d, want 0", n)
	}
	if b.Grid() != before {
		t.Error("board changed with no complete rows")
	}
}

func TestClearCompletedRowsSingle(t *testing.T) {
	b := NewBoard()
	b.Place(Piece{Kind: KindI, X: 0, Y: 18}) // row 19, cols 0-3
	b.Place(Piece{Kind: KindI, X: 4, Y: 18}) // row 19, cols 4-7
	b.Place(Piece{Kind: KindO, X: 8, Y: 18}) // rows 18-19, cols 8-9

	if n := b.ClearCompletedRows(); n != 1 {
		t.Fatalf("ClearCompletedRows() = %d, want 1", n)
	}
	if b.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", b.Count())
	}
	for x := range BoardWidth {
		want := KindNone
		if x >= 8 {
			want = KindO
		}
		if got := b.CellAt(x, 19); got != want {
			t.Errorf("row 19 col %d = %s, want %s", x, got, want)
		}
		if b.Occupied(x, 18) {
			t.Errorf("row 18 col %d still occupied", x)
		}
	}
}

func TestClearCompletedRowsOPieces(t *testing.T) {
	b := NewBoard()
	for x := 0; x < BoardWidth; x += 2 {
		b.Place(Piece{Kind: KindO, X: x, Y: 18})
	}

	if n := b.ClearCompletedRows(); n != 2 {
		t.Fatalf("ClearCompletedRows() = %d, want 2", n)
	}
	if b.Count() != 0 {
		t.Errorf("Count() = %d, want 0", b.Count())
	}
}

func TestClearCompletedRowsWithGap(t *testing.T) {
	b := NewBoard()
	fillRow(b, 19, KindT)
	setCell(b, 0, 18, KindL)
	fillRow(b, 17, KindT)
	setCell(b, 5, 16, KindZ)

	if n := b.ClearCompletedRows(); n != 2 {
		t.Fatalf("ClearCompletedRows() = %d, want 2", n)
	}
	if b.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", b.Count())
	}
	if b.CellAt(0, 19) != KindL {
		t.Error("row 18 did not shift to row 19")
	}
	if b.CellAt(5, 18) != KindZ {
		t.Error("row 16 did not shift to row 18")
	}
}

func TestClearCompletedRowsTopRow(t *testing.T) {
	b := NewBoard()
	fillRow(b, 0, KindI)

	if n := b.ClearCompletedRows(); n != 1 {
		t.Fatalf("ClearCompletedRows() = %d, want 1", n)
	}
	if b.Count() != 0 {
		t.Errorf("Count() = %d, want 0", b.Count())
	}
}

func TestBoardGridMatchesCount(t *testing.T) {
	b := NewBoard()
	setCell(b, 1, 1, KindZ)
	setCell(b, 9, 19, KindO)

	grid := b.Grid()
	if grid[1][1] != KindZ || grid[19][9] != KindO {
		t.Errorf("grid lost cells: [1][1]=%s [19][9]=%s", grid[1][1], grid[19][9])
	}
	var n int
	for _, row := range grid {
		for _, k := range row {
			if k != KindNone {
				n++
			}
		}
	}
	if n != b.Count() {
		t.Errorf("grid has %d cells, Count() = %d", n, b.Count())
	}

	b.Reset()
	if b.Count() != 0 || b.Grid() != ([BoardHeight][BoardWidth]Kind{}) {
		t.Error("Reset left cells behind")
	}
}
