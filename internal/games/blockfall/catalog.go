// Package blockfall implements the falling-block puzzle game: a 10x20 well,
// seven four-cell pieces, row clears and a speed curve driven by cleared rows.
package blockfall

import "github.com/vovakirdan/blockfall/internal/core"

// Board dimensions. Fixed for every round.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Kind identifies one of the seven piece shapes. KindNone marks an empty cell.
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// AllKinds lists every playable kind in catalog order.
var AllKinds = [...]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// Orientation is one of the four rotation states, 0 being the spawn state.
type Orientation uint8

// OrientationCount is the number of rotation states per kind.
const OrientationCount = 4

// RotateRight returns the next orientation clockwise.
func (o Orientation) RotateRight() Orientation {
	return (o + 1) % OrientationCount
}

// RotateLeft returns the next orientation counter-clockwise.
func (o Orientation) RotateLeft() Orientation {
	return (o + OrientationCount - 1) % OrientationCount
}

// shape is the static catalog entry for a kind.
// Masks are 4x4 row-major occupancy grids; bit 15 is the top-left cell.
type shape struct {
	name   string
	size   int // Bounding box size, also the spawn width
	masks  [OrientationCount]uint16
	shiftX [OrientationCount]int // Half-cell preview offsets
	shiftY [OrientationCount]int
	color  core.Color
}

var catalog = [...]shape{
	KindNone: {name: "."},
	KindI: {
		name:   "I",
		size:   4,
		masks:  [4]uint16{0x0F00, 0x2222, 0x00F0, 0x4444},
		shiftX: [4]int{0, 2, 0, 1},
		shiftY: [4]int{0, 4, 0, 4},
		color:  core.ColorOrange,
	},
	KindJ: {
		name:   "J",
		size:   3,
		masks:  [4]uint16{0x0E20, 0x44C0, 0x8E00, 0x6440},
		shiftX: [4]int{2, 1, 0, 1},
		shiftY: [4]int{2, 2, 2, 2},
		color:  core.ColorOrchid,
	},
	KindL: {
		name:   "L",
		size:   3,
		masks:  [4]uint16{0x0E80, 0xC440, 0x2E00, 0x4460},
		shiftX: [4]int{0, 1, 2, 1},
		shiftY: [4]int{2, 2, 2, 2},
		color:  core.ColorBlue,
	},
	KindO: {
		name:   "O",
		size:   2,
		masks:  [4]uint16{0xCC00, 0xCC00, 0xCC00, 0xCC00},
		shiftX: [4]int{0, 0, 0, 0},
		shiftY: [4]int{1, 1, 1, 1},
		color:  core.ColorRed,
	},
	KindS: {
		name:   "S",
		size:   3,
		masks:  [4]uint16{0x06C0, 0x8C40, 0x6C00, 0x4620},
		shiftX: [4]int{1, 1, 1, 2},
		shiftY: [4]int{2, 2, 2, 2},
		color:  core.ColorSkyBlue,
	},
	KindT: {
		name:   "T",
		size:   3,
		masks:  [4]uint16{0x0E40, 0x4C40, 0x4E00, 0x4640},
		shiftX: [4]int{1, 1, 1, 1},
		shiftY: [4]int{2, 2, 2, 2},
		color:  core.ColorYellow,
	},
	KindZ: {
		name:   "Z",
		size:   3,
		masks:  [4]uint16{0x0C60, 0x4C80, 0xC600, 0x2640},
		shiftX: [4]int{1, 0, 1, 1},
		shiftY: [4]int{2, 2, 2, 2},
		color:  core.ColorLawnGreen,
	},
}

// Valid reports whether k is one of the seven playable kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindZ
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if int(k) >= len(catalog) {
		return "?"
	}
	return catalog[k].name
}

// Color returns the display color of the kind.
func (k Kind) Color() core.Color {
	if int(k) >= len(catalog) {
		return core.ColorDefault
	}
	return catalog[k].color
}

// Size returns the bounding box size of the kind (2 to 4).
func (k Kind) Size() int {
	if !k.Valid() {
		return 0
	}
	return catalog[k].size
}

// Mask returns the 16-bit occupancy mask for the kind in the given orientation.
func (k Kind) Mask(o Orientation) uint16 {
	if !k.Valid() {
		return 0
	}
	return catalog[k].masks[o%OrientationCount]
}

// PreviewShift returns the half-cell offsets that center the kind in a
// preview box for the given orientation.
func (k Kind) PreviewShift(o Orientation) (dx, dy int) {
	if !k.Valid() {
		return 0, 0
	}
	s := catalog[k]
	return s.shiftX[o%OrientationCount], s.shiftY[o%OrientationCount]
}

// maskCell decodes a bit index, counted from the most significant bit,
// to its column and row inside the 4x4 box.
func maskCell(bitIndex int) (col, row int) {
	return bitIndex % 4, bitIndex / 4
}
