package core

import "testing"

func TestRectEdges(t *testing.T) {
	tests := []struct {
		name          string
		r             Rect
		right, bottom int
	}{
		{"well", NewRect(0, 0, 22, 22), 22, 22},
		{"preview", NewRect(24, 2, 10, 6), 34, 8},
		{"empty", NewRect(3, 4, 0, 0), 3, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Right(); got != tc.right {
				t.Errorf("Right() = %d, want %d", got, tc.right)
			}
			if got := tc.r.Bottom(); got != tc.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tc.bottom)
			}
		})
	}
}
