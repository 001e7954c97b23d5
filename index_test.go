package sequencer

import (
	"errors"
	"testing"
)

func TestTileLinear(t *testing.T) {
	cases := []struct {
		tile Tile
		want int
	}{
		{Tile{U: 0, V: 0}, 1001},
		{Tile{U: 1, V: 0}, 1002},
		{Tile{U: 9, V: 0}, 1010},
		{Tile{U: 0, V: 1}, 1011},
		{Tile{U: 3, V: 2}, 1024},
		{Tile{U: 9, V: 9}, 1100},
	}

	for _, tc := range cases {
		if got := tc.tile.Linear(); got != tc.want {
			t.Errorf("Tile{%d,%d}.Linear() = %d, want %d", tc.tile.U, tc.tile.V, got, tc.want)
		}
	}
}

func TestTileFromLinear(t *testing.T) {
	// Exhaustive round trip over the full fused grid.
	for v := 0; v < 900; v++ {
		for u := 0; u < tileRowWidth; u++ {
			tile := Tile{U: u, V: v}
			got, err := TileFromLinear(tile.Linear())
			if err != nil {
				t.Fatalf("TileFromLinear(%d): %v", tile.Linear(), err)
			}
			if got != tile {
				t.Fatalf("TileFromLinear(%d) = %+v, want %+v", tile.Linear(), got, tile)
			}
		}
	}

	for _, n := range []int{1000, 0, -5} {
		if _, err := TileFromLinear(n); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("TileFromLinear(%d): got %v, want %v", n, err, ErrIndexOutOfRange)
		}
	}
}

func TestIndexLess(t *testing.T) {
	cases := []struct {
		a, b Index
		want bool
	}{
		{Frame(1), Frame(2), true},
		{Frame(2), Frame(1), false},
		{Frame(2), Frame(2), false},
		{Tile{U: 0, V: 0}, Tile{U: 1, V: 0}, true},
		{Tile{U: 9, V: 0}, Tile{U: 0, V: 1}, true},
		// Row-major even where the linear encoding would disagree.
		{Tile{U: 14, V: 0}, Tile{U: 0, V: 1}, true},
		{Tile{U: 0, V: 1}, Tile{U: 14, V: 0}, false},
	}

	for _, tc := range cases {
		if got := indexLess(tc.a, tc.b); got != tc.want {
			t.Errorf("indexLess(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestRangeNormalized(t *testing.T) {
	cases := []struct {
		in   Range
		want Range
	}{
		{Range{Start: 1, End: 5, Step: 2}, Range{Start: 1, End: 5, Step: 2}},
		{Range{Start: 5, End: 1}, Range{Start: 1, End: 5, Step: 1}},
		{Range{Start: 3, End: 3, Step: -2}, Range{Start: 3, End: 3, Step: 1}},
	}

	for _, tc := range cases {
		if got := tc.in.normalized(); got != tc.want {
			t.Errorf("%+v.normalized() = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestRangeLast(t *testing.T) {
	cases := []struct {
		in   Range
		want int
	}{
		{Range{Start: 1, End: 5, Step: 1}, 5},
		{Range{Start: 10, End: 20, Step: 2}, 20},
		{Range{Start: 1, End: 10, Step: 4}, 9},
		{Range{Start: 7, End: 7, Step: 3}, 7},
	}

	for _, tc := range cases {
		if got := tc.in.normalized().last(); got != tc.want {
			t.Errorf("%+v.last() = %d, want %d", tc.in, got, tc.want)
		}
	}
}
