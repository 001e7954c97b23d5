package sequencer

import "fmt"

// Mari numbers a 10-wide tile grid as a single linear value starting at 1001.
const (
	mariOrigin   = 1001
	tileRowWidth = 10
)

// Index addresses one member of a sequence: a Frame for one-dimensional
// dialects or a Tile for two-dimensional (UDIM) dialects. Frame and Tile are
// the only implementations; both are comparable value types.
type Index interface {
	// Linear returns the integer encoding used for ordering and ranges:
	// the frame number itself, or the Mari linear number for tiles.
	Linear() int

	isIndex()
}

// Frame is a single frame (or tile-linear) number.
type Frame int

// Linear returns the frame number.
func (f Frame) Linear() int { return int(f) }

func (Frame) isIndex() {}

// Tile is a two-dimensional tile position. U and V are zero-based regardless
// of the base a dialect displays; the displayed offset is applied during
// encoding and decoding only.
type Tile struct {
	U int
	V int
}

// Linear returns the Mari linear number for the tile:
// 1000 + V*10 + U + 1. The value is only a valid Mari number while U stays
// inside [0, 9]; dual-axis dialects permit larger U, and such tiles are
// addressable through Expand but not through the linear Range domain.
func (t Tile) Linear() int { return mariOrigin + t.V*tileRowWidth + t.U }

func (Tile) isIndex() {}

// TileFromLinear converts a Mari linear number back to a zero-based tile.
// Numbers below 1001 have no tile and fail with ErrIndexOutOfRange.
func TileFromLinear(n int) (Tile, error) {
	if n < mariOrigin {
		return Tile{}, fmt.Errorf("linear value %d: %w", n, ErrIndexOutOfRange)
	}
	r := n - mariOrigin
	return Tile{U: r % tileRowWidth, V: r / tileRowWidth}, nil
}

// indexLess orders indices for deterministic output: frames by value, tiles
// row-major by V then U.
func indexLess(a, b Index) bool {
	at, aok := a.(Tile)
	bt, bok := b.(Tile)
	if aok && bok {
		if at.V != bt.V {
			return at.V < bt.V
		}
		return at.U < bt.U
	}
	return a.Linear() < b.Linear()
}

// Range is an inclusive span over the integer index domain: frame numbers
// for 1-D descriptors, Mari linear numbers for 2-D descriptors. A Step of
// zero or less means 1. Start and End may be given in either order.
type Range struct {
	Start int
	End   int
	Step  int
}

// normalized returns the range with Start <= End and Step >= 1.
func (r Range) normalized() Range {
	if r.Start > r.End {
		r.Start, r.End = r.End, r.Start
	}
	if r.Step <= 0 {
		r.Step = 1
	}
	return r
}

// last returns the highest value the normalized range actually visits.
func (r Range) last() int {
	return r.Start + ((r.End-r.Start)/r.Step)*r.Step
}
