package sequencer

import (
	"fmt"
	"iter"
	"strconv"
)

// Expand renders one literal path per index, preserving input order. An
// index that cannot be rendered inside the descriptor's padding width fails
// with ErrIndexOutOfRange; silent truncation would produce colliding paths
// and is never allowed. An index kind that does not fit the descriptor's
// dimensionality fails with ErrIncompatibleDimensionality.
func Expand(d Descriptor, indices []Index) ([]string, error) {
	paths := make([]string, 0, len(indices))
	for _, idx := range indices {
		path, err := renderIndex(d, idx)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// ExpandRange returns a lazy sequence of literal paths over an inclusive
// range in the integer index domain: frame numbers for 1-D descriptors,
// Mari linear numbers for 2-D descriptors (row-major by v then u). The
// range extremes are validated up front, so the returned sequence cannot
// fail mid-iteration and may be ranged over any number of times.
func ExpandRange(d Descriptor, r Range) (iter.Seq[string], error) {
	r = r.normalized()
	if _, err := renderIndex(d, indexFromLinear(d, r.Start)); err != nil {
		return nil, err
	}
	if _, err := renderIndex(d, indexFromLinear(d, r.last())); err != nil {
		return nil, err
	}
	return func(yield func(string) bool) {
		for n := r.Start; n <= r.End; n += r.Step {
			path, err := renderIndex(d, indexFromLinear(d, n))
			if err != nil {
				return
			}
			if !yield(path) {
				return
			}
		}
	}, nil
}

// indexFromLinear lifts a linear range value into the descriptor's index
// kind. Out-of-domain values (a 2-D linear below 1001) surface later as
// render errors via an impossible tile.
func indexFromLinear(d Descriptor, n int) Index {
	if d.Dims() == 2 {
		tile, err := TileFromLinear(n)
		if err != nil {
			return Tile{U: -1, V: -1}
		}
		return tile
	}
	return Frame(n)
}

// renderIndex encodes a single index through the descriptor's dialect.
func renderIndex(d Descriptor, idx Index) (string, error) {
	switch v := idx.(type) {
	case Frame:
		if d.Dims() != 1 {
			return "", fmt.Errorf("frame index for %s descriptor: %w",
				d.Dialect, ErrIncompatibleDimensionality)
		}
		if v < 0 {
			return "", fmt.Errorf("frame %d: %w", int(v), ErrIndexOutOfRange)
		}
		text := strconv.Itoa(int(v))
		if d.Padding > 0 {
			if len(text) > d.Padding {
				return "", fmt.Errorf("frame %d exceeds padding %d: %w",
					int(v), d.Padding, ErrIndexOutOfRange)
			}
			text = fmt.Sprintf("%0*d", d.Padding, int(v))
		}
		return d.Prefix + text + d.Suffix, nil

	case Tile:
		if d.Dims() != 2 {
			return "", fmt.Errorf("tile index for %s descriptor: %w",
				d.Dialect, ErrIncompatibleDimensionality)
		}
		if v.U < 0 || v.V < 0 {
			return "", fmt.Errorf("tile u%d v%d: %w", v.U, v.V, ErrIndexOutOfRange)
		}
		info := dialectTable[d.Dialect]
		if info.fused {
			// One decade per row: the fused encoding cannot address a
			// tile whose column spills into the next row's range.
			if v.U >= tileRowWidth {
				return "", fmt.Errorf("tile u%d v%d has no fused number: %w",
					v.U, v.V, ErrIndexOutOfRange)
			}
			text := strconv.Itoa(v.Linear())
			if len(text) > d.Padding {
				return "", fmt.Errorf("tile u%d v%d exceeds padding %d: %w",
					v.U, v.V, d.Padding, ErrIndexOutOfRange)
			}
			return d.Prefix + text + d.Suffix, nil
		}
		return fmt.Sprintf("%s_u%d_v%d%s",
			d.Prefix, v.U+info.base, v.V+info.base, d.Suffix), nil
	}
	return "", fmt.Errorf("nil index: %w", ErrIndexOutOfRange)
}
