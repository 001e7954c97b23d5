package sequencer

import (
	"fmt"
	"strings"
)

// Descriptor is the dialect-independent template of a sequence: the literal
// text around a variable token, the notation used to render that token, and
// the token's padding width (0 = unpadded / padding-insensitive).
//
// A Descriptor is a pure notation template with value semantics. It owns no
// file-existence state and is never mutated in place; Convert and
// WithPadding return new values.
type Descriptor struct {
	Prefix  string
	Suffix  string
	Dialect Dialect
	Padding int
}

// Dims returns the descriptor's dimensionality: 1 for frame sequences, 2
// for UDIM tile sequences.
func (d Descriptor) Dims() int { return d.Dialect.Dims() }

// Template renders the descriptor back into its dialect's notation, e.g.
// "/shot/beauty.####.exr" or "/asset/color.<UDIM>.tif".
func (d Descriptor) Template() string {
	return d.Prefix + d.token() + d.Suffix
}

// token renders the variable-token text for the descriptor's dialect and
// padding. Dual-axis dialects use hash placeholders for the axis values.
func (d Descriptor) token() string {
	switch d.Dialect {
	case DialectUDIMMari:
		return "<UDIM>"
	case DialectUDIMZbrush, DialectUDIMMudbox:
		return "_u#_v#"
	case DialectMayaAngle:
		if d.Padding > 0 {
			return fmt.Sprintf("<f%d>", d.Padding)
		}
		return "<f>"
	case DialectNukeHash:
		if d.Padding < 1 {
			return "#"
		}
		return strings.Repeat("#", d.Padding)
	case DialectNukePercent:
		if d.Padding > 0 {
			return fmt.Sprintf("%%0%dd", d.Padding)
		}
		return "%d"
	case DialectHoudiniDollar:
		if d.Padding > 0 {
			return fmt.Sprintf("$F%d", d.Padding)
		}
		return "$F"
	case DialectGlob:
		return "*"
	}
	return ""
}

// WithPadding returns a copy of the descriptor with a new padding width.
// Fixed-width dialects accept only their mandated width, and the hash
// notation cannot express an unpadded token.
func (d Descriptor) WithPadding(width int) (Descriptor, error) {
	if width < 0 {
		return Descriptor{}, fmt.Errorf("padding %d: %w", width, ErrUnsupportedPadding)
	}
	if fixed := dialectTable[d.Dialect].fixed; fixed > 0 && width != fixed {
		return Descriptor{}, fmt.Errorf("%s requires padding %d, got %d: %w",
			d.Dialect, fixed, width, ErrUnsupportedPadding)
	}
	if d.Dialect == DialectNukeHash && width == 0 {
		return Descriptor{}, fmt.Errorf("%s has no unpadded form: %w", d.Dialect, ErrUnsupportedPadding)
	}
	d.Padding = width
	return d, nil
}
