package sequencer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Convert re-renders a descriptor's variable token in another dialect's
// notation, returning a new descriptor. The source descriptor is unchanged.
//
// A 1-D conversion preserves the padding width verbatim; only the token
// syntax changes. A 2-D conversion maps between the fused Mari linear form
// and the dual-axis forms; Zbrush and Mudbox differ only in their displayed
// axis base, which Expand applies during rendering. Cross-dimensionality
// conversion has no sound default mapping and is rejected.
func Convert(d Descriptor, target Dialect) (Descriptor, error) {
	if !target.registered() {
		return Descriptor{}, fmt.Errorf("convert to unregistered dialect %d: %w",
			int(target), ErrIncompatibleDimensionality)
	}
	if target == d.Dialect {
		return d, nil
	}

	// A fixed-width target checks the padding before anything else: a
	// variable-width descriptor cannot become a UDIM notation even when
	// the dimensionalities already disagree.
	if fixed := dialectTable[target].fixed; fixed > 0 && d.Padding != fixed {
		return Descriptor{}, fmt.Errorf("%s requires padding %d, got %d: %w",
			target, fixed, d.Padding, ErrUnsupportedPadding)
	}
	if d.Dims() != target.Dims() {
		return Descriptor{}, fmt.Errorf("convert %s to %s: %w",
			d.Dialect, target, ErrIncompatibleDimensionality)
	}
	if target == DialectNukeHash && d.Padding == 0 {
		return Descriptor{}, fmt.Errorf("%s has no unpadded form: %w",
			target, ErrUnsupportedPadding)
	}

	out := d
	out.Dialect = target

	// The fused Mari token is separated from the prefix by a dot, while
	// dual-axis tokens carry their own underscore separator:
	// "thing.1001.tif" versus "thing_u0_v0.tif". A prefix already ending in
	// a separator ("thing_") needs no dot, and skipping it keeps such
	// prefixes stable through a dual round trip.
	srcFused := dialectTable[d.Dialect].fused
	dstFused := dialectTable[target].fused
	if srcFused && !dstFused {
		out.Prefix = strings.TrimSuffix(out.Prefix, ".")
	}
	if !srcFused && dstFused && endsAlphanumeric(out.Prefix) {
		out.Prefix += "."
	}
	return out, nil
}

func endsAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(s)
	return unicode.IsLetter(last) || unicode.IsDigit(last)
}
