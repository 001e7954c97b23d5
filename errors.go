package sequencer

import "errors"

// Sentinel errors returned by Parse, Convert, Expand, and Collapse. They are
// matched with errors.Is; call sites wrap them with path or index context.
var (
	// ErrNoVariableToken means an explicit-dialect parse found no span that
	// the dialect's grammar recognizes.
	ErrNoVariableToken = errors.New("no variable token found")

	// ErrNoDialectMatch means auto-detection tried every registered dialect
	// and none matched. Multiple matches are resolved by registry priority
	// and never reported as an error.
	ErrNoDialectMatch = errors.New("no dialect matches path")

	// ErrIncompatibleDimensionality means a 1-D frame notation and a 2-D
	// tile notation were mixed: a cross-dimensionality conversion, or an
	// index whose kind does not fit the descriptor.
	ErrIncompatibleDimensionality = errors.New("incompatible dimensionality")

	// ErrUnsupportedPadding means a dialect's padding-width constraint was
	// violated, e.g. a UDIM dialect with a width other than 4, or an
	// unpadded descriptor converted to the hash notation.
	ErrUnsupportedPadding = errors.New("unsupported padding width")

	// ErrIndexOutOfRange means an index cannot be rendered inside the
	// descriptor's padding width, or an axis value is outside the bounds of
	// the target encoding. Indices are never silently truncated.
	ErrIndexOutOfRange = errors.New("index out of range")
)
