package sequencer

import "fmt"

// Parse splits a literal path into static prefix, variable token, and static
// suffix, returning the sequence descriptor the path belongs to.
//
// With DialectAuto, dialects are tried in registry priority order and the
// first grammar that matches wins; a numeric run that could be either a
// frame number or a UDIM number is classified as UDIM-Mari only when it is a
// value in [1001, 9999] directly adjacent to the file extension. With an
// explicit dialect, only that dialect's grammar is applied.
//
// The variable region is always the rightmost eligible match in the string,
// so coincidental digits earlier in the name (a version tag like "v2") are
// left in the prefix. Parse is a pure function of its inputs.
func Parse(path string, dialect Dialect) (Descriptor, error) {
	desc, _, err := parsePath(path, dialect)
	return desc, err
}

// parsePath is the shared entry for Parse and Collapse. The returned Index
// is non-nil only when the matched token is a concrete number (a literal
// frame or UDIM occurrence) rather than a template form like "####".
func parsePath(path string, dialect Dialect) (Descriptor, Index, error) {
	if dialect == DialectAuto {
		for _, rule := range parseRules {
			sp, ok := rule.rightmost(path)
			if !ok {
				continue
			}
			return makeDescriptor(path, rule.dialect, sp), sp.index, nil
		}
		return Descriptor{}, nil, fmt.Errorf("parse %q: %w", path, ErrNoDialectMatch)
	}

	if !dialect.registered() {
		return Descriptor{}, nil, fmt.Errorf("parse %q: unregistered dialect %d: %w",
			path, int(dialect), ErrNoVariableToken)
	}

	for _, rule := range parseRules {
		if rule.dialect != dialect {
			continue
		}
		sp, ok := rule.rightmost(path)
		if !ok {
			continue
		}
		return makeDescriptor(path, dialect, sp), sp.index, nil
	}

	// The frame-literal fallback is registered under nuke-hash for
	// detection, but an explicit 1-D dialect may claim literal digit runs
	// too: collapsing rendered frames against the caller's dialect must
	// not depend on which notation originally produced them.
	if dialect.Dims() == 1 && dialect != DialectNukeHash {
		rule := parseRule{"frame-literal", dialect, reFrameLiteral, 0, decodeFrameLiteral}
		if sp, ok := rule.rightmost(path); ok {
			if dialect == DialectGlob {
				sp.pad = 0
			}
			return makeDescriptor(path, dialect, sp), sp.index, nil
		}
	}

	return Descriptor{}, nil, fmt.Errorf("parse %q as %s: %w", path, dialect, ErrNoVariableToken)
}

// makeDescriptor assembles the descriptor around a matched token span.
func makeDescriptor(path string, dialect Dialect, sp span) Descriptor {
	return Descriptor{
		Prefix:  path[:sp.start],
		Suffix:  path[sp.end:],
		Dialect: dialect,
		Padding: sp.pad,
	}
}
