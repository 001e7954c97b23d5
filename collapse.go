package sequencer

import (
	"fmt"
	"sort"
)

// ResolvedSequence is a descriptor together with the indices actually
// present in a batch of literal paths. It is produced only by Collapse.
// Present is sorted ascending (row-major by v then u for tiles), and every
// entry expands through the descriptor to exactly one of the input paths.
type ResolvedSequence struct {
	Descriptor Descriptor
	Present    []Index
}

// member pairs one input path with the index decoded from it.
type member struct {
	path  string
	index Index
}

// Collapse infers the common sequence descriptor from a batch of concrete
// literal paths and reports which indices are present.
//
// Each path is parsed independently (auto-detecting the dialect per path
// when DialectAuto is given) and grouped by descriptor. The dominant group
// becomes the resolved sequence; every other path is returned in the
// unmatched list, in input order. Unmatched paths are expected input — a
// directory listing usually holds more than one sequence — not a failure.
// Duplicated input paths are collapsed to one occurrence.
//
// A tie between equally large groups prefers the dialect with higher
// registry priority, then the larger padding width.
func Collapse(paths []string, dialect Dialect) (ResolvedSequence, []string, error) {
	groups := make(map[Descriptor][]member)
	seen := make(map[string]bool, len(paths))
	ordered := make([]string, 0, len(paths))
	var firstErr error

	for _, path := range paths {
		if seen[path] {
			continue
		}
		seen[path] = true
		ordered = append(ordered, path)

		desc, idx, err := parsePath(path, dialect)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if idx == nil {
			// A template form like "####" carries no concrete index and
			// cannot be a member of an enumerated sequence.
			continue
		}
		groups[desc] = append(groups[desc], member{path: path, index: idx})
	}

	if len(groups) == 0 {
		if firstErr == nil {
			if dialect == DialectAuto {
				firstErr = fmt.Errorf("collapse: no concrete sequence members: %w", ErrNoDialectMatch)
			} else {
				firstErr = fmt.Errorf("collapse as %s: no concrete sequence members: %w",
					dialect, ErrNoVariableToken)
			}
		}
		return ResolvedSequence{}, nil, firstErr
	}

	dominant := dominantGroup(groups)
	members := groups[dominant]
	sort.Slice(members, func(i, j int) bool {
		return indexLess(members[i].index, members[j].index)
	})

	present := make([]Index, len(members))
	inGroup := make(map[string]bool, len(members))
	for i, m := range members {
		present[i] = m.index
		inGroup[m.path] = true
	}

	var unmatched []string
	for _, path := range ordered {
		if !inGroup[path] {
			unmatched = append(unmatched, path)
		}
	}

	return ResolvedSequence{Descriptor: dominant, Present: present}, unmatched, nil
}

// dominantGroup picks the group that defines the resolved sequence: most
// members first, then registry priority, then the larger (more specific)
// padding width. The final prefix/suffix comparison only keeps the choice
// deterministic for otherwise identical groups.
func dominantGroup(groups map[Descriptor][]member) Descriptor {
	keys := make([]Descriptor, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if len(groups[a]) != len(groups[b]) {
			return len(groups[a]) > len(groups[b])
		}
		if a.Dialect.priority() != b.Dialect.priority() {
			return a.Dialect.priority() < b.Dialect.priority()
		}
		if a.Padding != b.Padding {
			return a.Padding > b.Padding
		}
		if a.Prefix != b.Prefix {
			return a.Prefix < b.Prefix
		}
		return a.Suffix < b.Suffix
	})
	return keys[0]
}

// MissingIndices compares a resolved sequence against an expected range and
// returns the indices absent from it, sorted ascending. Gaps are derived on
// demand, never stored on the ResolvedSequence itself.
func MissingIndices(rs ResolvedSequence, expected Range) []Index {
	expected = expected.normalized()
	present := make(map[Index]bool, len(rs.Present))
	for _, idx := range rs.Present {
		present[idx] = true
	}

	dims := rs.Descriptor.Dims()
	var missing []Index
	for n := expected.Start; n <= expected.End; n += expected.Step {
		var idx Index
		if dims == 2 {
			tile, err := TileFromLinear(n)
			if err != nil {
				continue
			}
			idx = tile
		} else {
			idx = Frame(n)
		}
		if !present[idx] {
			missing = append(missing, idx)
		}
	}
	return missing
}
