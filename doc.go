// Package sequencer models and converts the file-sequence naming notations
// used across visual-effects and animation tools: one-dimensional frame
// sequences (Maya angle, Nuke hash and percent, Houdini dollar, glob) and
// two-dimensional UDIM tile sequences (Mari fused numbers, Zbrush and
// Mudbox dual-axis forms). No referenced file needs to exist; the package
// manipulates strings and derived numeric indices only.
//
// Types:
//   - Dialect (priority-ordered registry of notation grammars)
//   - Frame, Tile, Range (index model; Mari linear = 1000 + v*10 + u + 1)
//   - Descriptor (prefix + variable token + suffix, value semantics)
//   - ResolvedSequence (descriptor + present indices, from Collapse)
//
// Operations:
//   - Parse(path, dialect) — tokenize a path, auto-detecting with
//     DialectAuto; the rightmost eligible match wins.
//   - Convert(descriptor, target) — re-render the token in another
//     dialect; cross-dimensionality conversion is rejected.
//   - Expand(descriptor, indices) / ExpandRange(descriptor, Range) —
//     descriptor plus indices back out to literal paths.
//   - Collapse(paths, dialect) — infer the dominant sequence from a path
//     batch, reporting non-members as unmatched.
//   - MissingIndices(resolved, Range) — derive gaps against an expected
//     range.
//
// Everything is a pure, synchronous transformation over immutable values:
// no filesystem access, no shared state, safe for concurrent readers. A
// directory-listing provider and any CLI layer are external collaborators
// that trade in plain path strings.
package sequencer
