package sequencer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ColinKennedy/sequencer/internal/grouping"
)

// FormatIndices renders a compact description of an index set, e.g.
// "1-5, 8, 10-20x2". Tiles are described through their linear encoding, so
// a full first row reads "1001-1010".
func FormatIndices(indices []Index) string {
	values := make([]int, len(indices))
	for i, idx := range indices {
		values[i] = idx.Linear()
	}

	var parts []string
	for _, run := range grouping.Runs(values) {
		switch {
		case run.Start == run.End:
			parts = append(parts, strconv.Itoa(run.Start))
		case run.Step == 1:
			parts = append(parts, fmt.Sprintf("%d-%d", run.Start, run.End))
		default:
			parts = append(parts, fmt.Sprintf("%d-%dx%d", run.Start, run.End, run.Step))
		}
	}
	return strings.Join(parts, ", ")
}

// String renders the sequence as its template plus the present index runs:
// "/shot/beauty.####.exr [1-5, 8, 10-20x2]".
func (rs ResolvedSequence) String() string {
	return rs.Descriptor.Template() + " [" + FormatIndices(rs.Present) + "]"
}
