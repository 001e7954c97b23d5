// Package grouping detects maximal constant-step runs in integer value
// lists, for compact range display like "1-5, 8, 10-20x2".
package grouping

import "sort"

// Run is a maximal arithmetic progression inside a value list. A single
// value is represented with Start == End and Step 1.
type Run struct {
	Start int
	End   int
	Step  int
}

// Runs sorts and deduplicates values, then splits them into maximal
// constant-step runs. A progression shorter than three values is emitted as
// singles: "4, 6" reads better than "4-6x2".
func Runs(values []int) []Run {
	if len(values) == 0 {
		return nil
	}

	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)
	sorted = dedupe(sorted)

	var runs []Run
	i := 0
	for i < len(sorted) {
		if i+1 >= len(sorted) {
			runs = append(runs, Run{Start: sorted[i], End: sorted[i], Step: 1})
			break
		}
		step := sorted[i+1] - sorted[i]
		j := i + 1
		for j+1 < len(sorted) && sorted[j+1]-sorted[j] == step {
			j++
		}
		if j-i+1 >= 3 {
			runs = append(runs, Run{Start: sorted[i], End: sorted[j], Step: step})
			i = j + 1
			continue
		}
		runs = append(runs, Run{Start: sorted[i], End: sorted[i], Step: 1})
		i++
	}
	return runs
}

func dedupe(sorted []int) []int {
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}
