package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/form-foundry/qarchitect/pkg/qsim"
	"github.com/form-foundry/qarchitect/pkg/types"
)

// histogramWidth is the bar length, in characters, of the largest count.
const histogramWidth = 40

// WriteHistogram prints a bar per basis state, zero counts included, so the
// shape of the distribution is visible at a glance. qubits fixes the number
// of states rendered; bars for valid layouts are marked with a trailing '*'.
func WriteHistogram(w io.Writer, run *types.Run, qubits int) {
	counts := make([]int, 1<<qubits)
	valid := make([]bool, 1<<qubits)
	max := 0
	for _, o := range run.Outcomes {
		state, err := qsim.ParseBasisState(o.Bitstring)
		if err != nil || state >= len(counts) {
			continue
		}
		counts[state] = o.Count
		valid[state] = o.Valid
		if o.Count > max {
			max = o.Count
		}
	}
	if max == 0 {
		max = 1
	}

	fmt.Fprintf(w, "\nShot histogram (%d iterations):\n", run.Iterations)
	for state := range counts {
		bar := strings.Repeat("#", counts[state]*histogramWidth/max)
		mark := " "
		if valid[state] {
			mark = "*"
		}
		fmt.Fprintf(w, "  %s %s |%-*s| %d\n",
			qsim.FormatBasisState(state, qubits), mark, histogramWidth, bar, counts[state])
	}
}
