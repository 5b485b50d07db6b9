// Package report renders Grover run results as the text report and ASCII
// histogram the qarchitect CLI prints and logs: one line per observed
// layout with its shot count, percentage, and validity tag.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/form-foundry/qarchitect/pkg/floorplan"
	"github.com/form-foundry/qarchitect/pkg/qsim"
	"github.com/form-foundry/qarchitect/pkg/types"
)

// BuildRun assembles the Run entity for a completed search: the sampled
// frequency table joined with exact probabilities from the final state and
// the rule's validity verdict per layout. Outcomes are sorted by count
// descending, matching report order.
func BuildRun(rule floorplan.Rule, result *qsim.SearchResult, counts map[string]int, shots int, seed int64) (*types.Run, error) {
	run := &types.Run{
		Rule:       rule.Name(),
		Iterations: result.Iterations,
		Shots:      shots,
		Seed:       seed,
		CreatedAt:  time.Now().UTC(),
	}
	for bits, count := range counts {
		state, err := qsim.ParseBasisState(bits)
		if err != nil {
			return nil, fmt.Errorf("building run: %w", err)
		}
		run.Outcomes = append(run.Outcomes, types.Outcome{
			Bitstring:   bits,
			Count:       count,
			Probability: result.Distribution[state],
			Valid:       rule.Holds(state),
		})
	}
	sort.Slice(run.Outcomes, func(i, j int) bool {
		if run.Outcomes[i].Count != run.Outcomes[j].Count {
			return run.Outcomes[i].Count > run.Outcomes[j].Count
		}
		return run.Outcomes[i].Bitstring < run.Outcomes[j].Bitstring
	})
	return run, nil
}

// WriteHeader prints the banner describing the search problem.
func WriteHeader(w io.Writer, rule floorplan.Rule) {
	fmt.Fprintln(w, "GROVER'S ALGORITHM FOR NON-OVERLAPPING ADJACENCY")
	fmt.Fprintln(w, strings.Repeat("=", 50))
	fmt.Fprintf(w, "\nRule: %s over %d room qubits.\n", rule.Name(), rule.Bits())
	fmt.Fprintln(w, "A 1 marks a public room, a 0 a private one.")
	valid := floorplan.ValidStates(rule)
	if len(valid) > 0 {
		names := make([]string, len(valid))
		for i, state := range valid {
			names[i] = qsim.FormatBasisState(state, rule.Bits())
		}
		fmt.Fprintf(w, "Valid layouts: %s.\n", strings.Join(names, ", "))
	} else {
		fmt.Fprintln(w, "No layout satisfies this rule.")
	}
	fmt.Fprintln(w, "\nStarting runs...")
}

// WriteRun prints one run's frequency table in the report format:
//
//	---------- Running with 2 Grover iterations ----------
//	Results from 1000 shots:
//	  1100 -> [P][P][_][_], Count = 299 (29.9%) VALID
func WriteRun(w io.Writer, run *types.Run) {
	plural := "s"
	if run.Iterations == 1 {
		plural = ""
	}
	fmt.Fprintf(w, "\n%s Running with %d Grover iteration%s %s\n",
		strings.Repeat("-", 10), run.Iterations, plural, strings.Repeat("-", 10))
	fmt.Fprintf(w, "Results from %d shots:\n", run.Shots)
	for _, o := range run.Outcomes {
		tag := "invalid"
		if o.Valid {
			tag = "VALID"
		}
		fmt.Fprintf(w, "  %s -> %s, Count = %d (%.1f%%) %s\n",
			o.Bitstring, roomGlyphs(o.Bitstring), o.Count,
			float64(o.Count)/float64(run.Shots)*100, tag)
	}
}

// roomGlyphs renders a layout bitstring as room boxes: [P] public, [_] private.
func roomGlyphs(bits string) string {
	var b strings.Builder
	for i := 0; i < len(bits); i++ {
		if bits[i] == '1' {
			b.WriteString("[P]")
		} else {
			b.WriteString("[_]")
		}
	}
	return b.String()
}
