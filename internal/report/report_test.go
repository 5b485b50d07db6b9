package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/form-foundry/qarchitect/pkg/floorplan"
	"github.com/form-foundry/qarchitect/pkg/qsim"
	"github.com/form-foundry/qarchitect/pkg/types"
)

func TestBuildRun(t *testing.T) {
	rule := floorplan.ExactlyOnePair{}
	result := &qsim.SearchResult{
		Iterations:   1,
		Distribution: make([]float64, 16),
	}
	for state := range result.Distribution {
		if rule.Holds(state) {
			result.Distribution[state] = 0.390625
		} else {
			result.Distribution[state] = 0.015625
		}
	}
	counts := map[string]int{
		"1100": 395,
		"0011": 385,
		"0000": 110,
		"1111": 110,
	}

	run, err := BuildRun(rule, result, counts, 1000, 42)
	if err != nil {
		t.Fatalf("BuildRun failed: %v", err)
	}
	if run.Rule != "exactly-one-pair" || run.Iterations != 1 ||
		run.Shots != 1000 || run.Seed != 42 {
		t.Errorf("run fields mismatch: %+v", run)
	}
	if err := run.Validate(); err != nil {
		t.Errorf("built run does not validate: %v", err)
	}

	// Sorted by count descending, bitstring ascending on ties.
	wantOrder := []string{"1100", "0011", "0000", "1111"}
	for i, want := range wantOrder {
		if run.Outcomes[i].Bitstring != want {
			t.Errorf("outcome[%d] = %q, want %q", i, run.Outcomes[i].Bitstring, want)
		}
	}
	if !run.Outcomes[0].Valid || run.Outcomes[2].Valid {
		t.Error("validity verdicts wrong")
	}
	if run.Outcomes[0].Probability != 0.390625 {
		t.Errorf("probability = %v, want 0.390625", run.Outcomes[0].Probability)
	}
	if run.Outcomes[2].Probability != 0.015625 {
		t.Errorf("probability = %v, want 0.015625", run.Outcomes[2].Probability)
	}
}

func TestBuildRunBadBitstring(t *testing.T) {
	result := &qsim.SearchResult{Distribution: make([]float64, 16)}
	_, err := BuildRun(floorplan.ExactlyOnePair{}, result, map[string]int{"10x0": 5}, 5, 0)
	if err == nil {
		t.Fatal("expected error for malformed bitstring")
	}
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	WriteHeader(&buf, floorplan.ExactlyOnePair{})
	out := buf.String()

	for _, want := range []string{
		"GROVER'S ALGORITHM",
		"Rule: exactly-one-pair over 4 room qubits.",
		"Valid layouts: 1100, 0011.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
}

func TestWriteHeaderNoValidLayouts(t *testing.T) {
	var buf bytes.Buffer
	WriteHeader(&buf, floorplan.Never{})
	if !strings.Contains(buf.String(), "No layout satisfies this rule.") {
		t.Errorf("header missing empty-rule line:\n%s", buf.String())
	}
}

func TestWriteRun(t *testing.T) {
	run := &types.Run{
		Rule:       "exactly-one-pair",
		Iterations: 2,
		Shots:      1000,
		Outcomes: []types.Outcome{
			{Bitstring: "1100", Count: 299, Valid: true},
			{Bitstring: "0010", Count: 701, Valid: false},
		},
	}

	var buf bytes.Buffer
	WriteRun(&buf, run)
	out := buf.String()

	for _, want := range []string{
		"Running with 2 Grover iterations",
		"Results from 1000 shots:",
		"  1100 -> [P][P][_][_], Count = 299 (29.9%) VALID",
		"  0010 -> [_][_][P][_], Count = 701 (70.1%) invalid",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteRunSingularIteration(t *testing.T) {
	run := &types.Run{Iterations: 1, Shots: 10}
	var buf bytes.Buffer
	WriteRun(&buf, run)
	if !strings.Contains(buf.String(), "Running with 1 Grover iteration -") {
		t.Errorf("singular form missing:\n%s", buf.String())
	}
}

func TestWriteHistogram(t *testing.T) {
	run := &types.Run{
		Iterations: 1,
		Shots:      100,
		Outcomes: []types.Outcome{
			{Bitstring: "1100", Count: 80, Valid: true},
			{Bitstring: "0000", Count: 20, Valid: false},
		},
	}

	var buf bytes.Buffer
	WriteHistogram(&buf, run, 4)
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header plus one bar per basis state.
	if len(lines) != 1+1+16 {
		t.Fatalf("got %d lines, want 18:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "Shot histogram (1 iterations):") {
		t.Errorf("histogram header missing:\n%s", out)
	}
	// The top count fills the full bar width and carries the valid mark.
	if !strings.Contains(out, "  1100 * |"+strings.Repeat("#", 40)+"| 80") {
		t.Errorf("full bar for 1100 missing:\n%s", out)
	}
	// 20/80 of the width is 10 characters.
	if !strings.Contains(out, "  0000   |"+strings.Repeat("#", 10)) {
		t.Errorf("scaled bar for 0000 missing:\n%s", out)
	}
	// Unobserved states still render, with empty bars.
	if !strings.Contains(out, "  1111   |") {
		t.Errorf("zero-count bar for 1111 missing:\n%s", out)
	}
}

func TestLogFileName(t *testing.T) {
	ts := time.Date(2026, 8, 30, 14, 5, 9, 0, time.UTC)
	if got := LogFileName(ts); got != "grover_results_20260830_140509.txt" {
		t.Errorf("LogFileName = %q", got)
	}
}

func TestCreateLogFile(t *testing.T) {
	dir := t.TempDir()
	f, err := CreateLogFile(dir, time.Now())
	if err != nil {
		t.Fatalf("CreateLogFile failed: %v", err)
	}
	defer f.Close()

	if _, err := f.WriteString("hello\n"); err != nil {
		t.Errorf("write to log file failed: %v", err)
	}
	if !strings.HasPrefix(f.Name(), dir) {
		t.Errorf("log file %q not under %q", f.Name(), dir)
	}
}
