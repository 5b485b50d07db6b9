// Package integration tests the full search pipeline: rule compilation,
// Grover iteration, shot sampling, report assembly, and run persistence.
package integration

import (
	"math"
	"testing"

	"github.com/form-foundry/qarchitect/internal/report"
	"github.com/form-foundry/qarchitect/internal/sqlite"
	"github.com/form-foundry/qarchitect/pkg/floorplan"
	"github.com/form-foundry/qarchitect/pkg/qsim"
	"github.com/form-foundry/qarchitect/pkg/types"
)

// runSearch compiles the rule and runs the full pipeline through to a
// persisted Run entity.
func runSearch(t *testing.T, rule floorplan.Rule, iterations, shots int, seed int64) *types.Run {
	t.Helper()

	oracle, err := floorplan.Compile(rule, rule.Bits())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	diffuser, err := qsim.NewDiffuser(rule.Bits())
	if err != nil {
		t.Fatalf("NewDiffuser: %v", err)
	}
	result, err := qsim.Search(oracle, diffuser, iterations)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	counts, err := qsim.NewSampler(seed).Counts(result.Distribution, shots)
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	run, err := report.BuildRun(rule, result, counts, shots, seed)
	if err != nil {
		t.Fatalf("BuildRun: %v", err)
	}
	return run
}

// validShots sums the counts of outcomes the rule marked valid.
func validShots(run *types.Run) int {
	total := 0
	for _, o := range run.Outcomes {
		if o.Valid {
			total += o.Count
		}
	}
	return total
}

func TestSearchAmplifiesValidLayouts(t *testing.T) {
	run := runSearch(t, floorplan.ExactlyOnePair{}, 1, 1000, 42)

	if err := run.Validate(); err != nil {
		t.Fatalf("run does not validate: %v", err)
	}

	// One iteration puts 78.125% of the probability on the two valid
	// layouts. With 1000 shots the sampled fraction stays well above the
	// 12.5% uniform baseline.
	valid := validShots(run)
	if valid < 700 {
		t.Errorf("valid shots = %d/1000, expected amplification above 700", valid)
	}

	// The exact probabilities ride along with the sampled counts.
	for _, o := range run.Outcomes {
		want := 0.015625
		if o.Valid {
			want = 0.390625
		}
		if math.Abs(o.Probability-want) > 1e-9 {
			t.Errorf("outcome %s probability = %v, want %v", o.Bitstring, o.Probability, want)
		}
	}
}

func TestSearchTwoIterationsAmplifiesFurther(t *testing.T) {
	one := runSearch(t, floorplan.ExactlyOnePair{}, 1, 1000, 42)
	two := runSearch(t, floorplan.ExactlyOnePair{}, 2, 1000, 42)

	// 94.5% of the probability sits on valid layouts after two iterations.
	if validShots(two) <= validShots(one) {
		t.Errorf("two iterations (%d valid shots) did not beat one (%d)",
			validShots(two), validShots(one))
	}
	if validShots(two) < 900 {
		t.Errorf("valid shots after two iterations = %d/1000, expected above 900", validShots(two))
	}
}

func TestSearchEmptyRuleStaysUniform(t *testing.T) {
	run := runSearch(t, floorplan.Never{}, 2, 4000, 7)

	if validShots(run) != 0 {
		t.Errorf("never rule produced %d valid shots", validShots(run))
	}
	// An oracle that marks nothing leaves the uniform distribution alone;
	// every layout keeps probability 1/16.
	for _, o := range run.Outcomes {
		if math.Abs(o.Probability-0.0625) > 1e-9 {
			t.Errorf("outcome %s probability = %v, want 0.0625", o.Bitstring, o.Probability)
		}
	}
}

func TestPipelinePersistsAndReloads(t *testing.T) {
	run := runSearch(t, floorplan.TwoPublicOnePair{}, 2, 500, 99)

	store := sqlite.NewStore()
	if err := store.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	t.Cleanup(func() { store.Detach() })

	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, err := store.GetRun(id)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if got.Rule != "two-public-one-pair" || got.Iterations != 2 ||
		got.Shots != 500 || got.Seed != 99 {
		t.Errorf("reloaded run fields mismatch: %+v", got)
	}
	if len(got.Outcomes) != len(run.Outcomes) {
		t.Fatalf("reloaded %d outcomes, want %d", len(got.Outcomes), len(run.Outcomes))
	}
	for i := range got.Outcomes {
		if got.Outcomes[i] != run.Outcomes[i] {
			t.Errorf("outcome[%d] = %+v, want %+v", i, got.Outcomes[i], run.Outcomes[i])
		}
	}

	listed, err := store.ListRuns()
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(listed) != 1 || listed[0].RunID != id {
		t.Errorf("ListRuns = %+v, want single run %s", listed, id)
	}
}

func TestPipelineIsDeterministicPerSeed(t *testing.T) {
	a := runSearch(t, floorplan.ExactlyOnePair{}, 1, 1000, 42)
	b := runSearch(t, floorplan.ExactlyOnePair{}, 1, 1000, 42)

	if len(a.Outcomes) != len(b.Outcomes) {
		t.Fatalf("outcome counts differ: %d vs %d", len(a.Outcomes), len(b.Outcomes))
	}
	for i := range a.Outcomes {
		if a.Outcomes[i] != b.Outcomes[i] {
			t.Errorf("outcome[%d] differs: %+v vs %+v", i, a.Outcomes[i], b.Outcomes[i])
		}
	}

	c := runSearch(t, floorplan.ExactlyOnePair{}, 1, 1000, 43)
	same := len(a.Outcomes) == len(c.Outcomes)
	if same {
		for i := range a.Outcomes {
			if a.Outcomes[i] != c.Outcomes[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical frequency tables")
	}
}
