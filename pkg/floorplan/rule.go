package floorplan

import (
	"errors"
	"fmt"

	"github.com/form-foundry/qarchitect/pkg/qsim"
)

// ErrRuleArity is returned when a rule's bit width does not match the
// qubit count it is compiled against.
var ErrRuleArity = errors.New("rule arity does not match qubit count")

// Rule is a validity predicate over a room-layout bitstring together with
// its reversible-circuit form. Holds is the classical truth table; Program
// emits the same predicate as oracle instructions and returns the ancilla
// that ends up holding the result.
//
// Rules are defined once per search and never mutated.
type Rule interface {
	// Name identifies the rule in reports and stored runs.
	Name() string

	// Bits is the number of room qubits the rule ranges over.
	Bits() int

	// Holds reports whether the layout encoded in the low Bits() bits of
	// state satisfies the rule. Qubit q is bit q of state.
	Holds(state int) bool

	// Program appends the rule's compute circuit to the builder and returns
	// the result ancilla. Uncomputation is not the rule's concern; the
	// oracle scaffolding replays the program in reverse.
	Program(b *qsim.OracleBuilder) (result int, err error)
}

// Compile builds the phase oracle for a rule over the given number of room
// qubits. Returns ErrRuleArity if the rule was written for a different
// register width.
func Compile(rule Rule, qubits int) (*qsim.Oracle, error) {
	if rule.Bits() != qubits {
		return nil, fmt.Errorf("%w: rule %q wants %d bits, register has %d",
			ErrRuleArity, rule.Name(), rule.Bits(), qubits)
	}
	b, err := qsim.NewOracleBuilder(qubits)
	if err != nil {
		return nil, err
	}
	result, err := rule.Program(b)
	if err != nil {
		return nil, fmt.Errorf("compiling rule %q: %w", rule.Name(), err)
	}
	oracle, err := b.Build(result)
	if err != nil {
		return nil, fmt.Errorf("compiling rule %q: %w", rule.Name(), err)
	}
	return oracle, nil
}

// ValidStates enumerates the basis states accepted by a rule, in ascending
// index order.
func ValidStates(rule Rule) []int {
	var states []int
	for state := 0; state < 1<<rule.Bits(); state++ {
		if rule.Holds(state) {
			states = append(states, state)
		}
	}
	return states
}
