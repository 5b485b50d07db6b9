package floorplan

import (
	"math/bits"

	"github.com/form-foundry/qarchitect/pkg/qsim"
)

// roomQubits is the register width of the four-room layout problem.
const roomQubits = 4

// adjacencyWindows are the two non-overlapping room pairs that may form a
// public suite: (q0,q1) and (q2,q3). Overlapping pairs like (q1,q2) are
// deliberately not windows.
var adjacencyWindows = [2][2]int{{0, 1}, {2, 3}}

// ExactlyOnePair accepts a layout iff exactly one adjacency window has both
// rooms public. Over four rooms the only accepted layouts are 1100 and 0011.
type ExactlyOnePair struct{}

// Name implements Rule.
func (ExactlyOnePair) Name() string { return "exactly-one-pair" }

// Bits implements Rule.
func (ExactlyOnePair) Bits() int { return roomQubits }

// Holds implements Rule: (q0∧q1) XOR (q2∧q3).
func (ExactlyOnePair) Holds(state int) bool {
	pair0 := state&0b0011 == 0b0011
	pair1 := state&0b1100 == 0b1100
	return pair0 != pair1
}

// Program implements Rule. One ancilla per window records whether both its
// rooms are public; two CNOTs fold them into an XOR result ancilla.
func (ExactlyOnePair) Program(b *qsim.OracleBuilder) (int, error) {
	pair0 := b.Ancilla()
	pair1 := b.Ancilla()
	result := b.Ancilla()

	b.ControlledX(adjacencyWindows[0][:], pair0)
	b.ControlledX(adjacencyWindows[1][:], pair1)
	b.ControlledX([]int{pair0}, result)
	b.ControlledX([]int{pair1}, result)
	return result, nil
}

// TwoPublicOnePair additionally demands exactly two public rooms overall.
// Over four rooms it accepts the same layouts as ExactlyOnePair; the extra
// condition exists to exercise the pattern-toggle counting circuit, which
// matters once the rule set grows beyond two windows.
type TwoPublicOnePair struct{}

// Name implements Rule.
func (TwoPublicOnePair) Name() string { return "two-public-one-pair" }

// Bits implements Rule.
func (TwoPublicOnePair) Bits() int { return roomQubits }

// Holds implements Rule.
func (TwoPublicOnePair) Holds(state int) bool {
	if bits.OnesCount(uint(state&0b1111)) != 2 {
		return false
	}
	return ExactlyOnePair{}.Holds(state)
}

// Program implements Rule. The two-of-four count is computed by toggling the
// count ancilla once per matching pattern: X the must-be-zero qubits, apply a
// four-controlled X, undo the Xs. The adjacency XOR is computed as in
// ExactlyOnePair, and the result ancilla is the AND of count and XOR.
func (TwoPublicOnePair) Program(b *qsim.OracleBuilder) (int, error) {
	count := b.Ancilla()
	pair0 := b.Ancilla()
	pair1 := b.Ancilla()
	xor := b.Ancilla()
	result := b.Ancilla()

	allRooms := []int{0, 1, 2, 3}
	for state := 0; state < 1<<roomQubits; state++ {
		if bits.OnesCount(uint(state)) != 2 {
			continue
		}
		for _, q := range allRooms {
			if state>>q&1 == 0 {
				b.X(q)
			}
		}
		b.ControlledX(allRooms, count)
		for _, q := range allRooms {
			if state>>q&1 == 0 {
				b.X(q)
			}
		}
	}

	b.ControlledX(adjacencyWindows[0][:], pair0)
	b.ControlledX(adjacencyWindows[1][:], pair1)
	b.ControlledX([]int{pair0}, xor)
	b.ControlledX([]int{pair1}, xor)

	b.ControlledX([]int{count, xor}, result)
	return result, nil
}

// Never rejects every layout. Its oracle compiles to a no-op phase flip,
// which is the identically-false edge case of the oracle contract.
type Never struct{}

// Name implements Rule.
func (Never) Name() string { return "never" }

// Bits implements Rule.
func (Never) Bits() int { return roomQubits }

// Holds implements Rule.
func (Never) Holds(int) bool { return false }

// Program implements Rule: the result ancilla is allocated but never set.
func (Never) Program(b *qsim.OracleBuilder) (int, error) {
	return b.Ancilla(), nil
}

// Always accepts every layout. Its oracle flips a global phase, leaving all
// probabilities untouched.
type Always struct{}

// Name implements Rule.
func (Always) Name() string { return "always" }

// Bits implements Rule.
func (Always) Bits() int { return roomQubits }

// Holds implements Rule.
func (Always) Holds(int) bool { return true }

// Program implements Rule: the result ancilla is set unconditionally.
func (Always) Program(b *qsim.OracleBuilder) (int, error) {
	result := b.Ancilla()
	b.X(result)
	return result, nil
}

// Rules lists the selectable rules by name, for the CLI and config layer.
var Rules = map[string]Rule{
	ExactlyOnePair{}.Name():   ExactlyOnePair{},
	TwoPublicOnePair{}.Name(): TwoPublicOnePair{},
}
