package qsim

import (
	"errors"
	"fmt"
)

// Oracle construction errors.
var (
	// ErrResultQubit is returned when an oracle is built with a result qubit
	// that is not one of its allocated ancillas.
	ErrResultQubit = errors.New("oracle result qubit must be an allocated ancilla")

	// ErrNoAncillas is returned when an oracle is built before any ancilla
	// has been allocated.
	ErrNoAncillas = errors.New("oracle requires at least one ancilla")
)

// Instruction is one reversible gate in an oracle program: a multi-controlled
// X on Target, applied when every qubit in Controls is 1. An empty Controls
// slice is a plain X. Every instruction is self-inverse, which is what makes
// uncomputation a simple reversed replay.
type Instruction struct {
	Controls []int
	Target   int
}

// Oracle is a phase-flip unitary compiled from a predicate. Applying it runs
// the compute program, flips the phase of the subspace where the result
// ancilla is 1, then uncomputes, so every ancilla is back in |0⟩ and only
// the marked data states carry a flipped sign.
//
// An oracle is immutable once built and is reused across Grover iterations.
type Oracle struct {
	dataQubits int
	ancillas   int
	result     int
	program    []Instruction
}

// DataQubits returns the number of data qubits the oracle marks over.
func (o *Oracle) DataQubits() int {
	return o.dataQubits
}

// TotalQubits returns the register width the oracle needs: data qubits plus
// its ancillas.
func (o *Oracle) TotalQubits() int {
	return o.dataQubits + o.ancillas
}

// Apply executes compute, phase flip, uncompute against the register.
// The register must be exactly TotalQubits wide.
func (o *Oracle) Apply(s *StateVector) error {
	if s.Qubits() != o.TotalQubits() {
		return fmt.Errorf("%w: oracle needs %d qubits, register has %d",
			ErrQubitIndex, o.TotalQubits(), s.Qubits())
	}
	for _, in := range o.program {
		if err := s.ApplyControlledX(in.Controls, in.Target); err != nil {
			return err
		}
	}
	if err := s.ApplyZ(o.result); err != nil {
		return err
	}
	// Reversed replay restores every ancilla to |0⟩ no matter which branch
	// of the predicate logic fired.
	for i := len(o.program) - 1; i >= 0; i-- {
		in := o.program[i]
		if err := s.ApplyControlledX(in.Controls, in.Target); err != nil {
			return err
		}
	}
	return nil
}

// OracleBuilder assembles an oracle program over a declared number of data
// qubits. Ancillas are allocated through the builder so the compiled oracle
// knows the exact register width it owns; instruction validation errors are
// recorded and surfaced once at Build.
type OracleBuilder struct {
	dataQubits int
	ancillas   int
	program    []Instruction
	err        error
}

// NewOracleBuilder starts an oracle over the given number of data qubits.
func NewOracleBuilder(dataQubits int) (*OracleBuilder, error) {
	if dataQubits < 1 {
		return nil, fmt.Errorf("%w: %d", ErrQubitCount, dataQubits)
	}
	return &OracleBuilder{dataQubits: dataQubits}, nil
}

// DataQubits returns the declared data-qubit count.
func (b *OracleBuilder) DataQubits() int {
	return b.dataQubits
}

// Ancilla allocates a fresh ancilla qubit and returns its index. Ancillas
// sit above the data qubits in the register.
func (b *OracleBuilder) Ancilla() int {
	idx := b.dataQubits + b.ancillas
	b.ancillas++
	return idx
}

// ControlledX appends a multi-controlled X instruction to the program.
func (b *OracleBuilder) ControlledX(controls []int, target int) {
	if b.err != nil {
		return
	}
	width := b.dataQubits + b.ancillas
	for _, q := range append(append([]int{}, controls...), target) {
		if q < 0 || q >= width {
			b.err = fmt.Errorf("%w: qubit %d of %d", ErrQubitIndex, q, width)
			return
		}
	}
	b.program = append(b.program, Instruction{Controls: controls, Target: target})
}

// X appends an uncontrolled X instruction to the program.
func (b *OracleBuilder) X(target int) {
	b.ControlledX(nil, target)
}

// Build finalizes the oracle with the given result ancilla. The phase flip
// is applied where this qubit is 1 after the compute program runs.
func (b *OracleBuilder) Build(result int) (*Oracle, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.ancillas == 0 {
		return nil, ErrNoAncillas
	}
	if result < b.dataQubits || result >= b.dataQubits+b.ancillas {
		return nil, fmt.Errorf("%w: qubit %d", ErrResultQubit, result)
	}
	program := make([]Instruction, len(b.program))
	copy(program, b.program)
	return &Oracle{
		dataQubits: b.dataQubits,
		ancillas:   b.ancillas,
		result:     result,
		program:    program,
	}, nil
}
