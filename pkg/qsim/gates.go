package qsim

import (
	"fmt"
	"math"
)

// hFactor is the 1/√2 entry of the Hadamard matrix.
var hFactor = complex(1/math.Sqrt2, 0)

// checkQubits validates that every index addresses a qubit in the register.
func (s *StateVector) checkQubits(qubits ...int) error {
	for _, q := range qubits {
		if q < 0 || q >= s.qubits {
			return fmt.Errorf("%w: qubit %d of %d", ErrQubitIndex, q, s.qubits)
		}
	}
	return nil
}

// ApplyH applies the Hadamard gate to qubit q, mixing every amplitude pair
// that differs only in that qubit's bit.
func (s *StateVector) ApplyH(q int) error {
	if err := s.checkQubits(q); err != nil {
		return err
	}
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			a0, a1 := s.amps[i], s.amps[j]
			s.amps[i] = hFactor * (a0 + a1)
			s.amps[j] = hFactor * (a0 - a1)
		}
	}
	return nil
}

// ApplyX applies the Pauli-X (NOT) gate to qubit q.
func (s *StateVector) ApplyX(q int) error {
	if err := s.checkQubits(q); err != nil {
		return err
	}
	bit := 1 << q
	for i := range s.amps {
		if i&bit == 0 {
			j := i | bit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
	return nil
}

// ApplyZ applies the Pauli-Z gate to qubit q, flipping the phase of every
// basis state where q is 1.
func (s *StateVector) ApplyZ(q int) error {
	if err := s.checkQubits(q); err != nil {
		return err
	}
	bit := 1 << q
	for i := range s.amps {
		if i&bit != 0 {
			s.amps[i] = -s.amps[i]
		}
	}
	return nil
}

// ApplyControlledX applies X to the target qubit on the subspace where every
// control qubit is 1. With no controls it degenerates to ApplyX; with one
// control it is CNOT, with two a Toffoli.
func (s *StateVector) ApplyControlledX(controls []int, target int) error {
	if err := s.checkQubits(append(append([]int{}, controls...), target)...); err != nil {
		return err
	}
	mask := 0
	for _, c := range controls {
		mask |= 1 << c
	}
	tBit := 1 << target
	for i := range s.amps {
		if i&mask == mask && i&tBit == 0 {
			j := i | tBit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
	return nil
}

// ApplyControlledZ flips the phase of every basis state where the target and
// all control qubits are 1. The gate is symmetric in its operands; the
// control/target split only mirrors circuit notation.
func (s *StateVector) ApplyControlledZ(controls []int, target int) error {
	if err := s.checkQubits(append(append([]int{}, controls...), target)...); err != nil {
		return err
	}
	mask := 1 << target
	for _, c := range controls {
		mask |= 1 << c
	}
	for i := range s.amps {
		if i&mask == mask {
			s.amps[i] = -s.amps[i]
		}
	}
	return nil
}
