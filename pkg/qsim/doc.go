// Package qsim is a small statevector quantum circuit simulator built for
// amplitude-amplification searches over a handful of qubits.
//
// The package provides the dense StateVector register, the gate set needed by
// Grover's algorithm (Hadamard, Pauli-X, multi-controlled X and Z), a
// data-driven phase oracle with scoped ancilla management, the diffusion
// operator, the Grover orchestration loop, and a seedable shot sampler.
//
// Bit convention: qubit q occupies bit q of the basis-state index (least
// significant bit), and canonical bitstrings list qubit 0 first. Basis state
// 3 of a 4-qubit register therefore renders as "1100".
package qsim
