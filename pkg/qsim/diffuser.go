package qsim

// Diffuser is the Grover inversion-about-mean operator over the first
// dataQubits qubits of a register. It carries no state; the struct exists so
// callers construct it once and reuse it across iterations, mirroring how
// oracles are reused.
type Diffuser struct {
	dataQubits int
}

// NewDiffuser creates a diffuser over the given number of data qubits.
func NewDiffuser(dataQubits int) (*Diffuser, error) {
	if dataQubits < 1 {
		return nil, ErrQubitCount
	}
	return &Diffuser{dataQubits: dataQubits}, nil
}

// Apply performs H on every data qubit, a phase flip on the all-zero data
// state, and H again. Ancilla qubits above the data block are untouched.
func (d *Diffuser) Apply(s *StateVector) error {
	for q := 0; q < d.dataQubits; q++ {
		if err := s.ApplyH(q); err != nil {
			return err
		}
	}
	// X-conjugated controlled Z puts the -1 on |0...0⟩ instead of |1...1⟩.
	for q := 0; q < d.dataQubits; q++ {
		if err := s.ApplyX(q); err != nil {
			return err
		}
	}
	controls := make([]int, 0, d.dataQubits-1)
	for q := 0; q < d.dataQubits-1; q++ {
		controls = append(controls, q)
	}
	if err := s.ApplyControlledZ(controls, d.dataQubits-1); err != nil {
		return err
	}
	for q := 0; q < d.dataQubits; q++ {
		if err := s.ApplyX(q); err != nil {
			return err
		}
	}
	for q := 0; q < d.dataQubits; q++ {
		if err := s.ApplyH(q); err != nil {
			return err
		}
	}
	return nil
}
