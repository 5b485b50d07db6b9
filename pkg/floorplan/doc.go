// Package floorplan holds the room-layout domain rules searched by the
// qarchitect tool, and their compilation into qsim phase oracles.
//
// A layout is a bitstring over room qubits where 1 means the room is public
// and 0 means it is private. Rules are pure predicates over that bitstring
// paired with a reversible-circuit program, so a new rule can be added
// without touching the simulator.
package floorplan
