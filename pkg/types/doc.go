// Package types defines the Store interface, the Run entity recorded for
// every Grover search, and the configuration and standard errors shared by
// the qarchitect storage layer and CLI.
package types
