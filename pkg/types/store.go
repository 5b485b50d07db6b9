package types

import "errors"

// Store defines the interface for run-history persistence. Callers attach to
// a backend, save and read runs, and detach when done.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns ErrAlreadyAttached
	// if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, all other operations return ErrStoreDetached.
	Detach() error

	// SaveRun persists a run and returns its generated ID.
	SaveRun(run *Run) (string, error)

	// GetRun retrieves a run with its full frequency table.
	// Returns ErrRunNotFound if no run has the given ID.
	GetRun(id string) (*Run, error)

	// ListRuns returns all runs, newest first, without their outcome rows.
	ListRuns() ([]*Run, error)
}

// Store lifecycle and lookup errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrRunNotFound     = errors.New("run not found")
	ErrInvalidID       = errors.New("invalid id")
)
