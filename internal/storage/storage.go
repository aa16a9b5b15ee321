// Package storage defines the Storage interface: the contract any
// persistence backend must satisfy to load and save a roster.
//
// WHY AN INTERFACE?
// ─────────────────
// The menu handlers should not know or care whether a path points at a
// plain text file or a SQLite database. By depending only on this
// interface:
//
//   - Adding a format = implement the interface, register it in the
//     router. Zero handler changes.
//
//   - Writing tests = pass a fake that satisfies the interface.
package storage

import (
	"errors"

	"github.com/aanand-mishra/student-roster/internal/types"
)

// ErrFileOpen is wrapped by every backend when a path cannot be opened in
// the requested mode. Callers match it with errors.Is.
var ErrFileOpen = errors.New("cannot open file")

// Storage is the persistence contract.
type Storage interface {
	// Load reads every well-formed record from path, in stored order.
	// Reading stops silently at the first malformed record. A readable
	// source with no records yields an empty slice and a nil error.
	Load(path string) ([]types.Student, error)

	// Save replaces the contents at path with students, in order.
	Save(path string, students []types.Student) error
}
