// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// Each path is its own database file. Unlike a long-running server, the
// console program opens the database right before a load or save and
// closes it again when the operation returns, so there is no pool kept
// alive between menu choices.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/student-roster/internal/storage"
	"github.com/aanand-mishra/student-roster/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// Schema:
//
//	position   - 0-based index in the roster, keeps insertion order
//	number     - the student's number as shown to the user
//	first_name - single token, bounded by the NameRule
//	last_name  - same
const createTable = `
	CREATE TABLE IF NOT EXISTS students (
		position   INTEGER PRIMARY KEY,
		number     INTEGER NOT NULL,
		first_name TEXT    NOT NULL,
		last_name  TEXT    NOT NULL
	)
`

// SQLite is the database implementation of storage.Storage.
type SQLite struct {
	rule *types.NameRule
}

// New returns a SQLite store that accepts names passing rule.
func New(rule *types.NameRule) *SQLite {
	return &SQLite{rule: rule}
}

// open connects to the database file at path in the given SQLite URI
// mode ("ro" or "rwc").
//
// sql.Open does NOT open a real connection, so Ping is what actually
// touches the file. A read-only open of a missing file fails there, which
// is how Load reports a path that does not exist.
func open(path, mode string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=%s", path, mode))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrFileOpen, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %w", storage.ErrFileOpen, err)
	}

	return db, nil
}

// Load reads the students table ordered by position. A database without
// the table is an empty roster. Reading stops at the first row whose
// names the rule rejects.
func (s *SQLite) Load(path string) ([]types.Student, error) {
	db, err := open(path, "ro")
	if err != nil {
		return nil, fmt.Errorf("sqlite.Load: open %s: %w", path, err)
	}
	defer db.Close()

	var tables int
	err = db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'students'",
	).Scan(&tables)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Load: lookup table: %w", err)
	}

	// Pre-allocate an empty (non-nil) slice.
	students := make([]types.Student, 0)
	if tables == 0 {
		return students, nil
	}

	rows, err := db.Query(
		// Explicitly list columns so Scan's ordering never depends on the
		// table definition.
		"SELECT number, first_name, last_name FROM students ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite.Load: query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var student types.Student

		if err := rows.Scan(
			&student.Number,
			&student.FirstName,
			&student.LastName,
		); err != nil {
			return nil, fmt.Errorf("sqlite.Load: scan row: %w", err)
		}

		if !s.rule.Valid(student) {
			break
		}

		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite.Load: rows iteration: %w", err)
	}

	return students, nil
}

// Save replaces the table contents with students inside one transaction,
// so a failed save leaves the previous roster in place.
func (s *SQLite) Save(path string, students []types.Student) error {
	db, err := open(path, "rwc")
	if err != nil {
		return fmt.Errorf("sqlite.Save: open %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("sqlite.Save: begin: %w", err)
	}
	// Rollback after a successful Commit is a no-op returning ErrTxDone.
	defer tx.Rollback()

	if _, err := tx.Exec(createTable); err != nil {
		return fmt.Errorf("sqlite.Save: create table: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM students"); err != nil {
		return fmt.Errorf("sqlite.Save: clear table: %w", err)
	}

	// Prepared statements keep the values out of the SQL text.
	stmt, err := tx.Prepare(
		"INSERT INTO students (position, number, first_name, last_name) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("sqlite.Save: prepare: %w", err)
	}
	defer stmt.Close()

	for i, st := range students {
		if _, err := stmt.Exec(i, st.Number, st.FirstName, st.LastName); err != nil {
			return fmt.Errorf("sqlite.Save: insert student %d: %w", st.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite.Save: commit: %w", err)
	}

	return nil
}
