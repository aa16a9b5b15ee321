// Package roster is the in-memory record store: an ordered, growable
// collection of students.
//
// A Roster is owned by whoever creates it (the entry point) and handed to
// the menu handlers by pointer. There is no package-level state, and no
// locking: the program is a single-goroutine console loop.
package roster

import (
	"fmt"
	"io"

	"github.com/aanand-mishra/student-roster/internal/types"
	"github.com/aanand-mishra/student-roster/internal/utils/notice"
)

// NameSource supplies the first and last name of the record that is about
// to receive the given number. The menu's console reader implements it;
// tests pass a canned list.
type NameSource interface {
	Names(number int) (first, last string, err error)
}

// Roster holds students in insertion order.
type Roster struct {
	students []types.Student
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{}
}

// Len returns the number of stored students.
func (r *Roster) Len() int {
	return len(r.students)
}

// Students returns a copy of the stored students, in order.
func (r *Roster) Students() []types.Student {
	out := make([]types.Student, len(r.students))
	copy(out, r.students)
	return out
}

// Append grows the roster by count records. The i-th new record (1-based)
// gets Number = previous length + i and its names from src.
//
// count <= 0 appends nothing. If src fails, the records completed before
// the failure stay in the roster and the error is returned.
func (r *Roster) Append(count int, src NameSource) error {
	start := len(r.students)

	for i := 1; i <= count; i++ {
		number := start + i

		first, last, err := src.Names(number)
		if err != nil {
			return fmt.Errorf("roster.Append: student %d: %w", number, err)
		}

		r.students = append(r.students, types.Student{
			Number:    number,
			FirstName: first,
			LastName:  last,
		})
	}

	return nil
}

// Replace discards the current contents and stores a copy of students.
func (r *Roster) Replace(students []types.Student) {
	r.students = make([]types.Student, len(students))
	copy(r.students, students)
}

// Print writes one line per student, or a single notice when the roster
// is empty.
//
// Line format:
//
//	Schueler 1: Nummer: 1, Vorname: Anna, Nachname: Berger
func (r *Roster) Print(w io.Writer) error {
	if len(r.students) == 0 {
		return notice.Write(w, notice.NoStudents)
	}

	for i, s := range r.students {
		if err := notice.Writef(w, notice.StudentLine, i+1, s.Number, s.FirstName, s.LastName); err != nil {
			return fmt.Errorf("roster.Print: %w", err)
		}
	}

	return nil
}
