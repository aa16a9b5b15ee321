// Package textfile stores students as plain text, one record per line:
//
//	1 Anna Berger
//	2 Ben Huber
//
// Reading is token based rather than line based. The file is treated as a
// stream of whitespace-delimited triples (number, first name, last name),
// so line breaks inside a triple are tolerated and a short trailing line
// simply ends the stream.
package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/aanand-mishra/student-roster/internal/storage"
	"github.com/aanand-mishra/student-roster/internal/types"
)

// Store is the plain text implementation of storage.Storage.
type Store struct {
	rule *types.NameRule
}

// New returns a Store that accepts names passing rule.
func New(rule *types.NameRule) *Store {
	return &Store{rule: rule}
}

// Load opens path and parses triples until the first one that is
// incomplete, has a non-integer number, or carries a name the rule
// rejects. Everything from that point on is ignored.
func (s *Store) Load(path string) ([]types.Student, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("textfile.Load: open %s: %w: %w", path, storage.ErrFileOpen, err)
	}
	// defer guarantees the handle is released on every return below.
	defer f.Close()

	if fi, err := f.Stat(); err == nil && fi.IsDir() {
		return nil, fmt.Errorf("textfile.Load: open %s: %w: is a directory", path, storage.ErrFileOpen)
	}

	students, err := s.parse(f)
	if err != nil {
		return nil, fmt.Errorf("textfile.Load: read %s: %w", path, err)
	}

	return students, nil
}

func (s *Store) parse(r io.Reader) ([]types.Student, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	// non-nil so callers can range and len without a nil check
	students := make([]types.Student, 0)

	for {
		var fields [3]string
		complete := true
		for i := range fields {
			if !scanner.Scan() {
				complete = false
				break
			}
			fields[i] = scanner.Text()
		}
		if !complete {
			break
		}

		number, err := strconv.Atoi(fields[0])
		if err != nil {
			break
		}

		student := types.Student{Number: number, FirstName: fields[1], LastName: fields[2]}
		if !s.rule.Valid(student) {
			break
		}

		students = append(students, student)
	}

	// An absurdly long token is a malformed record like any other.
	if err := scanner.Err(); err != nil && !errors.Is(err, bufio.ErrTooLong) {
		return nil, err
	}

	return students, nil
}

// Save truncates (or creates) path and writes one "<number> <first> <last>"
// line per student.
func (s *Store) Save(path string, students []types.Student) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("textfile.Save: open %s: %w: %w", path, storage.ErrFileOpen, err)
	}

	if err := write(f, students); err != nil {
		f.Close()
		return fmt.Errorf("textfile.Save: write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("textfile.Save: close %s: %w", path, err)
	}

	return nil
}

func write(w io.Writer, students []types.Student) error {
	bw := bufio.NewWriter(w)

	for _, st := range students {
		if _, err := fmt.Fprintf(bw, "%d %s %s\n", st.Number, st.FirstName, st.LastName); err != nil {
			return err
		}
	}

	return bw.Flush()
}
