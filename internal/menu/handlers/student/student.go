// Package student contains the menu handlers that work on the roster.
//
// HANDLER PATTERN USED HERE: THE CLOSURE / FACTORY PATTERN
// ────────────────────────────────────────────────────────
// The menu expects handlers with the signature
//
//	func(*prompt.Prompter) error
//
// which has no room for the roster or the storage backend. Each exported
// function here is a factory: it accepts the dependencies once at startup
// and returns the handler that closes over them.
//
//	m.Handle(3, student.Load(r, store))
//	//          ^^^^^^^^^^^^^^^^^^^^^^
//	//          called ONCE at startup; the returned func runs every
//	//          time the user picks option 3.
package student

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/student-roster/internal/console/prompt"
	"github.com/aanand-mishra/student-roster/internal/menu"
	"github.com/aanand-mishra/student-roster/internal/roster"
	"github.com/aanand-mishra/student-roster/internal/storage"
	"github.com/aanand-mishra/student-roster/internal/types"
	"github.com/aanand-mishra/student-roster/internal/utils/notice"
)

// ─────────────────────────────────────────────────────────────────────────────
// Append handles option 1.
// Asks how many students to add, then a first and last name for each.
//
// A non-numeric count is reported and the handler returns to the menu.
// A name the rule rejects is reported and asked for again.
// ─────────────────────────────────────────────────────────────────────────────
func Append(r *roster.Roster, rule *types.NameRule) menu.HandlerFunc {
	return func(p *prompt.Prompter) error {
		slog.Info("appending students")

		count, err := p.Int(notice.CountPrompt)
		if errors.Is(err, prompt.ErrNotANumber) {
			_ = notice.Write(p.Out(), notice.InvalidNumber)
			return nil
		}
		if err != nil {
			return err
		}

		before := r.Len()
		err = r.Append(count, consoleNames{p: p, rule: rule})

		slog.Info("students appended",
			slog.Int("requested", count),
			slog.Int("added", r.Len()-before))

		return err
	}
}

// consoleNames reads names for roster.Append from the console.
type consoleNames struct {
	p    *prompt.Prompter
	rule *types.NameRule
}

func (c consoleNames) Names(number int) (string, string, error) {
	first, err := c.read(fmt.Sprintf(notice.FirstNamePrompt, number), notice.FirstNameField)
	if err != nil {
		return "", "", err
	}

	last, err := c.read(fmt.Sprintf(notice.LastNamePrompt, number), notice.LastNameField)
	if err != nil {
		return "", "", err
	}

	return first, last, nil
}

// read prompts until the answer passes the rule.
func (c consoleNames) read(label, field string) (string, error) {
	for {
		name, err := c.p.Token(label)
		if err != nil {
			return "", err
		}

		err = c.rule.Check(name)
		if err == nil {
			return name, nil
		}

		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return "", err
		}
		_ = notice.Write(c.p.Out(), notice.ValidationError(field, verrs))
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Print handles option 2.
// ─────────────────────────────────────────────────────────────────────────────
func Print(r *roster.Roster) menu.HandlerFunc {
	return func(p *prompt.Prompter) error {
		slog.Info("printing students", slog.Int("count", r.Len()))
		return r.Print(p.Out())
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Load handles option 3.
// Asks for a path and replaces the roster with the records stored there.
//
// Outcomes:
//
//	cannot open   → notice, roster unchanged
//	zero records  → "file is empty" notice, roster becomes empty
//	otherwise     → roster replaced, silently
//
// ─────────────────────────────────────────────────────────────────────────────
func Load(r *roster.Roster, store storage.Storage) menu.HandlerFunc {
	return func(p *prompt.Prompter) error {
		path, err := p.Token(notice.PathPrompt)
		if err != nil {
			return err
		}
		slog.Info("loading students", slog.String("path", path))

		students, err := store.Load(path)
		if errors.Is(err, storage.ErrFileOpen) {
			slog.Warn("cannot open file for reading",
				slog.String("path", path),
				slog.String("error", err.Error()))
			_ = notice.Write(p.Out(), notice.OpenForRead)
			return nil
		}
		if err != nil {
			return err
		}

		r.Replace(students)

		if len(students) == 0 {
			slog.Warn("file holds no students", slog.String("path", path))
			_ = notice.Write(p.Out(), notice.EmptyFile)
			return nil
		}

		slog.Info("students loaded",
			slog.String("path", path),
			slog.Int("count", len(students)))
		return nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Save handles option 4.
// Asks for a path and writes the whole roster there, replacing its content.
// ─────────────────────────────────────────────────────────────────────────────
func Save(r *roster.Roster, store storage.Storage) menu.HandlerFunc {
	return func(p *prompt.Prompter) error {
		path, err := p.Token(notice.PathPrompt)
		if err != nil {
			return err
		}
		slog.Info("saving students", slog.String("path", path), slog.Int("count", r.Len()))

		err = store.Save(path, r.Students())
		if errors.Is(err, storage.ErrFileOpen) {
			slog.Warn("cannot open file for writing",
				slog.String("path", path),
				slog.String("error", err.Error()))
			_ = notice.Write(p.Out(), notice.OpenForWrite)
			return nil
		}
		if err != nil {
			return err
		}

		slog.Info("students saved", slog.String("path", path))
		return notice.Write(p.Out(), notice.Saved)
	}
}
