// Package menu runs the numbered console menu.
//
// The loop is the console counterpart of an HTTP router: handlers are
// registered per option number at startup, and every iteration reads one
// option and dispatches to the matching handler.
//
//	m := menu.New(p)
//	m.Handle(1, student.Append(r, rule))
//	m.Handle(2, student.Print(r))
//	err := m.Run()
//
// Option 0 is reserved: it ends the loop.
package menu

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aanand-mishra/student-roster/internal/console/prompt"
	"github.com/aanand-mishra/student-roster/internal/utils/notice"
)

// ExitOption terminates Run.
const ExitOption = 0

// HandlerFunc serves one menu option. It prompts through p and reports
// user-facing problems itself; a returned error is unexpected and gets
// logged and shown as a general notice. io.EOF ends the loop.
type HandlerFunc func(p *prompt.Prompter) error

// Menu dispatches numbered options to handlers.
type Menu struct {
	p        *prompt.Prompter
	handlers map[int]HandlerFunc
}

// New returns a Menu reading options through p.
func New(p *prompt.Prompter) *Menu {
	return &Menu{
		p:        p,
		handlers: make(map[int]HandlerFunc),
	}
}

// Handle registers h for option. Registering ExitOption or the same option
// twice is a programming error and panics, like http.ServeMux does for
// duplicate patterns.
func (m *Menu) Handle(option int, h HandlerFunc) {
	if option == ExitOption {
		panic("menu: option 0 is reserved for exit")
	}
	if _, dup := m.handlers[option]; dup {
		panic(fmt.Sprintf("menu: multiple registrations for option %d", option))
	}
	m.handlers[option] = h
}

// Run shows the menu and serves options until the user picks ExitOption
// or the input ends. Invalid input is reported and the loop continues;
// only an unreadable input stream makes Run return an error.
func (m *Menu) Run() error {
	out := m.p.Out()

	for {
		option, err := m.p.Int(notice.Menu)
		switch {
		case errors.Is(err, io.EOF):
			slog.Info("input closed, leaving menu")
			return nil
		case errors.Is(err, prompt.ErrNotANumber):
			slog.Debug("menu option is not a number", slog.String("error", err.Error()))
			_ = notice.Write(out, notice.InvalidNumber)
			continue
		case err != nil:
			return fmt.Errorf("menu.Run: read option: %w", err)
		}

		if option == ExitOption {
			slog.Info("exit selected")
			return nil
		}

		h, ok := m.handlers[option]
		if !ok {
			slog.Debug("unknown menu option", slog.Int("option", option))
			_ = notice.Write(out, notice.InvalidOption)
			continue
		}

		if err := h(m.p); err != nil {
			if errors.Is(err, io.EOF) {
				slog.Info("input closed during option, leaving menu", slog.Int("option", option))
				return nil
			}

			slog.Error("menu option failed",
				slog.Int("option", option),
				slog.String("error", err.Error()))
			_ = notice.Write(out, notice.GeneralError(err))
		}
	}
}
