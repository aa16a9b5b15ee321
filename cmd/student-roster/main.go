// main is the entry point of the student roster console program.
//
// STARTUP SEQUENCE:
//  1. Load configuration (optional YAML file, env vars, defaults)
//  2. Initialise the logger
//  3. Build the storage stack (text files, SQLite by extension)
//  4. Register the menu handlers
//  5. Run the menu until the user picks 0 or stdin closes
//
// RUNNING:
//
//	go run ./cmd/student-roster
//
// or with a config file:
//
//	go run ./cmd/student-roster --config=config/local.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/student-roster/internal/config"
	"github.com/aanand-mishra/student-roster/internal/console/prompt"
	"github.com/aanand-mishra/student-roster/internal/menu"
	"github.com/aanand-mishra/student-roster/internal/menu/handlers/student"
	"github.com/aanand-mishra/student-roster/internal/roster"
	"github.com/aanand-mishra/student-roster/internal/storage/router"
	"github.com/aanand-mishra/student-roster/internal/storage/sqlite"
	"github.com/aanand-mishra/student-roster/internal/storage/textfile"
	"github.com/aanand-mishra/student-roster/internal/types"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "student-roster",
		Short: "Interactive class list: enter, print, load and save students",
		Long: `student-roster keeps a list of students in memory.

Pick a menu option to add students, print the list, or load and save it.
Paths ending in .db, .sqlite or .sqlite3 are stored as SQLite databases,
everything else as plain text ("<number> <first> <last>" per line).`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the configuration YAML file")

	return cmd
}

func run(configPath string, in io.Reader, out io.Writer) error {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad(configPath)

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// Logs never go to stdout: that stream belongs to the menu dialogue.
	logOut := io.Writer(os.Stderr)
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	log := setupLogger(cfg.Env, logOut)
	// Handlers log through the package-level slog functions.
	slog.SetDefault(log)

	log.Info("starting student-roster",
		slog.String("env", cfg.Env),
		slog.Int("max_name_length", cfg.Roster.MaxNameLength))

	// ── 3. Storage ────────────────────────────────────────────────────────
	rule := types.NewNameRule(cfg.Roster.MaxNameLength)

	store := router.New(textfile.New(rule))
	store.Register(sqlite.New(rule), cfg.Storage.SQLiteExtensions...)

	// ── 4. Menu ───────────────────────────────────────────────────────────
	// The roster is owned here and lent to the handlers; it lives exactly
	// as long as the menu runs.
	//
	// Option table:
	//   0 → exit (built into the menu)
	//   1 → add students
	//   2 → print students
	//   3 → load from file
	//   4 → save to file
	r := roster.New()

	m := menu.New(prompt.New(in, out))
	m.Handle(1, student.Append(r, rule))
	m.Handle(2, student.Print(r))
	m.Handle(3, student.Load(r, store))
	m.Handle(4, student.Save(r, store))

	// ── 5. Run ────────────────────────────────────────────────────────────
	if err := m.Run(); err != nil {
		log.Error("menu stopped", slog.String("error", err.Error()))
		return err
	}

	log.Info("student-roster stopped", slog.Int("students", r.Len()))
	return nil
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string, w io.Writer) *slog.Logger {
	switch env {
	case "dev":
		return slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "prod" and anything unrecognised
		return slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}
