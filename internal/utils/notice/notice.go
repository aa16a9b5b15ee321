// Package notice provides helpers for writing consistent console notices.
//
// Every menu handler talks to the user in the same fixed German phrases.
// Rather than scattering string literals across handlers, the phrases live
// here as constants, and the helpers below turn Go errors into one of them.
//
// Consistent wording also keeps the console output stable for anyone
// scripting the program through stdin.
package notice

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Fixed console texts. Use these instead of raw string literals so a typo
// is caught by the compiler rather than silently shown to the user.
const (
	Menu = "\n0. Beenden\n" +
		"1. Eingabe von Schuelern\n" +
		"2. Ausgabe von Schuelern\n" +
		"3. Lesen der Schueler von einem File\n" +
		"4. Schreiben von Schuelern auf ein File\n" +
		"\nEingabe: "

	CountPrompt     = "Wieviele Schueler wollen Sie hinzufuegen?\nEingabe: "
	FirstNamePrompt = "Vorname (Schueler %d): "
	LastNamePrompt  = "Nachname (Schueler %d): "
	PathPrompt      = "Pfad: "

	NoStudents    = "Keine Schueler gespeichert."
	StudentLine   = "Schueler %d: Nummer: %d, Vorname: %s, Nachname: %s"
	InvalidOption = "Ungueltige Eingabe."
	InvalidNumber = "Bitte geben Sie eine gueltige Zahl ein."
	OpenForRead   = "Fehler beim Oeffnen der Datei."
	OpenForWrite  = "Fehler beim Oeffnen der Datei zum Schreiben."
	EmptyFile     = "Die Datei ist leer."
	Saved         = "Schuelerdaten wurden erfolgreich in die Datei geschrieben."

	FirstNameField = "Vorname"
	LastNameField  = "Nachname"
)

// Write prints msg on its own line.
func Write(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

// Writef formats according to format and prints the result on its own line.
func Writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format+"\n", args...)
	return err
}

// GeneralError wraps any unexpected error into a notice line.
//
// Example usage:
//
//	notice.Write(out, notice.GeneralError(err))
func GeneralError(err error) string {
	return "Fehler: " + err.Error()
}

// ValidationError converts the validator's field errors for a single name
// into one readable sentence.
//
// The NameRule validates bare strings with validator.Var, so FieldError
// carries no field name; the caller passes the label to use instead.
//
// Example output:
//
//	Vorname darf hoechstens 19 Zeichen lang sein.
func ValidationError(field string, errs validator.ValidationErrors) string {
	var msgs []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s darf nicht leer sein", field))
		case "max":
			msgs = append(msgs,
				fmt.Sprintf("%s darf hoechstens %s Zeichen lang sein", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s ist ungueltig", field))
		}
	}

	return strings.Join(msgs, ", ") + "."
}
