// Package prompt reads whitespace-delimited tokens from an interactive
// console.
//
// Input is token oriented, not line oriented: a user may type
// "1 2 Anna Berger" on one line and each prompt consumes the next token,
// just as if the answers had been typed one per line. The only place line
// boundaries matter is error recovery: after a token that is not a number,
// the remainder of that line is thrown away so the next prompt starts on
// fresh input.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"
)

// ErrNotANumber is returned by Int when the token read is not a base-10
// integer.
var ErrNotANumber = errors.New("not a number")

// Prompter writes labels to out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter over the given console streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Out returns the writer labels are written to, so callers can print
// notices on the same stream.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Token writes label (if any) and returns the next token. Leading
// whitespace, including newlines, is skipped. io.EOF is returned when the
// input ends before any token character.
func (p *Prompter) Token(label string) (string, error) {
	if label != "" {
		if _, err := io.WriteString(p.out, label); err != nil {
			return "", fmt.Errorf("prompt.Token: write label: %w", err)
		}
	}

	return p.readToken()
}

// Int writes label and reads one token as a base-10 integer. When the
// token does not parse, the rest of the current line is discarded and the
// returned error wraps ErrNotANumber.
func (p *Prompter) Int(label string) (int, error) {
	tok, err := p.Token(label)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(tok)
	if err != nil {
		p.discardLine()
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, tok)
	}

	return n, nil
}

func (p *Prompter) readToken() (string, error) {
	var tok []rune

	// skip leading whitespace
	for {
		r, _, err := p.in.ReadRune()
		if err != nil {
			return "", err
		}
		if !unicode.IsSpace(r) {
			tok = append(tok, r)
			break
		}
	}

	for {
		r, _, err := p.in.ReadRune()
		if errors.Is(err, io.EOF) {
			return string(tok), nil
		}
		if err != nil {
			return "", err
		}
		if unicode.IsSpace(r) {
			// Leave the delimiter in place; discardLine relies on seeing
			// the newline that ended a malformed token.
			_ = p.in.UnreadRune()
			return string(tok), nil
		}
		tok = append(tok, r)
	}
}

func (p *Prompter) discardLine() {
	_, _ = p.in.ReadString('\n')
}
