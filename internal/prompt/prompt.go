// Package prompt reads line-oriented answers from an interactive terminal.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNoInput is returned when input ends before an answer was given.
var ErrNoInput = errors.New("no input: stdin closed")

// Prompter asks the user questions. Every method returns ctx.Err() as soon as
// ctx is cancelled, even while waiting for input.
type Prompter interface {
	// Text returns the trimmed answer, or def when the answer is empty.
	Text(ctx context.Context, question, def string) (string, error)
	// YesNo keeps asking until yes, no, or an empty answer (def) is given.
	YesNo(ctx context.Context, question string, def bool) (bool, error)
	// Acknowledge waits for the user to press Enter.
	Acknowledge(ctx context.Context, question string) error
}

type line struct {
	text string
	err  error
}

// LinePrompter implements Prompter over a reader and writer. It is meant for a
// single goroutine; a read abandoned by cancellation is handed to the next question.
type LinePrompter struct {
	in      *bufio.Reader
	out     io.Writer
	pending chan line
}

// New returns a LinePrompter reading from in and writing questions to out.
func New(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) readLine(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(p.out, question); err != nil {
		return "", err
	}

	if p.pending == nil {
		ch := make(chan line, 1)
		go func() {
			text, err := p.in.ReadString('\n')
			ch <- line{text: text, err: err}
		}()
		p.pending = ch
	}

	var l line
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l = <-p.pending:
		p.pending = nil
	}

	if l.err != nil {
		if errors.Is(l.err, io.EOF) && l.text != "" {
			return strings.TrimSpace(l.text), nil
		}
		if errors.Is(l.err, io.EOF) {
			return "", ErrNoInput
		}
		return "", l.err
	}
	return strings.TrimSpace(l.text), nil
}

// Text implements Prompter.
func (p *LinePrompter) Text(ctx context.Context, question, def string) (string, error) {
	answer, err := p.readLine(ctx, question)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// YesNo implements Prompter.
func (p *LinePrompter) YesNo(ctx context.Context, question string, def bool) (bool, error) {
	for {
		answer, err := p.readLine(ctx, question)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if _, err := fmt.Fprintln(p.out, "Please answer with yes or no."); err != nil {
			return false, err
		}
	}
}

// Acknowledge implements Prompter.
func (p *LinePrompter) Acknowledge(ctx context.Context, question string) error {
	_, err := p.readLine(ctx, question)
	return err
}

// IsTerminal reports whether r is a file attached to a terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
