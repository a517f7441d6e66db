package handlers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ErrInputClosed is returned when input ends while an answer is expected.
var ErrInputClosed = errors.New("input closed before an answer was given")

var (
	stepColor  = color.New(color.FgCyan, color.Bold)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
	okColor    = color.New(color.FgGreen)
)

// Prompter reads line answers from in and writes questions to out.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter returns a Prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Ask prints question and returns the trimmed answer line.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read answer: %w", err)
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// AskYesNo asks a yes/no question; only "yes" (any case) counts as yes.
func (p *Prompter) AskYesNo(question string) (bool, error) {
	answer, err := p.Ask(question + " (yes/no): ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes"), nil
}

// Step prints a step banner.
func (p *Prompter) Step(n int, title string) {
	fmt.Fprintln(p.out)
	stepColor.Fprintf(p.out, "--- Step %d: %s ---\n", n, title)
}

// Println writes a plain line.
func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Printf writes formatted text.
func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Warn writes a highlighted warning line.
func (p *Prompter) Warn(format string, a ...any) {
	warnColor.Fprintf(p.out, "Warning: "+format+"\n", a...)
}

// Error writes a highlighted error line.
func (p *Prompter) Error(format string, a ...any) {
	errorColor.Fprintf(p.out, "Error: "+format+"\n", a...)
}

// Success writes a highlighted confirmation line.
func (p *Prompter) Success(format string, a ...any) {
	okColor.Fprintf(p.out, format+"\n", a...)
}
