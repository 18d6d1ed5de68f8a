package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrEmptyInput is returned when the user enters nothing.
var ErrEmptyInput = errors.New("no input")

// Prompter reads answers from a terminal or a pipe.
type Prompter struct {
	in  *os.File
	out io.Writer
	r   *bufio.Reader
}

// NewPrompter reads from in and writes prompts to out.
func NewPrompter(in *os.File, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, r: bufio.NewReader(in)}
}

// Stdio returns a Prompter on stdin and stderr.
func Stdio() *Prompter { return NewPrompter(os.Stdin, os.Stderr) }

// outFd returns the descriptor behind out, or -1 when out is not a file.
func (p *Prompter) outFd() int {
	if f, ok := p.out.(interface{ Fd() uintptr }); ok {
		return int(f.Fd())
	}
	return -1
}

// ReadLine prints prompt and reads one line, trimmed.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ErrEmptyInput
	}
	return line, nil
}

// ReadSecret prints prompt and reads one line without echoing it. When the
// input is not a terminal the line is read as is, so secrets can be piped.
// On a terminal the prompt is cleared afterwards.
func (p *Prompter) ReadSecret(prompt string) (string, error) {
	fd := int(p.in.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprint(p.out, prompt)
		line, err := p.r.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return "", err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return "", ErrEmptyInput
		}
		return line, nil
	}

	fmt.Fprint(p.out, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	ClearPreviousLines(p.out, p.outFd(), len(prompt))
	if len(b) == 0 {
		return "", ErrEmptyInput
	}
	return string(b), nil
}
