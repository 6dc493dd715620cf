package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Prompter reads answers to console prompts one line at a time
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewPrompter creates a Prompter reading from in and printing labels to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(in), out: out}
}

// Ask prints label and returns the next line without its line ending.
// io.EOF is returned only when the input is exhausted before any text.
func (p *Prompter) Ask(label string) (string, error) {
	if label != "" {
		io.WriteString(p.out, label)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// AskList asks for a comma-separated list. Items are split on every comma
// and kept exactly as typed, so "a, b" yields "a" and " b".
func (p *Prompter) AskList(label string) ([]string, error) {
	line, err := p.Ask(label)
	if err != nil {
		return nil, err
	}
	return SplitList(line), nil
}

// SplitList splits a comma-separated line. An empty line is one empty item.
func SplitList(line string) []string {
	return strings.Split(line, ",")
}
