package ui

import (
	"bufio"
	"io"
	"strings"
)

// Prompter reads confirmation responses from an io.Reader.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompter constructs a prompter from the provided reader and writer.
func NewPrompter(input io.Reader, output io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(input), writer: output}
}

// Confirm writes the prompt and interprets affirmative responses (y/yes).
// Anything else, including EOF, declines.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	if p.writer != nil {
		if _, err := io.WriteString(p.writer, prompt+" [y/N]: "); err != nil {
			return false, err
		}
	}

	response, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	switch strings.TrimSpace(strings.ToLower(response)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
