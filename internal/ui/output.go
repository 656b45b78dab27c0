package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// OutputFormat selects how command results are rendered
type OutputFormat string

const (
	FormatHuman OutputFormat = "human"
	FormatJSON  OutputFormat = "json"
)

// message kinds with their glyph and color
type kind struct {
	status string
	glyph  string
	paint  func(format string, a ...interface{}) string
}

var (
	kindSuccess = kind{status: "success", glyph: "✓", paint: color.GreenString}
	kindWarning = kind{status: "warning", glyph: "⚠", paint: color.YellowString}
	kindInfo    = kind{status: "info", glyph: "ℹ", paint: color.BlueString}
)

// Output renders command results for a person, or as JSON when asked to.
// Human output is the default regardless of where the writer points; colors
// are only enabled when the writer is a terminal.
type Output struct {
	writer       io.Writer
	format       OutputFormat
	colorEnabled bool
}

// NewOutput creates human output on writer
func NewOutput(writer io.Writer) *Output {
	return &Output{
		writer:       writer,
		format:       FormatHuman,
		colorEnabled: isTerminal(writer),
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// SetFormat switches between human and JSON rendering
func (o *Output) SetFormat(format OutputFormat) {
	o.format = format
}

// SetColorEnabled forces colors on or off
func (o *Output) SetColorEnabled(enabled bool) {
	o.colorEnabled = enabled
}

// IsJSON reports whether output is JSON
func (o *Output) IsJSON() bool {
	return o.format == FormatJSON
}

func (o *Output) message(k kind, text string) {
	if o.IsJSON() {
		_ = o.JSON(map[string]interface{}{
			"status":  k.status,
			"message": text,
		})
		return
	}

	glyph := k.glyph
	if o.colorEnabled {
		glyph = k.paint(glyph)
	}
	fmt.Fprintf(o.writer, "%s %s\n", glyph, text)
}

// Success prints a success message
func (o *Output) Success(message string) { o.message(kindSuccess, message) }

// Warning prints a warning message
func (o *Output) Warning(message string) { o.message(kindWarning, message) }

// Info prints an informational message
func (o *Output) Info(message string) { o.message(kindInfo, message) }

// Successf prints a formatted success message
func (o *Output) Successf(format string, args ...interface{}) {
	o.Success(fmt.Sprintf(format, args...))
}

// Warningf prints a formatted warning message
func (o *Output) Warningf(format string, args ...interface{}) {
	o.Warning(fmt.Sprintf(format, args...))
}

// Infof prints a formatted info message
func (o *Output) Infof(format string, args ...interface{}) {
	o.Info(fmt.Sprintf(format, args...))
}

// Header prints a title underlined with '=' (human only)
func (o *Output) Header(title string) {
	if o.IsJSON() {
		return
	}

	underline := strings.Repeat("=", utf8.RuneCountInString(title))
	if o.colorEnabled {
		title = color.New(color.Bold, color.FgCyan).Sprint(title)
		underline = color.CyanString(underline)
	}
	fmt.Fprintf(o.writer, "\n%s\n%s\n", title, underline)
}

// Line prints text as is (human only)
func (o *Output) Line(text string) {
	if o.IsJSON() {
		return
	}
	fmt.Fprintln(o.writer, text)
}

// Item prints an indented list entry (human only)
func (o *Output) Item(text string) {
	if o.IsJSON() {
		return
	}
	if o.colorEnabled {
		text = color.GreenString(text)
	}
	fmt.Fprintf(o.writer, "  %s\n", text)
}

// KeyValue prints an aligned "Key: value" detail line (human only)
func (o *Output) KeyValue(key, value string) {
	if o.IsJSON() {
		return
	}
	fmt.Fprintf(o.writer, "  %-9s %s\n", key+":", value)
}

// JSON writes data as indented JSON
func (o *Output) JSON(data interface{}) error {
	encoder := json.NewEncoder(o.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
