package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Column describes one table column
type Column struct {
	Title      string
	Width      int
	AlignRight bool
}

// Table prints a fixed-width table (only in human format)
func (o *Output) Table(columns []Column, rows [][]string) {
	if o.format == FormatJSON {
		return
	}

	width := 0
	header := make([]string, len(columns))
	for i, col := range columns {
		width += col.Width
		if i > 0 {
			width++
		}
		cell := pad(col.Title, col.Width, col.AlignRight)
		if o.colorEnabled {
			cell = color.New(color.Bold).Sprint(cell)
		}
		header[i] = cell
	}
	fmt.Fprintln(o.writer, strings.Join(header, " "))
	fmt.Fprintln(o.writer, strings.Repeat("-", width))

	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			cells[i] = pad(value, col.Width, col.AlignRight)
		}
		fmt.Fprintln(o.writer, strings.Join(cells, " "))
	}
}

func pad(value string, width int, right bool) string {
	if right {
		return fmt.Sprintf("%*s", width, value)
	}
	return fmt.Sprintf("%-*s", width, value)
}
