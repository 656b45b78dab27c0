package ui

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/lcgerke/localhub/internal/constants"
)

// FormatSize renders a byte count with decimal units (1 kB = 1000 B)
func FormatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.Bytes(uint64(bytes))
}

// FormatTime renders a timestamp in local time
func FormatTime(t time.Time) string {
	return t.Local().Format(constants.TimeLayout)
}

// FormatCommits renders an optional commit count
func FormatCommits(commits *int) string {
	if commits == nil {
		return constants.NotAvailable
	}
	return strconv.Itoa(*commits)
}
