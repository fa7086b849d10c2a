// Package format renders timestamps the way the display_date and
// display_time config keys ask for.
package format

import (
	"strings"
	"time"

	"github.com/footprint-tools/verbs/internal/config"
)

// Layout holds resolved Go time layouts.
type Layout struct {
	date      string
	dateShort string
	clock     string
	clockFull string
}

// NewLayout resolves display_date and display_time values. displayDate is
// one of dd/mm/yyyy, mm/dd/yyyy, yyyy-mm-dd or a Go layout; displayTime is
// 12h or 24h. Empty values use the defaults.
func NewLayout(displayDate, displayTime string) Layout {
	if displayDate == "" {
		displayDate = "Jan 02"
	}

	l := Layout{clock: "15:04", clockFull: "15:04:05"}
	if displayTime == "12h" {
		l.clock = "3:04 PM"
		l.clockFull = "3:04:05 PM"
	}

	switch displayDate {
	case "mm/dd/yyyy":
		l.date, l.dateShort = "01/02/2006", "01/02"
	case "yyyy-mm-dd":
		l.date, l.dateShort = "2006-01-02", "01-02"
	case "dd/mm/yyyy":
		l.date, l.dateShort = "02/01/2006", "02/01"
	default:
		l.date, l.dateShort = displayDate, stripYear(displayDate)
	}
	return l
}

// stripYear derives a short layout from a custom one.
func stripYear(layout string) string {
	short := layout
	for _, year := range []string{"2006", "/06", "-06", " 06"} {
		short = strings.ReplaceAll(short, year, "")
	}
	short = strings.Trim(strings.TrimSpace(short), "/-")
	if short == "" {
		return "Jan 02"
	}
	return short
}

// DateTime formats date and time, e.g. "23/01/2024 15:04".
func (l Layout) DateTime(t time.Time) string { return t.Format(l.date) + " " + t.Format(l.clock) }

// DateTimeShort formats without the year, e.g. "23/01 15:04".
func (l Layout) DateTimeShort(t time.Time) string {
	return t.Format(l.dateShort) + " " + t.Format(l.clock)
}

// Full formats date and time with seconds.
func (l Layout) Full(t time.Time) string { return t.Format(l.date) + " " + t.Format(l.clockFull) }

// Current returns the layout for the current configuration.
func Current() Layout {
	d, _ := config.Get("display_date")
	c, _ := config.Get("display_time")
	return NewLayout(d, c)
}
