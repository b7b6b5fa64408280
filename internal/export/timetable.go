// Package export renders a member's timetable as PDF, XLSX or HTML.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gymdesk/gymdesk/internal/booking"
	"github.com/gymdesk/gymdesk/internal/gym"
)

// Row is one class session in the timetable.
type Row struct {
	Date       string
	Time       string
	End        string
	Class      string
	Instructor string
	Booked     bool
}

// Timetable is the data shared by every renderer.
type Timetable struct {
	Title string
	From  time.Time
	To    time.Time
	Rows  []Row
}

// Format is an output format accepted by Render.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
	FormatHTML Format = "html"
)

// ParseFormat validates a --format value. An empty value is inferred from
// the output file's extension.
func ParseFormat(value, outputPath string) (Format, error) {
	if value == "" {
		value = strings.TrimPrefix(filepath.Ext(outputPath), ".")
	}
	switch f := Format(strings.ToLower(value)); f {
	case FormatPDF, FormatXLSX, FormatHTML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (use pdf, xlsx or html)", value)
	}
}

// Build turns annotated sessions into timetable rows, resolving class
// names and instructors. Sessions for unknown classes keep the raw id.
func Build(title string, sessions []booking.Session, classes []gym.Class, from, to time.Time) Timetable {
	byID := make(map[string]gym.Class, len(classes))
	for _, c := range classes {
		byID[c.ID] = c
	}

	rows := make([]Row, 0, len(sessions))
	for _, s := range sessions {
		row := Row{
			Date:   s.Date,
			Time:   s.Time,
			End:    s.End,
			Class:  s.ClassID,
			Booked: s.Booked,
		}
		if c, ok := byID[s.ClassID]; ok {
			row.Class = c.Name
			row.Instructor = c.Instructor
		}
		rows = append(rows, row)
	}

	return Timetable{Title: title, From: from, To: to, Rows: rows}
}

// Period renders the timetable range, e.g. "Feb 2 - Feb 8, 2026".
func (t Timetable) Period() string {
	if t.From.Year() != t.To.Year() {
		return fmt.Sprintf("%s - %s", t.From.Format("Jan 2, 2006"), t.To.Format("Jan 2, 2006"))
	}
	return fmt.Sprintf("%s - %s", t.From.Format("Jan 2"), t.To.Format("Jan 2, 2006"))
}

// BookedCount returns how many rows the member holds a booking for.
func (t Timetable) BookedCount() int {
	n := 0
	for _, r := range t.Rows {
		if r.Booked {
			n++
		}
	}
	return n
}

// Render writes the timetable to outputPath in the given format.
func Render(t Timetable, format Format, outputPath string) error {
	switch format {
	case FormatPDF:
		return RenderPDF(t, outputPath)
	case FormatXLSX:
		return RenderXLSX(t, outputPath)
	case FormatHTML:
		return RenderHTML(t, outputPath)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

func bookedLabel(booked bool) string {
	if booked {
		return "Booked"
	}
	return ""
}
