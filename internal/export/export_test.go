package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gymdesk/gymdesk/internal/booking"
	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/gymdesk/gymdesk/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTimetable() Timetable {
	classes := []gym.Class{
		{ID: "c1", Name: "Morning Yoga", Instructor: "Ana"},
		{ID: "c2", Name: "Spin | Core", Instructor: "Ben"},
	}
	sessions := []booking.Session{
		{Occurrence: schedule.Occurrence{ClassID: "c1", Date: "2026-02-02", Time: "09:00", End: "10:00"}, Booked: true, BookingID: "b1"},
		{Occurrence: schedule.Occurrence{ClassID: "c2", Date: "2026-02-02", Time: "18:00", End: "19:00"}},
		{Occurrence: schedule.Occurrence{ClassID: "gone", Date: "2026-02-04", Time: "07:00", End: "08:00"}},
	}
	from := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	return Build("Ana's week", sessions, classes, from, from.AddDate(0, 0, 6))
}

func TestBuild(t *testing.T) {
	tt := sampleTimetable()

	require.Len(t, tt.Rows, 3)
	assert.Equal(t, Row{Date: "2026-02-02", Time: "09:00", End: "10:00", Class: "Morning Yoga", Instructor: "Ana", Booked: true}, tt.Rows[0])
	assert.Equal(t, "gone", tt.Rows[2].Class)
	assert.Empty(t, tt.Rows[2].Instructor)
	assert.Equal(t, 1, tt.BookedCount())
	assert.Equal(t, "Feb 2 - Feb 8, 2026", tt.Period())
}

func TestPeriodAcrossYears(t *testing.T) {
	tt := Timetable{
		From: time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "Dec 29, 2025 - Jan 4, 2026", tt.Period())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		value, path string
		want        Format
		wantErr     bool
	}{
		{"pdf", "out.bin", FormatPDF, false},
		{"XLSX", "", FormatXLSX, false},
		{"", "week.html", FormatHTML, false},
		{"", "week.csv", "", true},
		{"docx", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.value+tt.path, func(t *testing.T) {
			got, err := ParseFormat(tt.value, tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(sampleTimetable())

	assert.Contains(t, md, "# Ana's week")
	assert.Contains(t, md, "| Mon Feb 2 | 9:00 AM - 10:00 AM | Morning Yoga | Ana | ✅ |")
	assert.Contains(t, md, `Spin \| Core`)
	assert.Contains(t, md, "**1 of 3 sessions booked**")
}

func TestMarkdownEmpty(t *testing.T) {
	md := Markdown(Timetable{Title: "Empty"})

	assert.Contains(t, md, "No sessions scheduled.")
	assert.NotContains(t, md, "|---|")
}

func TestHTMLRendersTable(t *testing.T) {
	data, err := HTML(sampleTimetable())

	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>Morning Yoga</td>")
	assert.Contains(t, out, "<title>Ana&#39;s week</title>")
}

func TestRenderXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "week.xlsx")

	require.NoError(t, Render(sampleTimetable(), FormatXLSX, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(timetableSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, xlsxColumns, rows[0])
	assert.Equal(t, []string{"2026-02-02", "Monday", "09:00", "10:00", "Morning Yoga", "Ana", "Booked"}, rows[1])
	assert.Equal(t, "Wednesday", rows[3][1])
}

func TestRenderPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "week.pdf")

	require.NoError(t, Render(sampleTimetable(), FormatPDF, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF")
}

func TestRenderHTMLWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "week.html")

	require.NoError(t, Render(Timetable{Title: "Empty"}, FormatHTML, path))

	assert.FileExists(t, path)
}
