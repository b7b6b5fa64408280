package export

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/gymdesk/gymdesk/internal/schedule"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #323232; }
table { border-collapse: collapse; }
th, td { border-bottom: 1px solid #c8c8c8; padding: 0.3rem 0.8rem; text-align: left; }
</style>
</head>
<body>
%s</body>
</html>
`

// Markdown renders the timetable as a GFM document with one table.
func Markdown(t Timetable) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", escapeCell(t.Title))
	fmt.Fprintf(&b, "%s\n\n", t.Period())

	if len(t.Rows) == 0 {
		b.WriteString("No sessions scheduled.\n")
		return b.String()
	}

	b.WriteString("| Date | Time | Class | Instructor | Booked |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, r := range t.Rows {
		booked := ""
		if r.Booked {
			booked = "✅"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			schedule.FormatDate(r.Date),
			schedule.FormatTimeRange(r.Time, r.End),
			escapeCell(r.Class),
			escapeCell(r.Instructor),
			booked,
		)
	}
	fmt.Fprintf(&b, "\n**%d of %d sessions booked**\n", t.BookedCount(), len(t.Rows))
	return b.String()
}

// HTML converts the timetable's markdown into a standalone HTML page.
func HTML(t Timetable) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var body bytes.Buffer
	if err := md.Convert([]byte(Markdown(t)), &body); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}
	return []byte(fmt.Sprintf(htmlPage, html.EscapeString(t.Title), body.String())), nil
}

// RenderHTML writes the HTML page to outputPath.
func RenderHTML(t Timetable, outputPath string) error {
	data, err := HTML(t)
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0644)
}

// escapeCell keeps user text from breaking the table or injecting markup.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, "\n", " ")
}
