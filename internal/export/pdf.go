package export

import (
	"fmt"

	"github.com/gymdesk/gymdesk/internal/schedule"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
	pdfBookedColor = props.Color{Red: 30, Green: 130, Blue: 70}
)

// RenderPDF writes the timetable as an A4 PDF, one section per day.
func RenderPDF(t Timetable, outputPath string) error {
	doc, err := buildPDF(t).Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}
	return doc.Save(outputPath)
}

func buildPDF(t Timetable) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, t.Title, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, t.Period(), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	if len(t.Rows) == 0 {
		m.AddRow(8, text.NewCol(12, "No sessions scheduled.", props.Text{Size: 10, Color: &pdfMutedColor}))
		return m
	}

	current := ""
	for _, r := range t.Rows {
		if r.Date != current {
			if current != "" {
				m.AddRow(4)
			}
			current = r.Date
			m.AddRow(8,
				text.NewCol(12, schedule.FormatDate(r.Date), props.Text{
					Style: fontstyle.Bold,
					Size:  10,
					Color: &pdfHeaderColor,
				}),
			)
		}

		status := props.Text{Size: 9, Align: align.Right, Color: &pdfBookedColor, Style: fontstyle.Bold}
		m.AddRow(6,
			text.NewCol(3, "  "+schedule.FormatTimeRange(r.Time, r.End), props.Text{Size: 9}),
			text.NewCol(4, r.Class, props.Text{Size: 9}),
			text.NewCol(3, r.Instructor, props.Text{Size: 9, Color: &pdfMutedColor}),
			text.NewCol(2, bookedLabel(r.Booked), status),
		)
	}

	m.AddRow(4)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(9, "Booked sessions", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(3, fmt.Sprintf("%d / %d", t.BookedCount(), len(t.Rows)), props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)
	return m
}
