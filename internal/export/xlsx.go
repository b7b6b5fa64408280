package export

import (
	"fmt"
	"time"

	"github.com/gymdesk/gymdesk/internal/schedule"
	"github.com/xuri/excelize/v2"
)

const timetableSheet = "Timetable"

var xlsxColumns = []string{"Date", "Day", "Start", "End", "Class", "Instructor", "Booked"}

// RenderXLSX writes the timetable as a single-sheet workbook.
func RenderXLSX(t Timetable, outputPath string) error {
	f, err := buildXLSX(t)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(outputPath)
}

func buildXLSX(t Timetable) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", timetableSheet); err != nil {
		f.Close()
		return nil, err
	}

	write := func(row int, values ...any) error {
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(timetableSheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	header := make([]any, len(xlsxColumns))
	for i, c := range xlsxColumns {
		header[i] = c
	}
	if err := write(1, header...); err != nil {
		f.Close()
		return nil, err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(xlsxColumns), 1)
		_ = f.SetCellStyle(timetableSheet, "A1", endCell, style)
	}

	for i, r := range t.Rows {
		day := ""
		if d, err := time.Parse(schedule.DateLayout, r.Date); err == nil {
			day = d.Weekday().String()
		}
		if err := write(i+2, r.Date, day, r.Time, r.End, r.Class, r.Instructor, bookedLabel(r.Booked)); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	return f, nil
}
