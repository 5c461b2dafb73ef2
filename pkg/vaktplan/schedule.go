package vaktplan

import (
	"strings"

	"github.com/vaktplan/vaktplan-go/pkg/vaktplan/models"
)

// ExtractSchedule scans a roster grid and returns each teacher's marked dates.
//
// Row 0 holds the date labels. For every later row with a non-blank name,
// each column from layout.DateStartColumn whose cell is the attendance
// marker contributes the header label of that column. A name seen again
// replaces the dates collected for it earlier but keeps its first position.
func ExtractSchedule(grid models.Grid, sheetName string, layout Layout) (*models.ScheduleResult, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if len(grid) < 2 {
		return nil, &MalformedSheetError{Sheet: sheetName, Rows: len(grid)}
	}

	header := grid[0]
	var order []string
	schedule := make(map[string][]string)

	for i := 1; i < len(grid); i++ {
		row := grid[i]
		name := strings.TrimSpace(grid.At(i, layout.NameColumn).String())
		if name == "" {
			continue
		}

		if _, seen := schedule[name]; !seen {
			order = append(order, name)
		}
		dates := []string{}
		for j := layout.DateStartColumn; j < len(row); j++ {
			if !row[j].IsMarker() {
				continue
			}
			if j >= len(header) || header[j].IsEmpty() {
				continue
			}
			dates = append(dates, header[j].String())
		}
		schedule[name] = dates
	}

	result := &models.ScheduleResult{
		SheetName: sheetName,
		Teachers:  make([]models.TeacherRecord, 0, len(order)),
	}
	for _, name := range order {
		result.Teachers = append(result.Teachers, models.TeacherRecord{
			Name:  name,
			Dates: formatLabels(schedule[name]),
		})
	}
	return result, nil
}

// formatLabels applies FormatLabel to each label and drops blank results.
func formatLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		l = FormatLabel(l)
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}
