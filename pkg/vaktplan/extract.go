package vaktplan

import (
	"errors"
	"slices"

	"github.com/vaktplan/vaktplan-go/pkg/vaktplan/models"
)

// Extract reads the duty roster from the workbook at path.
// Read failures are returned as *ParseError.
func Extract(path string, opts Options) (*models.ScheduleResult, error) {
	wb, err := Open(path)
	if err != nil {
		return nil, NewParseError(path, err)
	}
	defer wb.Close()

	res, err := ExtractWorkbook(wb, opts.ResolveSheetName(), opts.ResolveLayout())
	var pe *ParseError
	if errors.As(err, &pe) && pe.Path == "" {
		pe.Path = path
	}
	return res, err
}

// ExtractWorkbook reads the duty roster from the named sheet of wb.
func ExtractWorkbook(wb Workbook, sheetName string, layout Layout) (*models.ScheduleResult, error) {
	names := wb.SheetNames()
	if !slices.Contains(names, sheetName) {
		return nil, &SheetNotFoundError{Sheet: sheetName, Available: names}
	}

	grid, err := wb.Grid(sheetName)
	if err != nil {
		return nil, NewParseError("", err)
	}

	return ExtractSchedule(grid, sheetName, layout)
}
