// Package vaktplan extracts teacher duty rosters from spreadsheets.
package vaktplan

import "fmt"

// DefaultSheetName is the sheet read when the caller does not name one.
const DefaultSheetName = "Lærervakter"

const (
	// DefaultNameColumn is the 0-based column holding teacher names (column A).
	DefaultNameColumn = 0
	// DefaultDateStartColumn is the 0-based column where date columns begin (column E).
	DefaultDateStartColumn = 4
)

// Layout describes where names and dates sit in a roster sheet.
type Layout struct {
	// NameColumn is the 0-based index of the teacher name column.
	NameColumn int
	// DateStartColumn is the 0-based index of the first date column.
	DateStartColumn int
}

// DefaultLayout returns the standard roster layout.
func DefaultLayout() Layout {
	return Layout{
		NameColumn:      DefaultNameColumn,
		DateStartColumn: DefaultDateStartColumn,
	}
}

// Validate rejects negative column indices.
func (l Layout) Validate() error {
	if l.NameColumn < 0 {
		return fmt.Errorf("%w: name column %d is negative", ErrInvalidLayout, l.NameColumn)
	}
	if l.DateStartColumn < 0 {
		return fmt.Errorf("%w: date start column %d is negative", ErrInvalidLayout, l.DateStartColumn)
	}
	return nil
}

// Options configures extraction behavior.
type Options struct {
	// SheetName is the sheet to read. Empty means DefaultSheetName.
	SheetName string
	// Layout is the fixed column layout of the sheet.
	// If nil, DefaultLayout is used.
	Layout *Layout
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		SheetName: DefaultSheetName,
	}
}

// ResolveSheetName returns the sheet to read.
func (o Options) ResolveSheetName() string {
	if o.SheetName != "" {
		return o.SheetName
	}
	return DefaultSheetName
}

// ResolveLayout returns the layout to use.
func (o Options) ResolveLayout() Layout {
	if o.Layout != nil {
		return *o.Layout
	}
	return DefaultLayout()
}
