package vaktplan

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input file extension is not a known workbook format.
var ErrUnsupportedFormat = errors.New("unsupported workbook format")

// ErrInvalidLayout indicates a layout with a negative column index.
var ErrInvalidLayout = errors.New("invalid layout")

// SheetNotFoundError is returned when the requested sheet is absent from the workbook.
type SheetNotFoundError struct {
	Sheet string
	// Available lists the workbook's sheet names in workbook order.
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found. Available sheets: %s", e.Sheet, strings.Join(e.Available, ", "))
}

// MalformedSheetError is returned when a sheet lacks a header row or data rows.
type MalformedSheetError struct {
	Sheet string
	Rows  int
}

func (e *MalformedSheetError) Error() string {
	return fmt.Sprintf("sheet %q must have at least a header row and data rows (found %d rows)", e.Sheet, e.Rows)
}

// ParseError wraps a failure to read or decode a workbook.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("error parsing workbook: %v", e.Err)
	}
	return fmt.Sprintf("error parsing workbook %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError.
func NewParseError(path string, err error) *ParseError {
	return &ParseError{
		Path: path,
		Err:  err,
	}
}
