package vaktplan

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vaktplan/vaktplan-go/pkg/vaktplan/models"
	"github.com/vaktplan/vaktplan-go/pkg/vaktplan/parser"
)

// Workbook is a loaded spreadsheet file.
type Workbook interface {
	// SheetNames returns the sheet names in workbook order.
	SheetNames() []string
	// Grid returns the cells of the named sheet, row 0 first.
	Grid(sheetName string) (models.Grid, error)
	Close() error
}

var (
	_ Workbook = (*parser.XLSXWorkbook)(nil)
	_ Workbook = (*parser.XLSWorkbook)(nil)
)

// Open opens a workbook, choosing the reader from the file extension.
func Open(path string) (Workbook, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, ErrFileNotFound
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return parser.OpenXLSX(path)
	case ".xls":
		return parser.OpenXLS(path)
	default:
		return nil, ErrUnsupportedFormat
	}
}
