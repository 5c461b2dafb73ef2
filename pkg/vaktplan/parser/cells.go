package parser

import (
	"io"
	"strconv"

	"github.com/vaktplan/vaktplan-go/pkg/vaktplan/models"
	"github.com/xuri/excelize/v2"
)

// XLSXWorkbook reads Office Open XML workbooks (.xlsx, .xlsm) through excelize.
type XLSXWorkbook struct {
	f *excelize.File
}

// OpenXLSX opens the workbook at path.
func OpenXLSX(path string) (*XLSXWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return &XLSXWorkbook{f: f}, nil
}

// OpenXLSXReader reads a workbook from r.
func OpenXLSXReader(r io.Reader) (*XLSXWorkbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	return &XLSXWorkbook{f: f}, nil
}

// SheetNames returns the sheet names in workbook order.
func (w *XLSXWorkbook) SheetNames() []string {
	return w.f.GetSheetList()
}

// Grid returns the cell grid of the named sheet.
func (w *XLSXWorkbook) Grid(sheetName string) (models.Grid, error) {
	return ExtractCells(w.f, sheetName)
}

// Close releases the underlying file.
func (w *XLSXWorkbook) Close() error {
	return w.f.Close()
}

// ExtractCells reads every row of a sheet into a Grid.
// Interior blank rows are kept so that row positions match the sheet.
func ExtractCells(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	grid := make(models.Grid, len(rows))
	for rowIdx, row := range rows {
		cells := make(models.Row, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, err
			}
			cells[colIdx] = parseValue(cellValue, cellType)
		}
		grid[rowIdx] = cells
	}

	return grid, nil
}

// parseValue converts a raw cell value into a typed Cell.
// Cells without an explicit type attribute are numeric in OOXML.
func parseValue(s string, cellType excelize.CellType) models.Cell {
	if s == "" {
		return models.Empty()
	}
	switch cellType {
	case excelize.CellTypeUnset, excelize.CellTypeNumber, excelize.CellTypeDate:
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return models.NumberCell(n)
		}
	case excelize.CellTypeBool:
		return models.BoolCell(s == "1" || s == "TRUE" || s == "true")
	}
	return models.StringCell(s)
}
