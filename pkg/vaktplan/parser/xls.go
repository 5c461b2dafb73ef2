package parser

import (
	"fmt"
	"os"

	"github.com/extrame/xls"
	"github.com/vaktplan/vaktplan-go/pkg/vaktplan/models"
)

// xlsCharset is used to decode legacy BIFF string records.
const xlsCharset = "utf-8"

// XLSWorkbook reads legacy Excel 97-2003 workbooks (.xls).
// The reader only exposes formatted text, so every non-blank cell is a
// string cell.
type XLSWorkbook struct {
	file *os.File
	wb   *xls.WorkBook
}

// OpenXLS opens the legacy workbook at path.
func OpenXLS(path string) (*XLSWorkbook, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	wb, err := xls.OpenReader(file, xlsCharset)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &XLSWorkbook{file: file, wb: wb}, nil
}

// SheetNames returns the sheet names in workbook order.
func (w *XLSWorkbook) SheetNames() []string {
	names := make([]string, 0, w.wb.NumSheets())
	for i := 0; i < w.wb.NumSheets(); i++ {
		if sheet := w.wb.GetSheet(i); sheet != nil {
			names = append(names, sheet.Name)
		}
	}
	return names
}

// Grid returns the cell grid of the named sheet.
func (w *XLSWorkbook) Grid(sheetName string) (models.Grid, error) {
	for i := 0; i < w.wb.NumSheets(); i++ {
		sheet := w.wb.GetSheet(i)
		if sheet == nil || sheet.Name != sheetName {
			continue
		}
		return readXLSSheet(sheet), nil
	}
	return nil, fmt.Errorf("sheet %s does not exist", sheetName)
}

// Close releases the underlying file.
func (w *XLSWorkbook) Close() error {
	return w.file.Close()
}

// xlsMaxColumns is the BIFF8 column limit (IV).
const xlsMaxColumns = 256

func readXLSSheet(sheet *xls.WorkSheet) models.Grid {
	grid := make(models.Grid, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheetRow(sheet, i)
		if row == nil {
			grid = append(grid, nil)
			continue
		}
		// Rows without a ROW record report LastCol 0, so scan the full width.
		cells := make(models.Row, xlsMaxColumns)
		last := -1
		for j := 0; j < xlsMaxColumns; j++ {
			if v := row.Col(j); v != "" {
				cells[j] = models.StringCell(v)
				last = j
			}
		}
		grid = append(grid, cells[:last+1])
	}
	return trimTrailingEmptyRows(grid)
}

// sheetRow returns row i, or nil when the sheet holds no record for it.
// WorkSheet.Row dereferences missing rows, which panics for blank rows and
// for sheets without any cells.
func sheetRow(sheet *xls.WorkSheet, i int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(i)
}

// trimTrailingEmptyRows drops blank rows after the last row holding data,
// matching the row range excelize reports for .xlsx sheets.
func trimTrailingEmptyRows(grid models.Grid) models.Grid {
	end := len(grid)
	for end > 0 && rowIsBlank(grid[end-1]) {
		end--
	}
	return grid[:end]
}

func rowIsBlank(row models.Row) bool {
	for _, c := range row {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}
