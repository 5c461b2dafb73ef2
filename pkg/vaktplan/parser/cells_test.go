package parser

import (
	"path/filepath"
	"testing"

	"github.com/vaktplan/vaktplan-go/pkg/vaktplan/models"
	"github.com/xuri/excelize/v2"
)

func TestExtractCells(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Name")
	f.SetCellValue(sheetName, "E1", "04.05 A")
	f.SetCellValue(sheetName, "F1", "05.05")
	f.SetCellValue(sheetName, "A2", "Alice")
	f.SetCellValue(sheetName, "E2", 1)
	f.SetCellValue(sheetName, "F2", "1")
	f.SetCellValue(sheetName, "A3", "Bob")
	f.SetCellValue(sheetName, "E3", 200.5)
	f.SetCellValue(sheetName, "F3", true)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	wb, err := OpenXLSX(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer wb.Close()

	grid, err := wb.Grid(sheetName)
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}

	if len(grid) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(grid))
	}

	// Header text stays text, even when it looks like a number
	if got := grid.At(0, 4); got.Kind() != models.KindString || got.String() != "04.05 A" {
		t.Errorf("Expected string '04.05 A', got %v (kind %d)", got, got.Kind())
	}
	if got := grid.At(0, 5); got.Kind() != models.KindString || got.String() != "05.05" {
		t.Errorf("Expected string '05.05', got %v (kind %d)", got, got.Kind())
	}

	// Blank cells between name and dates
	if !grid.At(1, 1).IsEmpty() {
		t.Errorf("Expected empty B2, got %v", grid.At(1, 1))
	}

	// Numeric and text markers
	if got := grid.At(1, 4); got.Kind() != models.KindNumber || !got.IsMarker() {
		t.Errorf("Expected numeric marker in E2, got %v (kind %d)", got, got.Kind())
	}
	if got := grid.At(1, 5); got.Kind() != models.KindString || !got.IsMarker() {
		t.Errorf("Expected text marker in F2, got %v (kind %d)", got, got.Kind())
	}

	if got := grid.At(2, 4); got.Kind() != models.KindNumber || got.String() != "200.5" {
		t.Errorf("Expected 200.5, got %v", got)
	}
	if got := grid.At(2, 5); got.Kind() != models.KindBool || got.String() != "true" {
		t.Errorf("Expected bool true, got %v", got)
	}
}

func TestXLSXWorkbookSheetNames(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet("Lærervakter"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	if _, err := f.NewSheet("Notes"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	wb, err := OpenXLSXReader(buf)
	if err != nil {
		t.Fatalf("OpenXLSXReader failed: %v", err)
	}
	defer wb.Close()

	names := wb.SheetNames()
	expected := []string{"Sheet1", "Lærervakter", "Notes"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("SheetNames()[%d] = %q, expected %q", i, names[i], expected[i])
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		cellType excelize.CellType
		expected models.Cell
	}{
		{"123", excelize.CellTypeUnset, models.NumberCell(123)},
		{"123.45", excelize.CellTypeNumber, models.NumberCell(123.45)},
		{"-100", excelize.CellTypeUnset, models.NumberCell(-100)},
		{"45413", excelize.CellTypeDate, models.NumberCell(45413)},
		{"1", excelize.CellTypeSharedString, models.StringCell("1")},
		{"04.05", excelize.CellTypeSharedString, models.StringCell("04.05")},
		{"hello", excelize.CellTypeInlineString, models.StringCell("hello")},
		{"hello", excelize.CellTypeUnset, models.StringCell("hello")},
		{"1", excelize.CellTypeBool, models.BoolCell(true)},
		{"0", excelize.CellTypeBool, models.BoolCell(false)},
		{"#N/A", excelize.CellTypeError, models.StringCell("#N/A")},
		{"", excelize.CellTypeUnset, models.Empty()},
	}

	for _, tt := range tests {
		result := parseValue(tt.input, tt.cellType)
		if result != tt.expected {
			t.Errorf("parseValue(%q, %d) = %v (kind: %d), expected %v (kind: %d)",
				tt.input, tt.cellType, result, result.Kind(), tt.expected, tt.expected.Kind())
		}
	}
}
