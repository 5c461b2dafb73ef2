package models

// Row is one sheet row. Rows may be shorter than the header row.
type Row []Cell

// Grid is a worksheet as a 2-D array of cells. Row 0 is the header row.
type Grid []Row

// At returns the cell at (row, col), or an empty cell when out of range.
func (g Grid) At(row, col int) Cell {
	if row < 0 || row >= len(g) {
		return Empty()
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return Empty()
	}
	return r[col]
}
