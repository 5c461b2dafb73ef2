// Package models defines data structures for duty roster extraction.
package models

import (
	"strconv"
)

// CellKind identifies which variant a Cell holds.
type CellKind uint8

const (
	// KindEmpty is a blank cell.
	KindEmpty CellKind = iota
	// KindString is a text cell.
	KindString
	// KindNumber is a numeric (or date serial) cell.
	KindNumber
	// KindBool is a boolean cell.
	KindBool
)

// Cell is a single spreadsheet value. The zero value is an empty cell.
type Cell struct {
	kind CellKind
	str  string
	num  float64
	b    bool
}

// Empty returns an empty cell.
func Empty() Cell { return Cell{} }

// StringCell returns a text cell.
func StringCell(s string) Cell { return Cell{kind: KindString, str: s} }

// NumberCell returns a numeric cell.
func NumberCell(n float64) Cell { return Cell{kind: KindNumber, num: n} }

// BoolCell returns a boolean cell.
func BoolCell(b bool) Cell { return Cell{kind: KindBool, b: b} }

// Kind reports the variant held by c.
func (c Cell) Kind() CellKind { return c.kind }

// IsEmpty reports whether c is blank.
func (c Cell) IsEmpty() bool { return c.kind == KindEmpty }

// IsMarker reports whether c holds the attendance marker: the number 1 or
// the exact text "1".
func (c Cell) IsMarker() bool {
	switch c.kind {
	case KindNumber:
		return c.num == 1
	case KindString:
		return c.str == "1"
	}
	return false
}

// String returns the label form of the cell value.
// Numbers use the shortest decimal representation (1, 4.05).
func (c Cell) String() string {
	switch c.kind {
	case KindString:
		return c.str
	case KindNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(c.b)
	}
	return ""
}
