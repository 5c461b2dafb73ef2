package models

// TeacherRecord holds one teacher's scheduled date labels in sheet column order.
type TeacherRecord struct {
	// Name is the trimmed teacher name from the name column.
	Name string `json:"name"`
	// Dates are the formatted date labels for every marked column.
	Dates []string `json:"dates"`
}

// ScheduleResult is the extracted duty roster for one sheet.
type ScheduleResult struct {
	// SheetName is the sheet the roster was read from.
	SheetName string `json:"sheetName"`
	// Teachers lists records in the order names first appear in the sheet.
	Teachers []TeacherRecord `json:"teachers"`
}
