package vaktplan

import (
	"regexp"
	"strconv"

	"github.com/vaktplan/vaktplan-go/pkg/vaktplan/models"
)

var dayMonthPattern = regexp.MustCompile(`(\d{2})\.(\d{2})`)

// FilterFrom returns a copy of res keeping only dates on or after the given
// day and month. Labels without a DD.MM token are always kept, and teachers
// left without dates stay in the result.
func FilterFrom(res *models.ScheduleResult, day, month int) *models.ScheduleResult {
	out := &models.ScheduleResult{
		SheetName: res.SheetName,
		Teachers:  make([]models.TeacherRecord, 0, len(res.Teachers)),
	}
	for _, t := range res.Teachers {
		dates := make([]string, 0, len(t.Dates))
		for _, d := range t.Dates {
			if OnOrAfter(d, day, month) {
				dates = append(dates, d)
			}
		}
		out.Teachers = append(out.Teachers, models.TeacherRecord{Name: t.Name, Dates: dates})
	}
	return out
}

// OnOrAfter reports whether the first DD.MM token in label falls on or
// after day.month, comparing month first. Years are not considered.
func OnOrAfter(label string, day, month int) bool {
	m := dayMonthPattern.FindStringSubmatch(label)
	if m == nil {
		return true
	}
	d, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	if mo != month {
		return mo > month
	}
	return d >= day
}
