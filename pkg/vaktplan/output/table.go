package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/vaktplan/vaktplan-go/pkg/vaktplan/models"
)

const (
	tableHeader    = "Teacher Name\tScheduled Dates"
	dateSeparator  = " | "
	noSchedulesMsg = "No schedules"
)

// WriteTable writes res as a tab-separated table with one line per teacher.
// The output pastes into spreadsheets and note-taking apps as two columns.
func WriteTable(w io.Writer, res *models.ScheduleResult) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(tableHeader)
	bw.WriteByte('\n')
	for _, t := range res.Teachers {
		dates := noSchedulesMsg
		if len(t.Dates) > 0 {
			dates = strings.Join(t.Dates, dateSeparator)
		}
		bw.WriteString(t.Name)
		bw.WriteByte('\t')
		bw.WriteString(dates)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
