// Package output renders extracted rosters.
package output

import (
	"encoding/json"

	"github.com/vaktplan/vaktplan-go/pkg/vaktplan/models"
)

// ToJSON serializes a schedule result. Pretty output uses two-space indentation.
func ToJSON(res *models.ScheduleResult, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(res, "", "  ")
	}
	return json.Marshal(res)
}
