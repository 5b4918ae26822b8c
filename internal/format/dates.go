package format

import (
	"time"

	"github.com/araddon/dateparse"
)

// DisplayZone is the zone dates are rendered in (Indochina Time, no DST).
var DisplayZone = time.FixedZone("ICT", 7*60*60)

// Updating is the placeholder for missing or unparseable dates.
const Updating = "Đang cập nhật"

// parseDate accepts the date shapes the backend produces (ISO 8601 with or
// without zone, date only, SQL datetime). Values without a zone are read in
// DisplayZone.
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(value, DisplayZone)
	if err != nil {
		return time.Time{}, false
	}
	return t.In(DisplayZone), true
}

// shortDate renders dd/mm/yyyy.
func shortDate(t time.Time) string {
	return t.Format("02/01/2006")
}
