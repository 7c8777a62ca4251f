package shared

import "time"

// JST is the fixed UTC+9 offset used for all civil dates and times in the
// system. A fixed zone, not a tz-database location: no DST ever applies.
var JST = time.FixedZone("JST", 9*60*60)

// CivilDate truncates t to midnight of its calendar day, keeping the
// location. Used for inclusive date-window comparisons.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
