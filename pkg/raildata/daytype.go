package raildata

import (
	"time"
)

type DayType string

const (
	DayTypeWeekday  DayType = "WEEKDAY"
	DayTypeSaturday         = "SATURDAY"
	DayTypeSunday           = "SUNDAY"
)

// DayTypeFor buckets a date into the day-type filter the performance API expects
func DayTypeFor(date time.Time) DayType {
	switch date.Weekday() {
	case time.Saturday:
		return DayTypeSaturday
	case time.Sunday:
		return DayTypeSunday
	default:
		return DayTypeWeekday
	}
}
