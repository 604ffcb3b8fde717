package earnings

import "time"

// StartOfDay - полночь календарного дня now в зоне loc.
func StartOfDay(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// StartOfWeek - полночь ближайшего прошедшего воскресенья (или сегодняшнего, если сегодня воскресенье).
func StartOfWeek(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()-int(local.Weekday()), 0, 0, 0, 0, loc)
}
