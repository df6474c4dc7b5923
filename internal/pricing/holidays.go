package pricing

import "time"

// EnglandWalesCalendar is a rule-based approximation of England & Wales bank
// holidays: fixed dates with weekend substitutes, Monday-rule holidays, and
// Easter via the Gregorian computus. One-off proclaimed holidays (royal
// events, moved early-May days) are not modelled, so treat holiday surcharge
// accuracy as best effort.
type EnglandWalesCalendar struct{}

func (EnglandWalesCalendar) IsHoliday(t time.Time) bool {
	year, _, _ := t.Date()
	target := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	for _, h := range bankHolidays(year) {
		if h.Equal(target) {
			return true
		}
	}
	return false
}

func bankHolidays(year int) []time.Time {
	easter := easterSunday(year)
	holidays := []time.Time{
		substituteWeekday(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)),
		easter.AddDate(0, 0, -2), // Good Friday
		easter.AddDate(0, 0, 1),  // Easter Monday
		nthWeekday(year, time.May, time.Monday, 1),
		lastWeekday(year, time.May, time.Monday),
		lastWeekday(year, time.August, time.Monday),
	}

	// Christmas and Boxing Day shift past the weekend together.
	christmas := time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC)
	boxing := time.Date(year, time.December, 26, 0, 0, 0, 0, time.UTC)
	switch christmas.Weekday() {
	case time.Saturday:
		holidays = append(holidays, christmas.AddDate(0, 0, 2), boxing.AddDate(0, 0, 2))
	case time.Sunday:
		holidays = append(holidays, christmas.AddDate(0, 0, 1), boxing.AddDate(0, 0, 1))
	case time.Friday:
		holidays = append(holidays, christmas, boxing.AddDate(0, 0, 2))
	default:
		holidays = append(holidays, christmas, boxing)
	}

	return holidays
}

func substituteWeekday(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	}
	return d
}

func nthWeekday(year int, month time.Month, day time.Weekday, n int) time.Time {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return d.AddDate(0, 0, 7*(n-1))
}

func lastWeekday(year int, month time.Month, day time.Weekday) time.Time {
	d := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// easterSunday implements the anonymous Gregorian computus.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
