package entity

import "time"

// SeasonalFoliageDensity returns the foliage opacity coefficient for
// the given date as a step function of the calendar month, following
// the Northern-hemisphere seasonal cycle. Deciduous canopies are fully
// leafed out in summer and nearly bare in winter; the intermediate
// months step between the two.
func SeasonalFoliageDensity(date time.Time) float64 {
	switch date.Month() {
	case time.June, time.July, time.August:
		return 1.0
	case time.May, time.September:
		return 0.85
	case time.April, time.October:
		return 0.6
	case time.March, time.November:
		return 0.3
	default: // December, January, February
		return 0.15
	}
}
