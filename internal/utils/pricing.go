package utils

import (
	"fmt"
	"time"
)

// OneDay is the length of one calendar day on the booking axis.
const OneDay = 24 * time.Hour

// TruncateToDay normalizes an instant to its UTC day boundary. All
// rental dates live on this grid; the mobile clients send epoch
// milliseconds already snapped to local midnight, and re-truncating
// here keeps the interval arithmetic exact.
func TruncateToDay(t time.Time) time.Time {
	return t.UTC().Truncate(OneDay)
}

// InclusiveDays returns the number of calendar days in [start, end],
// both ends counted. A same-day rental is 1 day.
func InclusiveDays(start, end time.Time) (int, error) {
	start = TruncateToDay(start)
	end = TruncateToDay(end)
	if end.Before(start) {
		return 0, fmt.Errorf("end date %s is before start date %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return int(end.Sub(start)/OneDay) + 1, nil
}

// ComputePrice derives the total price of a rental from the device's
// daily rate and the inclusive day count. It never touches the security
// deposit; that is copied verbatim from the device at booking time.
func ComputePrice(dailyPrice float64, start, end time.Time) (float64, error) {
	days, err := InclusiveDays(start, end)
	if err != nil {
		return 0, err
	}
	return dailyPrice * float64(days), nil
}
