package attendance

import (
	"fmt"
	"math"
	"time"
)

// ShiftPolicy is the organisation-level attendance policy.
type ShiftPolicy struct {
	ShiftStart   string // "HH:MM" wall-clock shift start
	GraceMinutes int
	HalfDayHours float64 // worked hours below this count as a half day
	FullDayHours float64
}

// Classification is the derived state of one attendance day.
type Classification struct {
	Status        Status
	LateByMinutes int
	WorkHours     *float64 // nil until check-out
}

// Classify derives status, lateness and worked hours from the raw check-in
// and check-out timestamps of one work day.
//
// Rules: no check-in means ABSENT. A check-in after shift start plus the
// grace period is LATE, with lateness counted in whole minutes past the
// grace limit. Once checked out, worked hours above zero but below the
// half-day threshold override PRESENT/LATE with HALF_DAY. A day with a
// check-in but no check-out keeps its check-in status and nil work hours.
func Classify(date time.Time, checkIn, checkOut *time.Time, policy ShiftPolicy) (Classification, error) {
	if checkIn == nil {
		return Classification{Status: StatusAbsent}, nil
	}

	shiftClock, err := time.Parse("15:04", policy.ShiftStart)
	if err != nil {
		return Classification{}, fmt.Errorf("invalid shift start %q: %w", policy.ShiftStart, err)
	}

	loc := checkIn.Location()
	shiftStart := time.Date(
		date.Year(), date.Month(), date.Day(),
		shiftClock.Hour(), shiftClock.Minute(), 0, 0,
		loc,
	)
	graceLimit := shiftStart.Add(time.Duration(policy.GraceMinutes) * time.Minute)

	result := Classification{Status: StatusPresent}
	if checkIn.After(graceLimit) {
		result.Status = StatusLate
		result.LateByMinutes = int(math.Floor(checkIn.Sub(graceLimit).Minutes()))
	}

	if checkOut != nil {
		hours := roundHours(checkOut.Sub(*checkIn).Hours())
		result.WorkHours = &hours
		if hours > 0 && hours < policy.HalfDayHours {
			result.Status = StatusHalfDay
		}
	}

	return result, nil
}

// roundHours rounds to two decimal places, the precision stored for
// work_hours.
func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
