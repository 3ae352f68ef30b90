package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPolicy = ShiftPolicy{
	ShiftStart:   "09:00",
	GraceMinutes: 15,
	HalfDayHours: 4.5,
	FullDayHours: 8,
}

func day(hour, minute int) *time.Time {
	t := time.Date(2024, 3, 11, hour, minute, 0, 0, time.UTC)
	return &t
}

func TestClassify_NoCheckInIsAbsent(t *testing.T) {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	got, err := Classify(date, nil, nil, testPolicy)
	require.NoError(t, err)
	assert.Equal(t, StatusAbsent, got.Status)
	assert.Equal(t, 0, got.LateByMinutes)
	assert.Nil(t, got.WorkHours)
}

func TestClassify_OnTimeIsPresent(t *testing.T) {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	got, err := Classify(date, day(9, 0), nil, testPolicy)
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, got.Status)
	assert.Equal(t, 0, got.LateByMinutes)
}

func TestClassify_WithinGraceIsPresent(t *testing.T) {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	got, err := Classify(date, day(9, 15), nil, testPolicy)
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, got.Status)
	assert.Equal(t, 0, got.LateByMinutes)
}

// 09:20 check-in against a 09:00 shift start with 15 minutes grace:
// late by 5 minutes past the grace limit.
func TestClassify_PastGraceIsLate(t *testing.T) {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	got, err := Classify(date, day(9, 20), nil, testPolicy)
	require.NoError(t, err)
	assert.Equal(t, StatusLate, got.Status)
	assert.Equal(t, 5, got.LateByMinutes)
}

// 09:00 to 13:00 is 4 worked hours, below the 4.5 half-day threshold.
func TestClassify_ShortDayIsHalfDay(t *testing.T) {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	got, err := Classify(date, day(9, 0), day(13, 0), testPolicy)
	require.NoError(t, err)
	assert.Equal(t, StatusHalfDay, got.Status)
	require.NotNil(t, got.WorkHours)
	assert.Equal(t, 4.0, *got.WorkHours)
}

func TestClassify_HalfDayOverridesLate(t *testing.T) {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	got, err := Classify(date, day(10, 0), day(13, 0), testPolicy)
	require.NoError(t, err)
	assert.Equal(t, StatusHalfDay, got.Status)
	assert.Equal(t, 45, got.LateByMinutes)
}

func TestClassify_FullDayKeepsStatus(t *testing.T) {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	got, err := Classify(date, day(9, 0), day(17, 30), testPolicy)
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, got.Status)
	require.NotNil(t, got.WorkHours)
	assert.Equal(t, 8.5, *got.WorkHours)
}

func TestClassify_NoCheckOutLeavesWorkHoursNil(t *testing.T) {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	got, err := Classify(date, day(9, 20), nil, testPolicy)
	require.NoError(t, err)
	assert.Equal(t, StatusLate, got.Status)
	assert.Nil(t, got.WorkHours)
}

func TestClassify_InvalidShiftStart(t *testing.T) {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	_, err := Classify(date, day(9, 0), nil, ShiftPolicy{ShiftStart: "9am"})
	assert.Error(t, err)
}

func TestClassify_ExactHalfDayThresholdIsNotHalfDay(t *testing.T) {
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	got, err := Classify(date, day(9, 0), day(13, 30), testPolicy)
	require.NoError(t, err)
	assert.Equal(t, StatusPresent, got.Status)
	require.NotNil(t, got.WorkHours)
	assert.Equal(t, 4.5, *got.WorkHours)
}
