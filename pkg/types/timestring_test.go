package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	for _, v := range valid {
		assert.NoError(t, TimeString(v).Validate(), v)
	}

	invalid := []string{"", "24:00", "09:60", "09-30", "ab:cd", "09:30:00"}
	for _, v := range invalid {
		assert.Error(t, TimeString(v).Validate(), v)
	}
}

func TestAddMinutes(t *testing.T) {
	cases := []struct {
		in      TimeString
		minutes int
		want    TimeString
	}{
		{"09:30", 15, "09:45"},
		{"09:30", 45, "10:15"},
		{"23:45", 15, "00:00"},
	}

	for _, tc := range cases {
		got, err := tc.in.AddMinutes(tc.minutes)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestAddMinutes_Invalid(t *testing.T) {
	_, err := TimeString("nope").AddMinutes(15)
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan([]byte("17:15:00")))
	assert.Equal(t, TimeString("17:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.False(t, TimeString("17:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))
}

func TestOnDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)

	date := time.Date(2026, 9, 9, 0, 0, 0, 0, loc)
	got, err := TimeString("09:30").OnDate(date, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 9, 9, 9, 30, 0, 0, loc), got)
}

func TestOnDate_Invalid(t *testing.T) {
	_, err := TimeString("25:00").OnDate(time.Now(), time.UTC)
	assert.Error(t, err)
}
