package core

import (
	"testing"
	"time"

	"github.com/bayviewlabs/safetylens/internal/contract"
	"github.com/bayviewlabs/safetylens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIncidentTime(t *testing.T) {
	t.Run("full timestamp", func(t *testing.T) {
		got, err := ParseIncidentTime("2024-03-15 14:30:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC), got)
	})

	t.Run("trailing zone offset ignored", func(t *testing.T) {
		got, err := ParseIncidentTime("2024-03-15 14:30:00+00:00")
		require.NoError(t, err)
		assert.Equal(t, 14, got.Hour())
	})

	t.Run("date only parses at midnight", func(t *testing.T) {
		got, err := ParseIncidentTime("2024-03-15")
		require.NoError(t, err)
		assert.Equal(t, 0, got.Hour())
		assert.Equal(t, 15, got.Day())
	})

	t.Run("garbage fails closed", func(t *testing.T) {
		_, err := ParseIncidentTime("not a timestamp whatsoever")
		assert.ErrorIs(t, err, contract.ErrMalformedTimestamp)
	})

	t.Run("empty fails closed", func(t *testing.T) {
		_, err := ParseIncidentTime("")
		assert.ErrorIs(t, err, contract.ErrMalformedTimestamp)
	})
}

func TestClassifyPeriods(t *testing.T) {
	cases := []struct {
		hour int
		want schema.TimePeriod
	}{
		{0, schema.PeriodNight},
		{5, schema.PeriodNight},
		{6, schema.PeriodMorning},
		{11, schema.PeriodMorning},
		{12, schema.PeriodAfternoon},
		{17, schema.PeriodAfternoon},
		{18, schema.PeriodEvening},
		{21, schema.PeriodEvening},
		{22, schema.PeriodNight},
		{23, schema.PeriodNight},
	}
	for _, c := range cases {
		raw := time.Date(2024, 1, 8, c.hour, 0, 0, 0, time.UTC).Format("2006-01-02 15:04:05")
		period, _, err := Classify(raw)
		require.NoError(t, err)
		assert.Equal(t, c.want, period, "hour %d", c.hour)
	}
}

func TestClassifyDayTypes(t *testing.T) {
	// 2024-01-06 is a Saturday, 2024-01-08 a Monday.
	_, day, err := Classify("2024-01-06 10:00:00")
	require.NoError(t, err)
	assert.Equal(t, schema.DayWeekend, day)

	_, day, err = Classify("2024-01-07 10:00:00")
	require.NoError(t, err)
	assert.Equal(t, schema.DayWeekend, day)

	_, day, err = Classify("2024-01-08 10:00:00")
	require.NoError(t, err)
	assert.Equal(t, schema.DayWeekday, day)
}

func TestClassifyDateOnlyIsNight(t *testing.T) {
	period, _, err := Classify("2024-01-08")
	require.NoError(t, err)
	assert.Equal(t, schema.PeriodNight, period)
}

func TestMonthKeyAndYearOf(t *testing.T) {
	month, err := monthKey("2024-03-15 14:30:00")
	require.NoError(t, err)
	assert.Equal(t, "2024-03", month)

	year, err := yearOf("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)

	_, err = monthKey("bogus")
	assert.ErrorIs(t, err, contract.ErrMalformedTimestamp)
}
