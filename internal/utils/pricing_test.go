package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTruncateToDay(t *testing.T) {
	t.Run("Midday instant snaps to midnight", func(t *testing.T) {
		in := time.Date(2024, 3, 15, 14, 37, 9, 0, time.UTC)
		assert.Equal(t, day("2024-03-15"), TruncateToDay(in))
	})

	t.Run("Already normalized stays put", func(t *testing.T) {
		assert.Equal(t, day("2024-03-15"), TruncateToDay(day("2024-03-15")))
	})
}

func TestInclusiveDays(t *testing.T) {
	t.Run("Same day counts as one", func(t *testing.T) {
		days, err := InclusiveDays(day("2024-01-15"), day("2024-01-15"))
		assert.NoError(t, err)
		assert.Equal(t, 1, days)
	})

	t.Run("Both ends counted", func(t *testing.T) {
		days, err := InclusiveDays(day("2024-01-15"), day("2024-01-17"))
		assert.NoError(t, err)
		assert.Equal(t, 3, days)
	})

	t.Run("Cross month boundary", func(t *testing.T) {
		days, err := InclusiveDays(day("2024-01-30"), day("2024-02-02"))
		assert.NoError(t, err)
		assert.Equal(t, 4, days)
	})

	t.Run("Leap day included", func(t *testing.T) {
		days, err := InclusiveDays(day("2024-02-28"), day("2024-03-01"))
		assert.NoError(t, err)
		assert.Equal(t, 3, days)
	})

	t.Run("End before start", func(t *testing.T) {
		_, err := InclusiveDays(day("2024-01-20"), day("2024-01-15"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "before start date")
	})

	t.Run("Intraday noise is normalized away", func(t *testing.T) {
		start := time.Date(2024, 1, 15, 23, 59, 0, 0, time.UTC)
		end := time.Date(2024, 1, 16, 0, 1, 0, 0, time.UTC)
		days, err := InclusiveDays(start, end)
		assert.NoError(t, err)
		assert.Equal(t, 2, days)
	})
}

func TestComputePrice(t *testing.T) {
	t.Run("Single day costs one daily rate", func(t *testing.T) {
		price, err := ComputePrice(10.0, day("2024-01-15"), day("2024-01-15"))
		assert.NoError(t, err)
		assert.Equal(t, 10.0, price)
	})

	t.Run("Three inclusive days", func(t *testing.T) {
		price, err := ComputePrice(10.0, day("2024-01-15"), day("2024-01-17"))
		assert.NoError(t, err)
		assert.Equal(t, 30.0, price)
	})

	t.Run("Fractional daily rate", func(t *testing.T) {
		price, err := ComputePrice(12.5, day("2024-01-01"), day("2024-01-04"))
		assert.NoError(t, err)
		assert.Equal(t, 50.0, price)
	})

	t.Run("Invalid range propagates", func(t *testing.T) {
		_, err := ComputePrice(10.0, day("2024-01-04"), day("2024-01-01"))
		assert.Error(t, err)
	})
}
