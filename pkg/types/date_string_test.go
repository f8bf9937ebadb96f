package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	d, err := NewDateStringFromString("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())

	for _, invalid := range []string{"", "2024-2-9", "29-02-2024", "2023-02-29", "not a date"} {
		_, err := NewDateStringFromString(invalid)
		assert.ErrorIs(t, err, ErrInvalidDateString, "input %q", invalid)
	}
}

func TestDateStringComparisons(t *testing.T) {
	a := DateString("2025-12-01")
	b := DateString("2025-12-15")

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, a.Equal(DateString("2025-12-01")))
	assert.False(t, a.Equal(b))
}

func TestDateStringSameDay(t *testing.T) {
	d := DateString("2025-12-15")

	assert.True(t, d.SameDay(time.Date(2025, 12, 15, 23, 59, 0, 0, time.Local)))
	assert.False(t, d.SameDay(time.Date(2025, 12, 16, 0, 0, 0, 0, time.Local)))
}

func TestDateStringTime(t *testing.T) {
	d := DateString("2024-02-29")
	tm, err := d.Time()
	require.NoError(t, err)
	assert.Equal(t, 2024, tm.Year())
	assert.Equal(t, time.February, tm.Month())
	assert.Equal(t, 29, tm.Day())

	assert.True(t, DateString("").IsZero())
}
