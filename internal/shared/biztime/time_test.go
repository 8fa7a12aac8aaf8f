package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameBizDay(t *testing.T) {
	// 2024-03-10 01:00 UTC is still 2024-03-09 22:00 in Sao Paulo.
	lateNight := time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC)
	previousDay := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	sameDay := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, SameBizDay(lateNight, previousDay))
	assert.False(t, SameBizDay(lateNight, sameDay))
}

func TestSameBizMonth(t *testing.T) {
	// 2024-03-01 01:00 UTC is 2024-02-29 22:00 in Sao Paulo.
	monthEdge := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)
	february := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
	march := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, SameBizMonth(monthEdge, february))
	assert.False(t, SameBizMonth(monthEdge, march))
}

func TestStartOfDay(t *testing.T) {
	instant := time.Date(2024, 3, 10, 1, 0, 0, 0, time.UTC)

	start := StartOfDay(instant)
	require.Equal(t, Location(), start.Location())
	assert.Equal(t, 2024, start.Year())
	assert.Equal(t, time.March, start.Month())
	assert.Equal(t, 9, start.Day())
	assert.Equal(t, 0, start.Hour())
}

func TestStartOfMonth(t *testing.T) {
	instant := time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

	start := StartOfMonth(instant)
	assert.Equal(t, time.March, start.Month())
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, 0, start.Hour())
}
