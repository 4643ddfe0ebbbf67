//go:build unit

package clock_test

import (
	"testing"
	"time"

	"marketplace-api/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestRealClock(t *testing.T) {
	now := clock.NewRealClock().Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%1000)
}

func TestMockClock(t *testing.T) {
	local := time.FixedZone("UTC+2", 2*60*60)
	c := clock.NewMockClock(time.Date(2025, time.June, 2, 11, 0, 0, 1500, local))

	assert.Equal(t, time.Date(2025, time.June, 2, 9, 0, 0, 1000, time.UTC), c.Now())

	c.Add(30 * time.Minute)
	assert.Equal(t, time.Date(2025, time.June, 2, 9, 30, 0, 1000, time.UTC), c.Now())
}
