//go:build unit

package clock_test

import (
	"sync"
	"testing"
	"time"

	"classroom-reservation/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_IsUTC(t *testing.T) {
	now := clock.NewRealClock().Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestMockClock(t *testing.T) {
	start := time.Date(2030, 4, 1, 10, 0, 0, 0, time.UTC)

	t.Run("set and advance", func(t *testing.T) {
		c := clock.NewMockClock(start)
		assert.Equal(t, start, c.Now())

		c.Advance(10 * time.Minute)
		assert.Equal(t, start.Add(10*time.Minute), c.Now())

		c.Set(start.Add(-time.Hour))
		assert.Equal(t, start.Add(-time.Hour), c.Now())
	})

	t.Run("concurrent advances are not lost", func(t *testing.T) {
		c := clock.NewMockClock(start)
		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.Advance(time.Second)
				_ = c.Now()
			}()
		}
		wg.Wait()
		assert.Equal(t, start.Add(50*time.Second), c.Now())
	})
}
