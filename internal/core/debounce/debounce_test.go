package debounce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimer_FireCurrentGeneration(t *testing.T) {
	var timer Timer

	gen := timer.Restart()
	assert.True(t, timer.Armed())
	assert.True(t, timer.Fire(gen))
	assert.False(t, timer.Armed())
}

func TestTimer_StaleGenerationIgnored(t *testing.T) {
	var timer Timer

	first := timer.Restart()
	second := timer.Restart()

	// The first scheduled firing arrives after a restart: ignored.
	assert.False(t, timer.Fire(first))
	assert.True(t, timer.Armed(), "stale fire must not disarm")
	assert.True(t, timer.Fire(second))
}

func TestTimer_FiresAtMostOnce(t *testing.T) {
	var timer Timer
	gen := timer.Restart()

	assert.True(t, timer.Fire(gen))
	assert.False(t, timer.Fire(gen))
}

func TestTimer_Cancel(t *testing.T) {
	var timer Timer
	gen := timer.Restart()
	timer.Cancel()

	assert.False(t, timer.Fire(gen))
	assert.False(t, timer.Armed())
}

func TestTimer_RapidRestartsCoalesce(t *testing.T) {
	// Simulates rapid keystrokes: every edit restarts the window; only the
	// last scheduled firing is accepted.
	var timer Timer

	var gens []uint64
	for range 10 {
		gens = append(gens, timer.Restart())
	}

	fired := 0
	for _, g := range gens {
		if timer.Fire(g) {
			fired++
		}
	}
	assert.Equal(t, 1, fired)
}
