package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedStepFiresOncePerPeriod(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(15 * time.Millisecond)
	fs.SetClock(func() time.Time { return now })

	assert.True(t, fs.ShouldStep(), "first tick fires immediately")
	assert.False(t, fs.ShouldStep())

	now = now.Add(10 * time.Millisecond)
	assert.False(t, fs.ShouldStep())
	now = now.Add(5 * time.Millisecond)
	assert.True(t, fs.ShouldStep())

	// A long stall yields at most two ticks back to back.
	now = now.Add(time.Second)
	assert.True(t, fs.ShouldStep())
	assert.True(t, fs.ShouldStep())
	assert.False(t, fs.ShouldStep())
}

func TestFixedStepDefaultPeriod(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, 15*time.Millisecond, fs.Period())
}
