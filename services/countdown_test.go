package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdownCompletesAfterTicks(t *testing.T) {
	fired := 0
	c := NewCountdown(3, func() { fired++ })

	assert.Equal(t, "00:03", c.Display())
	c.Tick()
	c.Tick()
	assert.Equal(t, "00:01", c.Display())
	assert.Zero(t, fired)

	c.Tick()
	assert.Equal(t, 1, fired, "completion fires exactly once")
	assert.Equal(t, "00:00", c.Display())
	assert.False(t, c.Active())
}

func TestCountdownStopsAtZero(t *testing.T) {
	fired := 0
	c := NewCountdown(1, func() { fired++ })

	c.Tick()
	c.Tick()
	c.Tick()
	require.Equal(t, 1, fired, "ticks after zero are ignored")
	assert.Equal(t, 0, c.Remaining())
}

func TestCountdownMinuteFormat(t *testing.T) {
	c := NewCountdown(125, nil)
	assert.Equal(t, "02:05", c.Display())
	c.Tick()
	assert.Equal(t, "02:04", c.Display())
}

func TestCountdownZeroInitialInactive(t *testing.T) {
	fired := 0
	c := NewCountdown(0, func() { fired++ })
	assert.False(t, c.Active())
	c.Tick()
	assert.Zero(t, fired)
}

func TestCountdownStop(t *testing.T) {
	c := NewCountdown(30, nil)
	c.Start()
	c.Stop()
	assert.False(t, c.Active())
	// Повторный Stop безопасен
	c.Stop()
}
