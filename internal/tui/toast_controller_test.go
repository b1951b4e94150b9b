package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/texedit/internal/core/notify"
)

func TestToastController_Push(t *testing.T) {
	c := NewToastController()

	c.Push(notify.Info("hello"))

	assert.True(t, c.HasToasts())
	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "hello", c.Toasts()[0].notification.Message)
	assert.Equal(t, levelTTL(notify.LevelInfo), c.Toasts()[0].remaining)
}

func TestToastController_TTL_by_level(t *testing.T) {
	c := NewToastController()

	c.Push(notify.Info("i"))
	c.Push(notify.Warn("w"))
	c.Push(notify.Error("e"))

	assert.Less(t, c.Toasts()[0].remaining, c.Toasts()[1].remaining)
	assert.Less(t, c.Toasts()[1].remaining, c.Toasts()[2].remaining)
}

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController()

	for i := range defaultMaxToasts + 2 {
		c.Push(notify.Info(fmt.Sprintf("toast %d", i)))
	}

	assert.Len(t, c.Toasts(), defaultMaxToasts)
	// Oldest two should have been evicted; first remaining is "toast 2".
	assert.Equal(t, "toast 2", c.Toasts()[0].notification.Message)
}

func TestToastController_Tick_decrements_TTL(t *testing.T) {
	c := NewToastController()
	c.Push(notify.Info("tick"))

	c.Tick(1 * time.Second)

	assert.Equal(t, levelTTL(notify.LevelInfo)-1*time.Second, c.Toasts()[0].remaining)
}

func TestToastController_Tick_removes_expired(t *testing.T) {
	c := NewToastController()
	c.Push(notify.Info("expires"))
	c.Push(notify.Info("survives"))

	// Expire the first one by consuming most of its TTL, then add time.
	c.toasts[0].remaining = 50 * time.Millisecond
	c.Tick(100 * time.Millisecond)

	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "survives", c.Toasts()[0].notification.Message)
}

func TestToastController_DismissAll(t *testing.T) {
	c := NewToastController()
	c.Push(notify.Info("a"))
	c.Push(notify.Warn("b"))

	c.DismissAll()

	assert.False(t, c.HasToasts())
	assert.Empty(t, c.Toasts())
}

func TestToastController_Ticking(t *testing.T) {
	c := NewToastController()
	assert.False(t, c.Ticking())

	c.SetTicking(true)
	assert.True(t, c.Ticking())

	c.SetTicking(false)
	assert.False(t, c.Ticking())
}
