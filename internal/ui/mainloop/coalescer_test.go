package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescer_MergesBurstIntoSingleTurn(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	value := 0
	for i := 1; i <= 5; i++ {
		c.Post("config-reload", func() { value = i })
	}

	require.Len(t, queue, 1)
	assert.Equal(t, 1, c.Pending())
	queue[0]()

	assert.Equal(t, 5, value, "latest task wins")
	assert.Equal(t, 0, c.Pending())
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	var ran []string
	c.Post("config-reload", func() { ran = append(ran, "config") })
	c.Post("state-sync", func() { ran = append(ran, "state") })

	require.Len(t, queue, 2)
	for _, fn := range queue {
		fn()
	}
	assert.Equal(t, []string{"config", "state"}, ran)

	c.Post("config-reload", func() {})
	assert.Len(t, queue, 3, "a key reschedules once its turn has run")
}

func TestCoalescer_DropsWorkAfterStop(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	ran := false
	c.Post("config-reload", func() { ran = true })
	c.Stop()

	require.Len(t, queue, 1)
	queue[0]()
	assert.False(t, ran)

	c.Post("config-reload", func() { ran = true })
	assert.Len(t, queue, 1, "no new turn after stop")
}

func TestCoalescer_IgnoresEmptyInput(t *testing.T) {
	var queue []func()
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	c.Post("", func() {})
	c.Post("config-reload", nil)

	assert.Empty(t, queue)
}

func TestNewCoalescer_PanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { _ = NewCoalescer(nil) })
}
