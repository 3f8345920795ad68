package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitter_FireInOrder(t *testing.T) {
	var e Emitter[int]
	var got []string

	e.Subscribe(func(v int) { got = append(got, "a") })
	unsub := e.Subscribe(func(v int) { got = append(got, "b") })
	e.Subscribe(func(v int) { got = append(got, "c") })

	e.Fire(1)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	unsub()
	unsub()
	got = nil
	e.Fire(2)
	assert.Equal(t, []string{"a", "c"}, got)
	assert.Equal(t, 2, e.Len())
}

func TestEmitter_SubscribeDuringFire(t *testing.T) {
	var e Emitter[string]
	calls := 0

	e.Subscribe(func(string) {
		calls++
		e.Subscribe(func(string) { calls++ })
	})

	e.Fire("x")
	assert.Equal(t, 1, calls)

	e.Fire("y")
	assert.Equal(t, 3, calls)

	e.Clear()
	e.Fire("z")
	assert.Equal(t, 3, calls)
}
