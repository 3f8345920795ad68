package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestRestoreTrace_RecordsDeltas(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	rt := newRestoreTrace(nil, clock.now)

	clock.advance(5 * time.Millisecond)
	rt.Mark("grid_created")
	clock.advance(10 * time.Millisecond)
	rt.Mark("restored")

	got := rt.Milestones()
	require.Len(t, got, 2)
	assert.Equal(t, Milestone{Name: "grid_created", Elapsed: 5 * time.Millisecond}, got[0])
	assert.Equal(t, Milestone{Name: "restored", Elapsed: 15 * time.Millisecond, Delta: 10 * time.Millisecond}, got[1])
}

func TestRestoreTrace_FinishLogsSummaryOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})
	clock := &fakeClock{t: time.Unix(0, 0)}
	rt := newRestoreTrace(&logger, clock.now)

	clock.advance(3 * time.Millisecond)
	rt.Mark("ready")
	rt.Finish()
	rt.Mark("late")
	rt.Finish()

	assert.Len(t, rt.Milestones(), 1)
	out := buf.String()
	assert.Contains(t, out, `"milestone":"ready"`)
	assert.Contains(t, out, `"milestones":"ready:3"`)
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("workbench lifecycle complete")))
}

func TestRestoreTrace_NilIsNoop(t *testing.T) {
	var rt *RestoreTrace
	rt.Mark("x")
	rt.Finish()
	assert.Nil(t, rt.Milestones())
}
