package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// RestoreTrace records workbench lifecycle milestones, from part
// registration to the restored signal. Safe for concurrent use since the
// last milestones are marked from the restore goroutines.
type RestoreTrace struct {
	mu         sync.Mutex
	t0         time.Time
	milestones []Milestone
	logger     *zerolog.Logger
	finished   bool
	now        func() time.Time
}

// Milestone is a timing checkpoint.
type Milestone struct {
	Name    string        `json:"name" yaml:"name"`
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"` // since t0
	Delta   time.Duration `json:"delta" yaml:"delta"`     // since the previous milestone
}

// NewRestoreTrace starts a trace. Milestones are logged at debug level
// on logger; a nil logger keeps them silent.
func NewRestoreTrace(logger *zerolog.Logger) *RestoreTrace {
	return newRestoreTrace(logger, time.Now)
}

func newRestoreTrace(logger *zerolog.Logger, now func() time.Time) *RestoreTrace {
	return &RestoreTrace{
		t0:         now(),
		milestones: make([]Milestone, 0, 8),
		logger:     logger,
		now:        now,
	}
}

// Mark records a milestone. Marks after Finish are ignored.
func (rt *RestoreTrace) Mark(name string) {
	if rt == nil {
		return
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.finished {
		return
	}

	elapsed := rt.now().Sub(rt.t0)
	var delta time.Duration
	if n := len(rt.milestones); n > 0 {
		delta = elapsed - rt.milestones[n-1].Elapsed
	}
	m := Milestone{Name: name, Elapsed: elapsed, Delta: delta}
	rt.milestones = append(rt.milestones, m)

	if rt.logger != nil {
		rt.logger.Debug().
			Str("milestone", m.Name).
			Int64("t_ms", m.Elapsed.Milliseconds()).
			Int64("delta_ms", m.Delta.Milliseconds()).
			Msg("restore trace")
	}
}

// Finish closes the trace and logs a one-line summary.
func (rt *RestoreTrace) Finish() {
	if rt == nil {
		return
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.finished {
		return
	}
	rt.finished = true
	if rt.logger == nil {
		return
	}

	parts := make([]string, 0, len(rt.milestones))
	for _, m := range rt.milestones {
		parts = append(parts, fmt.Sprintf("%s:%d", m.Name, m.Elapsed.Milliseconds()))
	}
	rt.logger.Info().
		Int64("total_ms", rt.now().Sub(rt.t0).Milliseconds()).
		Str("milestones", strings.Join(parts, ",")).
		Msg("workbench lifecycle complete")
}

// Milestones returns a copy of the recorded milestones.
func (rt *RestoreTrace) Milestones() []Milestone {
	if rt == nil {
		return nil
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return append([]Milestone(nil), rt.milestones...)
}
