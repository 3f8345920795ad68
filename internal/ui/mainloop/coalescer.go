package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks into one main-loop turn. Only
// the last task posted for a key before its turn runs.
type Coalescer struct {
	mu      sync.Mutex
	latest  map[string]func()
	post    func(func())
	stopped bool
}

// NewCoalescer schedules merged tasks through post, typically Loop.Post.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{
		latest: make(map[string]func()),
		post:   post,
	}
}

// Post records fn as the task for key and schedules a turn if none is
// pending for it.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	_, scheduled := c.latest[key]
	c.latest[key] = fn
	c.mu.Unlock()

	if !scheduled {
		c.post(func() { c.run(key) })
	}
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn, ok := c.latest[key]
	delete(c.latest, key)
	stopped := c.stopped
	c.mu.Unlock()

	if ok && !stopped {
		fn()
	}
}

// Pending returns how many keys wait for their turn.
func (c *Coalescer) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.latest)
}

// Stop drops pending work; later posts are ignored.
func (c *Coalescer) Stop() {
	c.mu.Lock()
	c.stopped = true
	clear(c.latest)
	c.mu.Unlock()
}
