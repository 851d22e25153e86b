package backend

import (
	"sync"
	"time"
)

// debounceDelay coalesces bursts of filesystem events into one rescan.
const debounceDelay = 100 * time.Millisecond

// debouncer delays firing per kind until signals stop arriving for the
// configured window.
type debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	fire   func(Kind)
	timers map[Kind]*time.Timer
}

func newDebouncer(delay time.Duration, fire func(Kind)) *debouncer {
	return &debouncer{
		delay:  delay,
		fire:   fire,
		timers: make(map[Kind]*time.Timer),
	}
}

func (d *debouncer) signal(kind Kind) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if timer, ok := d.timers[kind]; ok {
		timer.Reset(d.delay)
		return
	}
	d.timers[kind] = time.AfterFunc(d.delay, func() { d.fire(kind) })
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, timer := range d.timers {
		timer.Stop()
	}
}
