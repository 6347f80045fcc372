//go:build profile

package profiler

import (
	"sync"
	"sync/atomic"
)

// recorder keeps the most recent scope events in a fixed ring. Recording is
// lock free; only name interning takes the mutex.
type recorder struct {
	ready atomic.Bool
	size  uint64
	next  atomic.Uint64
	buf   []event

	mu    sync.Mutex
	names []string
	ids   map[string]int
}

var rec recorder

func (r *recorder) reset(capacity int) {
	r.ready.Store(false)
	r.size = uint64(capacity)
	r.buf = make([]event, capacity)
	r.next.Store(0)
	r.ready.Store(true)
}

func (r *recorder) record(e event) {
	i := r.next.Add(1) - 1
	r.buf[i%r.size] = e
}

// events returns what the ring still holds, oldest first.
func (r *recorder) events() []event {
	n := r.next.Load()
	start := uint64(0)
	if n > r.size {
		start = n - r.size
	}
	out := make([]event, 0, n-start)
	for i := start; i < n; i++ {
		out = append(out, r.buf[i%r.size])
	}
	return out
}

func (r *recorder) id(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.ids[name]; ok {
		return id
	}
	if r.ids == nil {
		r.ids = map[string]int{}
	}
	id := len(r.names)
	r.ids[name] = id
	r.names = append(r.names, name)
	return id
}

func (r *recorder) frameNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.names...)
}
