package resilience

import "sync"

// SingleFlight collapses concurrent lookups for the same key into one
// upstream call. Later callers block until the first returns and share
// its result. Results are not cached: once the call finishes, the next
// caller for the key runs fn again.
type SingleFlight struct {
	mu       sync.Mutex
	inflight map[string]*flightResult
}

type flightResult struct {
	done chan struct{}
	val  any
	err  error
}

// Do runs fn at most once per key at a time. The bool result reports
// whether the caller shared another call's result instead of running fn
// itself.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if existing, ok := g.inflight[key]; ok {
		g.mu.Unlock()
		<-existing.done
		return existing.val, existing.err, true
	}

	res := &flightResult{done: make(chan struct{})}
	if g.inflight == nil {
		g.inflight = make(map[string]*flightResult)
	}
	g.inflight[key] = res
	g.mu.Unlock()

	res.val, res.err = fn()

	g.mu.Lock()
	delete(g.inflight, key)
	g.mu.Unlock()
	close(res.done)

	return res.val, res.err, false
}
