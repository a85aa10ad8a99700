package control

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Surface is the introspection facade a Pool exposes: GetConfig/SetConfig
// for the pool's static bounds, SetStat/Stats for its live counters,
// RegisterDebugProbe/DumpState for ad-hoc diagnostics, and Healthy for the
// dispatcher-zombie case. One mutex guards all three maps; a pool's
// introspection traffic is low-volume enough that splitting it into
// separate lock-per-concern stores buys nothing.
type Surface struct {
	mu     sync.RWMutex
	cfg    map[string]any
	stats  map[string]any
	probes map[string]func() any

	healthy atomic.Bool
}

// NewSurface builds an empty, healthy Surface and seeds a runtime.NumCPU
// debug probe, matching the teacher's always-present platform probe.
func NewSurface() *Surface {
	s := &Surface{
		cfg:    make(map[string]any),
		stats:  make(map[string]any),
		probes: make(map[string]func() any),
	}
	s.healthy.Store(true)
	s.probes["runtime.cpus"] = func() any { return runtime.NumCPU() }
	return s
}

// SetConfig merges static configuration values (e.g. the pool's bounds).
func (s *Surface) SetConfig(cfg map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range cfg {
		s.cfg[k] = v
	}
}

// GetConfig returns a snapshot of the static configuration.
func (s *Surface) GetConfig() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.cfg))
	for k, v := range s.cfg {
		out[k] = v
	}
	return out
}

// SetStat records or updates a single live counter. The pool calls this
// from its submission path and from its maintenance tick, so a snapshot
// taken via Stats reflects current_threads/active_threads/submitted/
// rejected as of the last tick, not just whatever was true at construction.
func (s *Surface) SetStat(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats[key] = value
}

// Stats returns a snapshot of all live counters.
func (s *Surface) Stats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.stats))
	for k, v := range s.stats {
		out[k] = v
	}
	return out
}

// RegisterDebugProbe adds a named diagnostic hook.
func (s *Surface) RegisterDebugProbe(name string, fn func() any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.probes[name] = fn
}

// DumpState runs every registered debug probe and returns the results.
// Probes are copied out before being invoked so a probe that calls back
// into RegisterDebugProbe cannot deadlock on s.mu.
func (s *Surface) DumpState() map[string]any {
	s.mu.RLock()
	probes := make(map[string]func() any, len(s.probes))
	for k, fn := range s.probes {
		probes[k] = fn
	}
	s.mu.RUnlock()

	out := make(map[string]any, len(probes))
	for k, fn := range probes {
		out[k] = fn()
	}
	return out
}

// MarkUnhealthy flips Healthy to false. Irreversible: once the dispatcher
// has faulted there is no path back to a sane pool short of recreating it.
func (s *Surface) MarkUnhealthy() {
	s.healthy.Store(false)
}

// Healthy reports false once MarkUnhealthy has been called; the pool calls
// it when its dispatcher stops on a queue fault.
func (s *Surface) Healthy() bool {
	return s.healthy.Load()
}
