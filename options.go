package tpool

import (
	"log"
	"time"
)

// Defaults mirror the documented production values for this kind of pool.
const (
	defaultDispatchTimeout           = 100 * time.Millisecond
	defaultMaxThreadsDispatchTimeout = 10 * time.Second
	defaultMaintPeriod               = 5 * time.Second
	defaultMaxIdleThreads            = 0
)

type config struct {
	maxIdleThreads            int
	dispatchTimeout           time.Duration
	maxThreadsDispatchTimeout time.Duration
	maintPeriod               time.Duration
	cpuAffinity               bool
	affinityBase              int
	logger                    *log.Logger
}

func defaultConfig() config {
	return config{
		maxIdleThreads:            defaultMaxIdleThreads,
		dispatchTimeout:           defaultDispatchTimeout,
		maxThreadsDispatchTimeout: defaultMaxThreadsDispatchTimeout,
		maintPeriod:               defaultMaintPeriod,
		logger:                    log.Default(),
	}
}

func (c *config) validate() error {
	if c.maxIdleThreads < 0 {
		return wrapConfigErr("maxIdleThreads must be >= 0")
	}
	if c.dispatchTimeout <= 0 {
		return wrapConfigErr("dispatchTimeout must be > 0")
	}
	if c.maxThreadsDispatchTimeout < 0 {
		return wrapConfigErr("maxThreadsDispatchTimeout must be >= 0")
	}
	if c.maintPeriod <= 0 {
		return wrapConfigErr("maintPeriod must be > 0")
	}
	return nil
}

// Option customizes pool construction beyond the required
// (maxConcurrency, minThreads, maxThreads) bounds.
type Option func(*config)

// WithMaxIdleThreads sets the idle-worker threshold above which the
// elasticity controller sheds workers on its periodic tick. Default 0.
func WithMaxIdleThreads(n int) Option {
	return func(c *config) { c.maxIdleThreads = n }
}

// WithDispatchTimeout overrides the short timeout governing dispatcher
// responsiveness, maintenance cadence, and pickup-wait patience. Default
// 100ms.
func WithDispatchTimeout(d time.Duration) Option {
	return func(c *config) { c.dispatchTimeout = d }
}

// WithMaxThreadsDispatchTimeout overrides the extended pickup-wait patience
// applied only once current_threads == max_threads. Default 10s.
func WithMaxThreadsDispatchTimeout(d time.Duration) Option {
	return func(c *config) { c.maxThreadsDispatchTimeout = d }
}

// WithMaintPeriod overrides the maintenance tick interval. Default 5s.
func WithMaintPeriod(d time.Duration) Option {
	return func(c *config) { c.maintPeriod = d }
}

// WithCPUAffinity pins each worker's OS thread to a CPU on platforms that
// support it (see the affinity package); base sets the first CPU index,
// workers pin to (base+workerID) mod NumCPU. Best-effort: pinning failures
// are logged, never fatal.
func WithCPUAffinity(base int) Option {
	return func(c *config) {
		c.cpuAffinity = true
		c.affinityBase = base
	}
}

// WithLogger overrides the logger used for dispatcher and worker queue
// faults, recovered callback panics, and affinity pin failures (Unpin
// reports no errors). Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
