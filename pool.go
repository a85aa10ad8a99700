package tpool

import (
	"sync"
	"sync/atomic"

	"github.com/pinopino/IOCPThreadPool/affinity"
	"github.com/pinopino/IOCPThreadPool/control"
	"github.com/pinopino/IOCPThreadPool/queue"
)

// Callback is the user work function. It must not block indefinitely — a
// blocked callback occupies a worker slot against maxConcurrency for as
// long as it runs. A panic inside Callback is caught and discarded; it
// never kills the worker.
type Callback func(payload any)

// Pool is a per-instance, elastic worker pool backed by a completion-queue
// dispatch/worker pipeline. Multiple Pools may coexist in one process, each
// with its own concurrency cap.
type Pool struct {
	callback Callback
	cfg      config

	minThreads int
	maxThreads int

	dispatchQ queue.Queue
	workerQ   queue.Queue

	currentThreads atomic.Int64
	activeThreads  atomic.Int64
	disposed       atomic.Bool

	submittedCount atomic.Uint64
	rejectedCount  atomic.Uint64

	shutdownCh   chan struct{}
	shutdownOnce sync.Once

	pickupCh atomic.Pointer[chan struct{}]

	workersMu sync.Mutex
	nextID    int

	control *control.Surface
}

// packet control keys, the "key field" the spec describes as a small
// control channel distinguishing normal payloads from sentinels.
const (
	keyNormal   queue.Key = 0
	keyShutdown queue.Key = 1
)

// New constructs and starts a pool. maxConcurrency bounds how many worker
// callbacks may run simultaneously (enforced by the worker completion
// queue); minThreads/maxThreads bound the live worker count. New spawns
// minThreads workers and the dispatcher before returning. Construction
// errors (invalid bounds, nil callback, completion-queue creation failure)
// are the only errors New returns; after construction the only error the
// pool surfaces is ErrRejected from Submit/SubmitEmpty — every other fault
// is contained or silently dropped, per the pool's documented error model.
func New(maxConcurrency uint32, minThreads, maxThreads int, callback Callback, opts ...Option) (*Pool, error) {
	if callback == nil {
		return nil, ErrNilCallback
	}
	if minThreads < 1 || minThreads > maxThreads {
		return nil, ErrInvalidConfig
	}
	if maxConcurrency == 0 {
		return nil, ErrInvalidConfig
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	dispatchQ, err := queue.New(1)
	if err != nil {
		return nil, wrapQueueErr(err)
	}
	workerQ, err := queue.New(maxConcurrency)
	if err != nil {
		dispatchQ.Close()
		return nil, wrapQueueErr(err)
	}

	p := &Pool{
		callback:   callback,
		cfg:        cfg,
		minThreads: minThreads,
		maxThreads: maxThreads,
		dispatchQ:  dispatchQ,
		workerQ:    workerQ,
		shutdownCh: make(chan struct{}),
		control:    control.NewSurface(),
	}
	idle := make(chan struct{}, 1)
	p.pickupCh.Store(&idle)

	p.control.SetConfig(map[string]any{
		"max_concurrency": maxConcurrency,
		"min_threads":      minThreads,
		"max_threads":      maxThreads,
	})
	p.control.RegisterDebugProbe("pool.current_threads", func() any { return p.CurrentThreads() })
	p.control.RegisterDebugProbe("pool.active_threads", func() any { return p.ActiveThreads() })

	for i := 0; i < minThreads; i++ {
		p.spawnWorker()
	}
	go p.dispatchLoop()

	return p, nil
}

// Submit hands payload to the pool for asynchronous execution. Non-blocking
// under all conditions, including full worker saturation: the submission
// only crosses the dispatch queue, never the worker queue directly. Returns
// ErrRejected once the pool has begun shutting down.
func (p *Pool) Submit(payload any) error {
	if p.disposed.Load() {
		p.rejectedCount.Add(1)
		p.refreshControlStats()
		return ErrRejected
	}
	if err := p.dispatchQ.Post(keyNormal, payload); err != nil {
		p.rejectedCount.Add(1)
		p.refreshControlStats()
		return ErrRejected
	}
	p.submittedCount.Add(1)
	p.refreshControlStats()
	return nil
}

// refreshControlStats pushes the pool's current counters into its control
// surface, so Control().Stats() reflects live state rather than an empty
// map. Called from the submission path and from the maintenance tick.
func (p *Pool) refreshControlStats() {
	p.control.SetStat("current_threads", p.CurrentThreads())
	p.control.SetStat("active_threads", p.ActiveThreads())
	p.control.SetStat("submitted", p.submittedCount.Load())
	p.control.SetStat("rejected", p.rejectedCount.Load())
}

// SubmitEmpty submits a nil payload — a sentinel for callbacks that ignore
// their argument entirely.
func (p *Pool) SubmitEmpty() error {
	return p.Submit(nil)
}

// CurrentThreads returns the live worker count.
func (p *Pool) CurrentThreads() int {
	return int(p.currentThreads.Load())
}

// ActiveThreads returns the number of workers currently inside a callback.
func (p *Pool) ActiveThreads() int {
	return int(p.activeThreads.Load())
}

// Healthy reports whether the dispatcher is free of a queue fault. It flips
// to false only if the completion-queue wait itself faults — see
// dispatchLoop; a dispatcher that exits during Shutdown leaves it true.
func (p *Pool) Healthy() bool {
	return p.control.Healthy()
}

// Control exposes the pool's introspection surface (config snapshot, live
// stats, debug probes) for embedding in a larger service's own health
// endpoint.
func (p *Pool) Control() *control.Surface {
	return p.control
}

func (p *Pool) pinWorker(id int) {
	if !p.cfg.cpuAffinity {
		return
	}
	n := affinity.NumCPU()
	if n <= 0 {
		n = 1
	}
	cpu := (p.cfg.affinityBase + id) % n
	if err := affinity.Pin(cpu); err != nil {
		p.cfg.logger.Printf("tpool: worker %d affinity pin failed: %v", id, err)
	}
}
