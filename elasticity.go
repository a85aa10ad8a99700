package tpool

// maybeScaleUp adds one worker if the pool has headroom and every current
// worker is already busy. Called only from the dispatcher's pickup-wait
// timeout, so it never races with itself.
func (p *Pool) maybeScaleUp() {
	if p.disposed.Load() {
		// Cheap early exit; spawnWorker rechecks disposed under workersMu
		// regardless, which is what actually closes the race against
		// Shutdown (see shutdown.go).
		return
	}
	current := p.CurrentThreads()
	if current >= p.maxThreads {
		return
	}
	if p.ActiveThreads() < current {
		// At least one worker is idle; a pickup is simply slow to land,
		// not a capacity problem.
		return
	}
	p.spawnWorker()
}

// runMaintenance is the periodic tick run by the dispatcher between
// dispatch-queue waits. It handles scale-down only; scale-up is reactive
// and lives in maybeScaleUp.
//
// The source this pool is modeled on gates scale-down on active_threads,
// which for an elastic pool sized by load is very nearly always true and
// would shed workers on almost every tick — effectively undoing scale-up
// within one maintenance period. This implementation gates on
// current_threads instead: shrink only while there is live headroom above
// min_threads, which is the gate that actually matches the intent of
// "give back idle capacity, but never below the floor".
func (p *Pool) runMaintenance() {
	defer p.refreshControlStats()

	current := p.CurrentThreads()
	if current <= p.minThreads {
		return
	}
	active := p.ActiveThreads()
	idle := current - active
	if idle <= p.cfg.maxIdleThreads {
		return
	}

	shed := (idle-p.cfg.maxIdleThreads)/2 + 1
	if shed <= 0 {
		return
	}
	room := current - p.minThreads
	if shed > room {
		shed = room
	}
	for i := 0; i < shed; i++ {
		if err := p.workerQ.Post(keyShutdown, nil); err != nil {
			p.cfg.logger.Printf("tpool: scale-down sentinel post failed: %v", err)
			return
		}
	}
}
