package tpool

import "time"

// Shutdown stops the pool: it rejects further Submit calls, drains the
// dispatcher, and waits for every live worker to exit before returning.
// Idempotent — calling it more than once, or concurrently, is safe and the
// second caller simply observes the same completed shutdown.
func (p *Pool) Shutdown() {
	p.shutdownOnce.Do(func() {
		// Hold workersMu across the disposed flip and the current_threads
		// read so that no spawnWorker call can land in between: it either
		// ran to completion before this lock was taken (and is counted in
		// n below) or it will see disposed=true and no-op once it gets the
		// lock. Without this, a worker spawned after n is captured would
		// never receive a sentinel and the busy-wait below would hang
		// forever.
		p.workersMu.Lock()
		p.disposed.Store(true)
		n := p.CurrentThreads()
		p.workersMu.Unlock()

		close(p.shutdownCh)
		p.dispatchQ.Post(keyShutdown, nil)

		for i := 0; i < n; i++ {
			p.workerQ.Post(keyShutdown, nil)
		}

		for p.CurrentThreads() > 0 {
			time.Sleep(time.Millisecond)
		}

		p.dispatchQ.Close()
		p.workerQ.Close()
	})
}
