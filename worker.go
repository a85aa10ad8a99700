package tpool

import (
	"errors"

	"github.com/pinopino/IOCPThreadPool/affinity"
	"github.com/pinopino/IOCPThreadPool/queue"
)

// spawnWorker increments current_threads and starts one worker goroutine.
// It shares workersMu with Shutdown: Shutdown sets disposed and captures
// current_threads while holding the lock, so a spawnWorker call either
// completes entirely beforehand (its worker is then accounted for in the
// sentinel count Shutdown posts) or observes disposed already set and
// becomes a no-op — there is no window where a worker is spawned without
// ever receiving a shutdown sentinel.
func (p *Pool) spawnWorker() {
	p.workersMu.Lock()
	defer p.workersMu.Unlock()

	if p.disposed.Load() {
		return
	}

	id := p.nextID
	p.nextID++
	p.currentThreads.Add(1)
	go p.workerLoop(id)
}

// workerLoop waits on the worker completion queue, signals pickup for
// every non-sentinel packet it dequeues, and runs the user callback with
// panic containment. It exits — decrementing current_threads — only on a
// shutdown sentinel, a closed queue, or a fatal queue fault.
func (p *Pool) workerLoop(id int) {
	p.pinWorker(id)
	defer p.currentThreads.Add(-1)
	defer func() {
		if p.cfg.cpuAffinity {
			affinity.Unpin()
		}
	}()

	for {
		pkt, done, err := p.workerQ.Wait(0)
		if err != nil {
			if errors.Is(err, queue.ErrClosed) {
				return
			}
			if errors.Is(err, queue.ErrTimeout) {
				continue
			}
			p.cfg.logger.Printf("tpool: worker %d queue wait fault: %v", id, err)
			return
		}

		if pkt.Key == keyShutdown {
			if done != nil {
				done()
			}
			return
		}

		p.signalPickup()

		p.activeThreads.Add(1)
		p.runCallback(pkt.Payload)
		p.activeThreads.Add(-1)

		if done != nil {
			done()
		}
	}
}

// signalPickup tells the dispatcher that some worker has taken the
// payload it most recently posted. A non-blocking send: if the dispatcher
// isn't currently waiting on this particular pickup channel (it already
// moved on, or this is a stale reference) the signal is simply dropped.
func (p *Pool) signalPickup() {
	ptr := p.pickupCh.Load()
	if ptr == nil {
		return
	}
	select {
	case *ptr <- struct{}{}:
	default:
	}
}

// runCallback invokes the user callback, converting a panic into a logged
// line rather than a crashed worker.
func (p *Pool) runCallback(payload any) {
	defer func() {
		if r := recover(); r != nil {
			p.cfg.logger.Printf("tpool: callback panic recovered: %v", r)
		}
	}()
	p.callback(payload)
}
