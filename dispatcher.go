package tpool

import (
	"errors"
	"time"

	"github.com/pinopino/IOCPThreadPool/queue"
)

// dispatchLoop is the pool's single dispatcher goroutine. It pulls payloads
// off the dispatch queue one at a time and hands each to the worker queue,
// but does not move on to the next payload until some worker has actually
// picked the current one up (the "pickup-wait"). This is the backpressure
// point: a burst of Submit calls queues up on the dispatch queue's own
// buffer, never on the worker queue, so scale-up decisions are always made
// against a payload a worker has not yet started draining.
//
// Each pickup-wait round lasts dispatchTimeout and ends in a scale-up
// check; once current_threads has reached max_threads a round lasts
// dispatchTimeout plus maxThreadsDispatchTimeout instead. The dispatcher
// keeps waiting on the same payload until pickup or shutdown.
func (p *Pool) dispatchLoop() {
	lastMaint := time.Now()
	for {
		pkt, done, err := p.dispatchQ.Wait(p.cfg.dispatchTimeout)
		if err != nil {
			if errors.Is(err, queue.ErrTimeout) {
				p.runMaintenance()
				lastMaint = time.Now()
				continue
			}
			if errors.Is(err, queue.ErrClosed) {
				return
			}
			p.cfg.logger.Printf("tpool: dispatch queue wait fault: %v", err)
			p.control.MarkUnhealthy()
			return
		}
		if done != nil {
			done()
		}
		if pkt.Key == keyShutdown {
			return
		}
		p.deliver(pkt.Payload)

		if time.Since(lastMaint) >= p.cfg.maintPeriod {
			p.runMaintenance()
			lastMaint = time.Now()
		}
	}
}

// deliver posts payload to the worker queue and blocks the dispatcher until
// a worker signals pickup, re-arming a scale-up check on every timeout.
func (p *Pool) deliver(payload any) {
	pickup := make(chan struct{}, 1)
	p.pickupCh.Store(&pickup)

	if err := p.workerQ.Post(keyNormal, payload); err != nil {
		p.cfg.logger.Printf("tpool: worker queue post failed: %v", err)
		return
	}

	for {
		timeout := p.cfg.dispatchTimeout
		if p.CurrentThreads() >= p.maxThreads {
			timeout += p.cfg.maxThreadsDispatchTimeout
		}

		select {
		case <-pickup:
			return
		case <-p.shutdownCh:
			return
		case <-time.After(timeout):
			// The payload already sits in the worker queue; re-posting it
			// would duplicate delivery. Kick the elasticity controller and
			// keep waiting on the same pickup signal for a freshly spawned
			// worker to catch up.
			p.maybeScaleUp()
		}
	}
}
