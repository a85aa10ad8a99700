// Command demo submits a burst of work to a Pool and prints the resulting
// elasticity and completion counts.
package main

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	tpool "github.com/pinopino/IOCPThreadPool"
)

func main() {
	var processed atomic.Int64
	var wg sync.WaitGroup

	p, err := tpool.New(8, 2, 16, func(payload any) {
		defer wg.Done()
		time.Sleep(10 * time.Millisecond)
		processed.Add(1)
	}, tpool.WithMaxIdleThreads(1))
	if err != nil {
		panic(err)
	}
	defer p.Shutdown()

	const jobs = 500
	wg.Add(jobs)
	for i := 0; i < jobs; i++ {
		if err := p.Submit(i); err != nil {
			wg.Done()
		}
	}
	wg.Wait()

	stats := p.Stats()
	fmt.Printf("processed=%d current_threads=%d active_threads=%d healthy=%v\n",
		processed.Load(), stats.CurrentThreads, stats.ActiveThreads, stats.Healthy)
}
