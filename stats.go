package tpool

// Stats is a point-in-time snapshot of pool accounting. Fields are read
// without locks (atomic loads), so a snapshot may be mildly inconsistent
// under concurrent mutation — adequate for observability, never relied on
// for control-flow decisions.
type Stats struct {
	CurrentThreads int
	ActiveThreads  int
	MinThreads     int
	MaxThreads     int
	Submitted      uint64
	Rejected       uint64
	Healthy        bool
}

// Stats returns a snapshot of the pool's live counters.
func (p *Pool) Stats() Stats {
	return Stats{
		CurrentThreads: p.CurrentThreads(),
		ActiveThreads:  p.ActiveThreads(),
		MinThreads:     p.minThreads,
		MaxThreads:     p.maxThreads,
		Submitted:      p.submittedCount.Load(),
		Rejected:       p.rejectedCount.Load(),
		Healthy:        p.Healthy(),
	}
}
