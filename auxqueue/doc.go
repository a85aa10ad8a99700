// Package auxqueue holds the two experiment-queue collaborators the pool
// names but does not depend on: a single-consumer work queue and a
// concurrency-limited task scheduler. Neither is exercised by the pool's
// dispatch/worker pipeline; they are standalone utilities client code can
// wire up alongside a Pool.
package auxqueue
