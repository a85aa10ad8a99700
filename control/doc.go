// Package control provides the pool's runtime introspection surface:
// dynamic configuration snapshots, metrics, and debug probes, plus a
// healthy/unhealthy flag for the dispatcher-fault case the pool's docs call
// out explicitly (a dispatcher that terminates on a kernel-wait fault leaves
// the pool a "zombie": workers still drain on shutdown, but nothing gets
// dispatched). Control is per-instance, not global — one Surface per Pool.
package control
