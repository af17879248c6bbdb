// Package mockinstant offers deterministic substitutes for a monotonic
// clock and a wall clock in the form of "mock clocks", allowing test code
// full control over the flow of time. Time never moves on its own; it
// only moves when the test sets or advances it, so timing-sensitive logic
// can be exercised without sleeps or flaky real-clock reads. The same
// control surface is supplied by two subpackages with different isolation:
// global shares a single clock across the whole process, while threadlocal
// gives each goroutine its own independently initialized clock. This
// package holds only the aliases and the capability interface both
// flavors satisfy.
package mockinstant
