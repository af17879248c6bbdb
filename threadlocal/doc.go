// Package threadlocal provides a mock clock whose state is scoped to the
// calling goroutine. Each goroutine gets its own monotonic and wall-clock
// readings, created lazily at zero on first touch, so tests running in
// parallel on different goroutines cannot interfere with each other's
// time. A goroutine never observes another goroutine's writes; code under
// test that spawns its own goroutines will see fresh clocks there, so use
// the global package instead when the mocked time must be shared.
package threadlocal
