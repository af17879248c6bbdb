// Package global provides a mock clock whose state is shared by the whole
// process. Every goroutine reads and mutates the same monotonic and
// wall-clock readings through [Clock], with mutations serialized by a
// mutex, so all goroutines observe the same mocked time. Use this flavor
// when the code under test is itself concurrent; for per-goroutine
// isolation use the threadlocal package instead. Both readings start at
// zero; reset the clock before each test that depends on an absolute
// value.
package global
