// Package profile wraps github.com/pkg/profile behind a build tag so
// release builds of dash carry no profiler at all.
//
// Build with -tags pprof to enable it. Without the tag every operation
// is a no-op and [Config.Start] returns an inert handle, so callers
// never need to guard profiling calls.
//
// Supported modes with the tag enabled: allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, and trace. Use [Modes] to list
// them programmatically.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
