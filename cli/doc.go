// Package cli contains the command line interface for dash.
//
// # Commands
//
//	dash [script]          Execute a script file, "-" for stdin, or a
//	                       built-in demo program when no file is given
//	dash ast [script]      Print the parsed program as JSON or YAML
//	dash repl              Start an interactive session
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Enable colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default: ~/.cache/dash/pprof)
//
// # Configuration
//
// Flag defaults may be provided in ~/.config/dash/config.json using the
// flag names as keys.
package cli
