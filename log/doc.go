// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable output format, minimum level, time
// formatting, and caller information, all applied with functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("interpreter started", slog.String("script", path))
//
// A zero-valued [Logger] is valid and discards all messages, so library
// code can accept one as an optional dependency without nil checks.
//
// # Package-Level Logger
//
// The package maintains a default logger used by the package-level
// functions ([Debug], [Info], [Warn], [Error], ...). It is reconfigured
// with [Config]:
//
//	log.Config(log.WithLevel(log.LevelDebug), log.WithFormat(log.FormatText))
//
// # Levels
//
// Five levels are supported: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Trace is below slog's Debug and is used
// for per-node instrumentation of the parser and evaluator.
package log
