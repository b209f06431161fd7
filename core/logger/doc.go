// Package logger builds the zap logger shared by the server, the scheduler and the CLI.
//
// Level "debug" starts from zap's development preset, anything else from the
// production preset. Format picks the json or console encoder and Output sends
// entries to stderr, stdout or a file.
//
// Two helpers scope a logger:
//
//	l := logger.WithRayID(log, c)        // per HTTP request, from the rayid middleware
//	l := logger.WithRunID(log, result.RunID) // per sync run
package logger
