// Package schedule runs named jobs on fixed intervals inside the server process.
package schedule
