// Package server holds the HTTP server configuration.
//
// The start command reads the listen port, the optional API key enforced by
// core/middleware, and the graceful shutdown timeout from here.
package server
