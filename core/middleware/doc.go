// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: validates the X-API-Key header against server.api_key.
//   - rayid: tags every request with a RayID (reusing an incoming X-Ray-ID) and
//     echoes it on the response for tracing.
//
// RayID is registered first so every later log line can carry it through
// logger.WithRayID.
package middleware
