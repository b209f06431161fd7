// Package metrics exposes prometheus collectors for catalog syncs.
//
// Collectors are registered on an explicit registry so tests and multiple
// instances never collide on the global default registerer.
package metrics
