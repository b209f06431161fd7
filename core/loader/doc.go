// Package loader mounts feature routes on the Fiber app.
//
// A feature reports its name, whether it can run, and registers its routes:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Manager.LoadAll skips disabled features and returns the names it loaded,
// in registration order. The catalog feature is disabled when no service
// could be built.
package loader
