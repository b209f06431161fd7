// Package database handles database connections and schema inspection.
//
// It wraps GORM and picks a dialector from the configured driver: MySQL for
// production, Postgres (pgx underneath) as an alternative, and SQLite for local
// runs and tests.
//
// # Connect
//
// Connect opens the connection, applies pool settings and pings the server within
// the configured timeout. SQLite connections are capped at a single open
// connection so an in-memory database stays visible across transactions.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns for any supported dialect, and
// MissingColumns compares them against the columns a feature expects. The catalog
// health check uses it to verify the products table.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "products", []string{"article", "views_count"})
package database
