// Package catalog exposes the product catalog over HTTP.
//
// The Service wraps the sync orchestrator and the product store: it triggers
// syncs, serves cached product listings, counts product views and reports on
// catalog health. The Handler maps it onto fiber routes under /catalog, and
// Feature plugs it into the loader.
//
// # Routes
//
//   - POST /catalog/sync: run a sync (?dry_run=true to only plan it)
//   - GET /catalog/products: list products (?category, ?search, ?in_stock)
//   - GET /catalog/products/:article: product detail, counts a view
//   - GET /catalog/categories: product count per category
//   - GET /catalog/stats: totals and the last sync time
//   - GET /catalog/health: snapshot age and schema check
package catalog
