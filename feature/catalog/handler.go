package catalog

import (
	"github.com/Budomar/ProductCatalog/core/logger"
	"github.com/Budomar/ProductCatalog/feature/catalog/store"
	catalogsync "github.com/Budomar/ProductCatalog/feature/catalog/sync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Post("/sync", h.HandleSync)
	group.Get("/products", h.HandleListProducts)
	group.Get("/products/:article", h.HandleGetProduct)
	group.Get("/categories", h.HandleCategories)
	group.Get("/stats", h.HandleStats)
	group.Get("/health", h.HandleHealth)
}

// HandleSync runs a catalog sync.
// @Summary Sync Catalog
// @Description Fetches the pricing and stock sheets and reconciles them into the product store. Falls back to the last snapshot when the sheets are unreachable.
// @Tags catalog
// @Produce json
// @Param dry_run query boolean false "Plan the sync without writing"
// @Success 200 {object} catalogsync.Outcome "Sync Outcome"
// @Failure 409 {object} catalogsync.Outcome "Sync already running"
// @Failure 502 {object} catalogsync.Outcome "Source or snapshot unusable"
// @Failure 504 {object} catalogsync.Outcome "Sync timed out"
// @Failure 500 {object} catalogsync.Outcome "Internal Server Error"
// @Router /catalog/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	dryRun := c.QueryBool("dry_run")

	l.Info("Triggering catalog sync", zap.Bool("dry_run", dryRun))
	result, err := h.service.Sync(c.UserContext(), dryRun)
	outcome := catalogsync.OutcomeOf(result, err)
	if err != nil {
		l.Error("Catalog sync failed", zap.Error(err))
	}
	return c.Status(statusFor(outcome)).JSON(outcome)
}

func statusFor(o catalogsync.Outcome) int {
	if o.Success {
		return fiber.StatusOK
	}
	switch o.ErrorKind {
	case catalogsync.KindInProgress:
		return fiber.StatusConflict
	case catalogsync.KindTimeout:
		return fiber.StatusGatewayTimeout
	case catalogsync.KindFetch, catalogsync.KindCacheCorrupt, catalogsync.KindSchemaResolution:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleListProducts lists products.
// @Summary List Products
// @Description Lists catalog products ordered by name.
// @Tags catalog
// @Produce json
// @Param category query string false "Category (meteor, laggartt, devotion, mk, other)"
// @Param search query string false "Substring of the name or article"
// @Param in_stock query boolean false "Only products in stock"
// @Success 200 {array} models.Product "Products"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/products [get]
func (h *Handler) HandleListProducts(c *fiber.Ctx) error {
	f := store.Filter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		InStock:  c.QueryBool("in_stock"),
	}

	products, err := h.service.Products(c.UserContext(), f)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Product listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(products)
}

// HandleGetProduct returns one product.
// @Summary Get Product
// @Description Returns a product by article and counts the view.
// @Tags catalog
// @Produce json
// @Param article path string true "Article"
// @Success 200 {object} models.Product "Product"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/products/{article} [get]
func (h *Handler) HandleGetProduct(c *fiber.Ctx) error {
	article := c.Params("article")

	product, err := h.service.Product(c.UserContext(), article)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Product lookup failed", zap.String("article", article), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(product)
}

// HandleCategories returns product counts per category.
// @Summary Category Counts
// @Tags catalog
// @Produce json
// @Success 200 {array} store.CategoryCount "Categories"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/categories [get]
func (h *Handler) HandleCategories(c *fiber.Ctx) error {
	counts, err := h.service.Categories(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(counts)
}

// HandleStats returns catalog totals.
// @Summary Catalog Stats
// @Tags catalog
// @Produce json
// @Success 200 {object} StatsReport "Stats"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}

// HandleHealth runs the health check.
// @Summary Catalog Health
// @Description Checks snapshot freshness and the products table schema.
// @Tags catalog
// @Produce json
// @Success 200 {object} HealthReport "Healthy"
// @Failure 503 {object} HealthReport "Unhealthy"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	report, err := h.service.CheckHealth(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Healthy() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}
