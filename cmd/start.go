package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Budomar/ProductCatalog/core/loader"
	"github.com/Budomar/ProductCatalog/core/logger"
	"github.com/Budomar/ProductCatalog/core/metrics"
	"github.com/Budomar/ProductCatalog/core/middleware/auth"
	"github.com/Budomar/ProductCatalog/core/middleware/rayid"
	"github.com/Budomar/ProductCatalog/feature/catalog"
	"github.com/Budomar/ProductCatalog/feature/catalog/schedule"
	catalogsync "github.com/Budomar/ProductCatalog/feature/catalog/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/Budomar/ProductCatalog/docs/swagger"
)

// @title Product Catalog API
// @version 1.0
// @description API for the boiler product catalog and its spreadsheet sync.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog server",
	Long:  `Starts the HTTP server and the scheduler that syncs the catalog and checks its health.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rt, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer rt.Close()
		logg := rt.logger
		zap.ReplaceGlobals(logg)
		cfg := rt.cfg

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(catalog.NewFeature(rt.service))

		// RayID first so every later log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		if cfg.Metrics.Enabled {
			app.Get(cfg.Metrics.Path, adaptor.HTTPHandler(metrics.Handler(rt.registry)))
		}

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// Scheduler
		sched := schedule.New(logg)
		sched.Add(schedule.Job{
			Name:     "sync",
			Interval: cfg.Catalog.SyncInterval(),
			Run: func(ctx context.Context) error {
				_, err := rt.service.Sync(ctx, false)
				if catalogsync.KindOf(err) == catalogsync.KindInProgress {
					logg.Info("Scheduled sync skipped, a sync is already running")
					return nil
				}
				return err
			},
		})
		sched.Add(schedule.Job{
			Name:     "health",
			Interval: cfg.Catalog.HealthInterval(),
			Run: func(ctx context.Context) error {
				report, err := rt.service.CheckHealth(ctx)
				if err != nil {
					return err
				}
				if report.Healthy() {
					logg.Info("Catalog healthy", zap.Int64("products", report.Products))
				}
				return nil
			},
		})
		schedDone := make(chan struct{})
		go func() {
			sched.Start(ctx)
			close(schedDone)
		}()

		serverErr := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			serverErr <- app.Listen(cfg.Server.Address())
		}()

		// Graceful Shutdown
		select {
		case <-ctx.Done():
		case err := <-serverErr:
			if err != nil {
				return err
			}
		}
		stop()
		logg.Info("Shutting down server...")

		timeout := time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		if err := app.ShutdownWithTimeout(timeout); err != nil {
			logg.Warn("Server shutdown incomplete", zap.Error(err))
		}
		select {
		case <-schedDone:
		case <-time.After(timeout):
			logg.Warn("Scheduler did not stop in time")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

