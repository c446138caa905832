package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flat-monitor/core/loader"
	"flat-monitor/core/logger"
	"flat-monitor/core/metrics"
	"flat-monitor/core/middleware/auth"
	"flat-monitor/core/middleware/rayid"
	"flat-monitor/feature/flats"
	"flat-monitor/feature/integrity"
	"flat-monitor/feature/notify"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "flat-monitor/docs/swagger"
)

// @title Flat Monitor API
// @version 1.0
// @description Listing monitor for one residential complex: cheapest flats, stats and manual reconciliation passes.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server and the scheduler",
	Long: `Starts the HTTP server, then runs a reconciliation pass after the first delay
and every interval after that, sending each report to the configured Telegram chat.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rt, err := bootstrap(ctx)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer rt.close()
		logg := rt.log
		zap.ReplaceGlobals(logg)

		m := metrics.New()
		svc := rt.service(m)
		notifier := notify.New(rt.cfg.Telegram, logg)
		if !rt.cfg.Telegram.Enabled() {
			logg.Warn("Telegram is not configured, scheduled reports will only be logged")
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// RayID first so every later log line carries it.
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

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey, Skip: []string{"/metrics"}}))

		if rt.cfg.Server.MetricsEnabled {
			app.Get("/metrics", m.Handler())
		}

		mgr := loader.NewManager()
		mgr.Register(flats.NewFeature(svc, logg))
		mgr.Register(integrity.NewFeature(rt.db, rt.storage, rt.cfg.Storage.Bucket, rt.cfg.Storage.Region, logg))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		job := flats.NewJob(svc, notifier, rt.cfg.Monitor, logg)
		jobDone := make(chan struct{})
		go func() {
			job.Run(ctx)
			close(jobDone)
		}()

		go func() {
			logg.Info("Starting server", zap.String("address", rt.cfg.Server.Address()))
			if err := app.Listen(rt.cfg.Server.Address()); err != nil {
				logg.Error("Server stopped", zap.Error(err))
				stop()
			}
		}()

		<-ctx.Done()
		logg.Info("Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logg.Warn("Server shutdown incomplete", zap.Error(err))
		}
		<-jobDone
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
