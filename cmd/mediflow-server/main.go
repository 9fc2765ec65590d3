package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mediflow/mediflow/internal/config"
	"github.com/mediflow/mediflow/internal/domain/account"
	"github.com/mediflow/mediflow/internal/domain/activitylog"
	"github.com/mediflow/mediflow/internal/domain/appointment"
	"github.com/mediflow/mediflow/internal/domain/healthrecord"
	"github.com/mediflow/mediflow/internal/platform/auth"
	"github.com/mediflow/mediflow/internal/platform/db"
	"github.com/mediflow/mediflow/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mediflow-server",
		Short: "MediFlow patient portal API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the portal API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, cfg.MigrationsDir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, cfg.MigrationsDir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	issuer := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	// Services
	accountSvc := account.NewService(account.NewRepoPG(pool), issuer)
	appointmentSvc := appointment.NewService(appointment.NewRepoPG(pool))
	recordSvc := healthrecord.NewService(healthrecord.NewRepoPG(pool))
	activitySvc := activitylog.NewService(activitylog.NewRepoPG(pool))

	accountH := account.NewHandler(accountSvc)
	appointmentH := appointment.NewHandler(appointmentSvc)
	recordH := healthrecord.NewHandler(recordSvc)
	activityH := activitylog.NewHandler(activitySvc)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.RequestTimeout(30 * time.Second))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Role scoping follows the URL prefix: /api/patient/* needs a patient
	// token, /api/physician/* a physician one. Signup and login sit on the
	// same prefixes without the auth middleware.
	patientPublic := e.Group("/api/patient")
	patientAPI := e.Group("/api/patient",
		auth.Middleware(issuer), auth.RequireRole(auth.RolePatient))
	physicianPublic := e.Group("/api/physician")
	physicianAPI := e.Group("/api/physician",
		auth.Middleware(issuer), auth.RequireRole(auth.RolePhysician))

	accountH.RegisterPatientRoutes(patientPublic, patientAPI)
	accountH.RegisterPhysicianRoutes(physicianPublic, physicianAPI)
	appointmentH.RegisterPatientRoutes(patientAPI)
	appointmentH.RegisterPhysicianRoutes(physicianAPI)
	recordH.RegisterPatientRoutes(patientAPI)
	recordH.RegisterPhysicianRoutes(physicianAPI)
	activityH.RegisterPatientRoutes(patientAPI)
	activityH.RegisterPhysicianRoutes(physicianAPI)

	e.GET("/health", db.HealthHandler(pool))

	// Start with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
