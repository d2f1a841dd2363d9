// @title			Osprey Platform API
// @version		1.0
// @description	Session-authenticated access to the Osprey agent dashboard data. Protected routes require the osprey_session cookie issued by POST /login.
// @BasePath		/api

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/ospreyai/osprey/internal/config"
	"github.com/ospreyai/osprey/internal/logger"
	"github.com/ospreyai/osprey/internal/repository"
	"github.com/ospreyai/osprey/internal/session"
)

func main() {
	if err := newCLI().Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

// newCLI builds the command tree. Serving is the default action.
func newCLI() *cli.App {
	return &cli.App{
		Name:  "osprey",
		Usage: "Osprey AI platform API server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   config.DefaultPort,
				Usage:   "HTTP server port",
				EnvVars: []string{"PORT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.IntFlag{
				Name:    "bcrypt-cost",
				Value:   config.DefaultBcryptCost,
				Usage:   "bcrypt work factor for password hashing",
				EnvVars: []string{"BCRYPT_COST"},
			},
			&cli.StringFlag{
				Name:    "seed-file",
				Value:   config.DefaultSeedFile,
				Usage:   "YAML file with users, agents and workflows (embedded default if empty)",
				EnvVars: []string{"SEED_FILE"},
			},
			&cli.DurationFlag{
				Name:    "session-ttl",
				Value:   config.DefaultSessionTTL,
				Usage:   "Fixed session lifetime",
				EnvVars: []string{"SESSION_TTL"},
			},
			&cli.DurationFlag{
				Name:    "sweep-interval",
				Value:   config.DefaultSweepInterval,
				Usage:   "Interval between expired session purges (0 disables)",
				EnvVars: []string{"SESSION_SWEEP_INTERVAL"},
			},
			&cli.BoolFlag{
				Name:    "secure-cookies",
				Usage:   "Always mark the session cookie Secure (otherwise only for TLS requests)",
				EnvVars: []string{"SECURE_COOKIES"},
			},
			&cli.StringFlag{
				Name:    "static-dir",
				Usage:   "Directory served at / (disabled if empty)",
				EnvVars: []string{"STATIC_DIR"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the API server",
				Action: runServe,
			},
			{
				Name:  "hash-password",
				Usage: "Print a bcrypt hash usable as password_hash in a seed file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "password",
						Usage:    "Plaintext password to hash",
						EnvVars:  []string{"OSPREY_PASSWORD"},
						Required: true,
					},
				},
				Action: runHashPassword,
			},
		},
		Action: runServe,
	}
}

func configFromContext(c *cli.Context) config.Config {
	cfg := config.Default()
	cfg.Port = c.String("port")
	cfg.SessionTTL = c.Duration("session-ttl")
	cfg.SweepInterval = c.Duration("sweep-interval")
	cfg.BcryptCost = c.Int("bcrypt-cost")
	cfg.SecureCookies = c.Bool("secure-cookies")
	cfg.SeedFile = c.String("seed-file")
	cfg.StaticDir = c.String("static-dir")
	return cfg
}

func runServe(c *cli.Context) error {
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	cfg := configFromContext(c)

	seed, err := repository.LoadSeed(cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}

	app, err := newApp(cfg, seed, time.Now())
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	go session.RunSweeper(ctx, app.sessions, cfg.SweepInterval)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           app.handler.Routes(),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server",
			"server_addr", "http://localhost:"+cfg.Port,
			"users", len(seed.Users),
			"agents", len(seed.Agents),
			"workflows", len(seed.Workflows),
			"session_ttl", cfg.SessionTTL.String(),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runHashPassword(c *cli.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(c.String("password")), c.Int("bcrypt-cost"))
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	fmt.Fprintln(c.App.Writer, string(hash))
	return nil
}
