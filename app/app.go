package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/happywht/gg-mange/config"
	"github.com/happywht/gg-mange/database"
	"github.com/happywht/gg-mange/handlers"
	"github.com/happywht/gg-mange/server"
	"github.com/happywht/gg-mange/services/access"
	"github.com/happywht/gg-mange/services/auth"
	"github.com/happywht/gg-mange/services/logging"
	"github.com/happywht/gg-mange/services/siteconfig"
	"github.com/happywht/gg-mange/services/totp"
	"github.com/happywht/gg-mange/session"
	"github.com/happywht/gg-mange/vault"
	"go.uber.org/fx"
)

type App struct {
	fx     *fx.App
	logger *logging.Service
}

// New assembles the application graph. Passing a nil config loads it from
// the environment.
func New(cfg *config.Config) *App {
	app := &App{}

	app.fx = fx.New(
		config.NewProvider(cfg),
		logging.Module,
		fx.Supply(database.WithModels(
			&vault.Account{},
			&vault.Announcement{},
			&auth.User{},
			&session.UserSession{},
		)),
		database.Module,
		vault.Module,
		totp.Module,
		access.Module,
		siteconfig.Module,
		auth.Module,
		session.Module,
		server.NewProvider(),
		handlers.Module,
		fx.Populate(&app.logger),
	)

	return app
}

func (a *App) Start() error {
	return a.fx.Start(context.Background())
}

// Run starts the application and blocks until SIGINT or SIGTERM.
func (a *App) Run() {
	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	if a.logger != nil {
		a.logger.Info("received shutdown signal, stopping gracefully")
	} else {
		log.Printf("Received signal %v, shutting down gracefully...", sig)
	}

	a.Stop()
}

func (a *App) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.fx.Stop(ctx); err != nil {
		if a.logger != nil {
			a.logger.Error("failed to stop application gracefully")
		} else {
			log.Printf("Failed to stop application gracefully: %v", err)
		}
	}

	_ = a.logger.Sync()
}
