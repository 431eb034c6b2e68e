package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-career-path/internal/logger"
	"github.com/MKhiriev/go-career-path/internal/service"
	"github.com/MKhiriev/go-career-path/internal/store"
)

// App runs the client until the user quits.
type App struct {
	services *service.ClientServices
	storages *store.ClientStorages
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, storages *store.ClientStorages, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, fmt.Errorf("client: services and ui are required")
	}
	return &App{services: services, storages: storages, ui: ui, logger: logger}, nil
}

// Run shows the UI until the user quits or the process is interrupted. The
// session marker lives as long as the process, so a fresh Run starts logged
// out and the database connection is closed on exit.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = a.logger.WithContext(ctx)

	if a.storages != nil {
		defer func() {
			if err := a.storages.Close(); err != nil {
				a.logger.Err(err).Str("func", "*App.Run").Msg("error closing storages")
			}
		}()
	}

	user, ok := a.services.SessionService.CurrentUser()
	a.logger.Info().
		Str("func", "*App.Run").
		Bool("session", ok).
		Str("username", user).
		Msg("client started")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Str("func", "*App.Run").Msg("client stopped")
	return nil
}
