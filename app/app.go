package app

import (
	"context"

	"log/slog"

	"github.com/velora-commerce/backoffice-manager/config"
	httpapi "github.com/velora-commerce/backoffice-manager/internal/api/http"
	"github.com/velora-commerce/backoffice-manager/internal/commerceapi"
	"github.com/velora-commerce/backoffice-manager/internal/export"
	"github.com/velora-commerce/backoffice-manager/internal/report"
)

// App is the main application
type App struct {
	hs *httpapi.Server
	c  *config.Config
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{c: c}
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	slog.Default().InfoContext(ctx, "starting backoffice manager")

	data := commerceapi.New(&a.c.Commerce)
	reports := report.New(data)

	a.hs = httpapi.New(&a.c.HTTP)
	if err := a.hs.Start(ctx, reports, export.NewCSV()); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}
	return nil
}

// Stop stops the application and waits for the server to exit
func (a *App) Stop(ctx context.Context) {
	if err := a.hs.Stop(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "http server shutdown failed",
			slog.String("err", err.Error()),
		)
	}
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() <-chan struct{} {
	return a.hs.Done()
}
