package setup

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/bornholm/scaffold/internal/config"
	"github.com/bornholm/scaffold/internal/site"
	"github.com/pkg/errors"

	sloghttp "github.com/samber/slog-http"
)

// NewHandlerFromConfig builds the site handler. The header instances
// janitor runs until ctx is done. The returned closer releases the
// widgets resources and must be called once the server is shut down.
func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, io.Closer, error) {
	slogMiddleware := sloghttp.NewWithConfig(slog.Default(), sloghttp.Config{
		DefaultLevel:     slog.LevelDebug,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	})

	widgets, err := NewWidgetsFromConfig(ctx, conf)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	registry := NewRegistryFromConfig(ctx, conf)

	go registry.Run(ctx)

	siteHandler, err := site.NewHandler(registry, widgets...)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	return slogMiddleware(siteHandler), siteHandler, nil
}
