package setup

import (
	"context"
	"log/slog"

	"github.com/bornholm/scaffold/internal/config"
	"github.com/bornholm/scaffold/internal/widget"
	"github.com/pkg/errors"

	_ "github.com/bornholm/scaffold/internal/widget/all"
)

func NewWidgetsFromConfig(ctx context.Context, conf *config.Config) ([]widget.Widget, error) {
	widgets := make([]widget.Widget, 0, len(conf.Widgets))

	for idx, w := range conf.Widgets {
		var options any
		if w.Options != nil {
			options = w.Options.Data
		}

		created, err := widget.New(widget.Type(w.Type), options)
		if err != nil {
			return nil, errors.Wrapf(err, "could not create widget #%d", idx)
		}

		if w.When != "" {
			rule := widget.NewRule(string(w.When))
			if err := rule.Compile(); err != nil {
				return nil, errors.Wrapf(err, "could not compile rule of widget #%d", idx)
			}

			created = widget.When(created, rule)
		}

		slog.DebugContext(ctx, "widget created", slog.String("type", string(w.Type)), slog.String("when", string(w.When)))

		widgets = append(widgets, created)
	}

	return widgets, nil
}
