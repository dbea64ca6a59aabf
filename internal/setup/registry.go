package setup

import (
	"context"
	"time"

	"github.com/bornholm/scaffold/internal/config"
	"github.com/bornholm/scaffold/internal/header"
	"github.com/bornholm/scaffold/internal/instance"
)

func NewRegistryFromConfig(ctx context.Context, conf *config.Config) *instance.Registry {
	opts := []instance.OptionFunc{
		instance.WithHeaderOptions(
			header.WithTitle(string(conf.Header.Title)),
			header.WithLogo(string(conf.Header.Logo.Src), string(conf.Header.Logo.Alt)),
		),
		instance.WithMaxInstances(int(conf.Header.MaxInstances)),
	}

	if conf.Header.IdleTimeout != nil && *conf.Header.IdleTimeout > 0 {
		opts = append(opts, instance.WithIdleTimeout(time.Duration(*conf.Header.IdleTimeout)))
	}

	if conf.Header.SweepInterval != nil && *conf.Header.SweepInterval > 0 {
		opts = append(opts, instance.WithSweepInterval(time.Duration(*conf.Header.SweepInterval)))
	}

	return instance.NewRegistry(opts...)
}
