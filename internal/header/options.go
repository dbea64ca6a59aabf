package header

import "github.com/bornholm/scaffold/internal/ui"

type Options struct {
	Logo ui.NavbarLogo
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Logo: ui.NavbarLogo{
			URL:   "/",
			Src:   "/static/logo.svg",
			Alt:   "SE2 logo",
			Title: "Scaffold Balancer",
		},
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithLogo(src, alt string) OptionFunc {
	return func(opts *Options) {
		if src != "" {
			opts.Logo.Src = src
		}

		if alt != "" {
			opts.Logo.Alt = alt
		}
	}
}

func WithTitle(title string) OptionFunc {
	return func(opts *Options) {
		if title != "" {
			opts.Logo.Title = title
		}
	}
}
