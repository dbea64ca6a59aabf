package instance

import (
	"time"

	"github.com/bornholm/scaffold/internal/header"
)

type Options struct {
	IdleTimeout   time.Duration
	SweepInterval time.Duration
	HeaderOptions []header.OptionFunc
	Now           func() time.Time

	// MaxInstances caps the number of mounted headers. Zero or less
	// disables the cap.
	MaxInstances int
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		IdleTimeout:   30 * time.Minute,
		SweepInterval: time.Minute,
		MaxInstances:  10000,
		Now:           time.Now,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithIdleTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.IdleTimeout = timeout
	}
}

func WithSweepInterval(interval time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.SweepInterval = interval
	}
}

func WithMaxInstances(max int) OptionFunc {
	return func(opts *Options) {
		opts.MaxInstances = max
	}
}

func WithHeaderOptions(funcs ...header.OptionFunc) OptionFunc {
	return func(opts *Options) {
		opts.HeaderOptions = funcs
	}
}

func WithNow(now func() time.Time) OptionFunc {
	return func(opts *Options) {
		opts.Now = now
	}
}
