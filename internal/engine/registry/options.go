// Package registry implements the pin and package registries on top of the JSON stores.
package registry

import (
	"time"

	"go.trai.ch/xrepo/internal/core/ports"
)

// Option configures a registry.
type Option func(*options)

type options struct {
	logger ports.Logger
	now    func() time.Time
}

// WithLogger sets the logger used for debug output. A nil logger is ignored.
func WithLogger(l ports.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock sets the clock used to timestamp project registrations.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger: nopLogger{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type nopLogger struct{}

func (nopLogger) Debug(string)          {}
func (nopLogger) Info(string)           {}
func (nopLogger) Warn(string)           {}
func (nopLogger) Error(error)           {}
func (nopLogger) SetLevel(string) error { return nil }
