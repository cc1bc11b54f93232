package compat

import (
	"fmt"

	"github.com/klogio/klog"
)

// Builder provides a flexible way to create configured logger adapters for
// gnet and fasthttp. It can use an existing *klog.Logger instance or create
// a new one from a *klog.Config.
type Builder struct {
	logger *klog.Logger
	logCfg *klog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters.
// Recommended for applications that already have a central logger instance.
// If this is set WithConfig is ignored.
func (b *Builder) WithLogger(l *klog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("klog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance.
// Used only if an existing logger is NOT provided via WithLogger.
func (b *Builder) WithConfig(cfg *klog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating and starting one if necessary
func (b *Builder) getLogger() (*klog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	l := klog.NewLogger()
	cfg := b.logCfg
	if cfg == nil {
		cfg = klog.DefaultConfig()
	}

	if err := l.ApplyConfig(cfg); err != nil {
		return nil, err
	}
	if err := l.Start(); err != nil {
		return nil, err
	}

	// Cache the newly created logger for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// GetLogger returns the underlying *klog.Logger instance, initializing one
// if it has not been provided or created yet.
func (b *Builder) GetLogger() (*klog.Logger, error) {
	return b.getLogger()
}
