package registry

import (
	"go.trai.ch/xrepo/internal/core/ports"
)

// Factory opens registries rooted at a managed directory.
// The directory is only known once settings are resolved, so registries are opened per command.
type Factory struct {
	logger ports.Logger
	opts   []Option
}

// NewFactory creates a factory whose registries log through logger.
func NewFactory(logger ports.Logger, opts ...Option) *Factory {
	return &Factory{
		logger: logger,
		opts:   append([]Option{WithLogger(logger)}, opts...),
	}
}

// OpenPins opens the pin registry stored under root.
func (f *Factory) OpenPins(root string) (*PinRegistry, error) {
	return OpenPinRegistry(root, f.opts...)
}

// OpenPackages opens the package registry stored under root.
func (f *Factory) OpenPackages(root string) (*PackageRegistry, error) {
	return OpenPackageRegistry(root, f.opts...)
}
