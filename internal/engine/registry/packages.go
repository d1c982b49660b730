package registry

import (
	"context"
	"errors"
	"iter"
	"slices"
	"strings"
	"time"

	"go.trai.ch/xrepo/internal/adapters/jsonstore" //nolint:depguard // Wired in engine layer
	"go.trai.ch/xrepo/internal/core/domain"
	"go.trai.ch/xrepo/internal/core/ports"
	"go.trai.ch/zerr"
)

// PackageRegistry maps package ids to the local projects that built them.
// Each registration is persisted as its own document. It is not safe for concurrent use.
type PackageRegistry struct {
	packages ports.Collection[*domain.PackageRegistration]
	logger   ports.Logger
	now      func() time.Time
}

// OpenPackageRegistry opens the registrations stored under dir/packages.
// Package ids are matched case-insensitively.
func OpenPackageRegistry(dir string, opts ...Option) (*PackageRegistry, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "empty registry directory"), "field", "directory")
	}
	packages := jsonstore.NewCollection(
		domain.PackagesPath(dir),
		func(r *domain.PackageRegistration) string { return r.PackageID },
		jsonstore.WithCaseInsensitiveKeys(),
	)
	return NewPackageRegistry(packages, opts...), nil
}

// NewPackageRegistry creates a registry over the given collection.
func NewPackageRegistry(packages ports.Collection[*domain.PackageRegistration], opts ...Option) *PackageRegistry {
	o := newOptions(opts)
	return &PackageRegistry{
		packages: packages,
		logger:   o.logger,
		now:      o.now,
	}
}

// GetPackage returns the registration for packageID.
// Returns nil, nil if the package is not registered.
func (r *PackageRegistry) GetPackage(packageID string) (*domain.PackageRegistration, error) {
	registered, err := r.IsPackageRegistered(packageID)
	if err != nil || !registered {
		return nil, err
	}
	registration, err := r.packages.Get(packageID)
	if errors.Is(err, domain.ErrDocumentNotFound) {
		return nil, nil
	}
	return registration, err
}

// IsPackageRegistered reports whether a registration exists for packageID.
func (r *PackageRegistry) IsPackageRegistered(packageID string) (bool, error) {
	if strings.TrimSpace(packageID) == "" {
		return false, nil
	}
	return r.packages.Exists(packageID)
}

// RegisterPackage records that projectPath built the package identified by id at packagePath.
// The existing registration for id.ID() is updated, or a new one is created.
func (r *PackageRegistry) RegisterPackage(
	id domain.PackageIdentifier,
	packagePath, projectPath string,
) (*domain.PackageRegistration, error) {
	if id.IsZero() {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "empty package identifier"), "field", "identifier")
	}
	if strings.TrimSpace(packagePath) == "" {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "empty package path"), "field", "package path"), "package", id.String())
	}
	if strings.TrimSpace(projectPath) == "" {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "empty project path"), "field", "project path"), "package", id.String())
	}

	registration, err := r.GetPackage(id.ID())
	if err != nil {
		return nil, err
	}
	if registration == nil {
		r.logger.Debug("creating registration for " + id.ID())
		registration = domain.NewPackageRegistration(id.ID())
	}

	registration.RegisterProject(id.Version(), packagePath, projectPath, r.now())

	if err := r.packages.Put(registration); err != nil {
		return nil, zerr.With(err, "package", id.String())
	}
	return registration, nil
}

// GetPackages lazily enumerates every persisted registration.
func (r *PackageRegistry) GetPackages() iter.Seq2[*domain.PackageRegistration, error] {
	return r.packages.Items()
}

// LoadPackages reads every registration concurrently and sorts them by package id.
func (r *PackageRegistry) LoadPackages(ctx context.Context) ([]*domain.PackageRegistration, error) {
	registrations, err := r.packages.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(registrations, func(a, b *domain.PackageRegistration) int {
		return strings.Compare(strings.ToLower(a.PackageID), strings.ToLower(b.PackageID))
	})
	return registrations, nil
}
