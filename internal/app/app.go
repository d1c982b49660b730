// Package app implements the application layer for xrepo.
package app

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/xrepo/internal/core/domain"
	"go.trai.ch/xrepo/internal/core/ports"
	"go.trai.ch/xrepo/internal/engine/registry"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	logger     ports.Logger
	settings   ports.SettingsLoader
	normalizer ports.VersionNormalizer
	registries *registry.Factory

	root string
}

// New creates a new App instance.
func New(
	log ports.Logger,
	settings ports.SettingsLoader,
	normalizer ports.VersionNormalizer,
	registries *registry.Factory,
) *App {
	return &App{
		logger:     log,
		settings:   settings,
		normalizer: normalizer,
		registries: registries,
	}
}

// Configure resolves the settings with the non-empty fields of overrides applied
// and sets the log level. It must be called before any registry operation.
func (a *App) Configure(overrides domain.Settings) (domain.Settings, error) {
	settings, err := a.settings.Load(overrides)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load settings")
	}

	if err := a.logger.SetLevel(settings.LogLevel); err != nil {
		return domain.Settings{}, err
	}
	if strings.TrimSpace(settings.Root) == "" {
		return domain.Settings{}, domain.ErrNoManagedDirectory
	}

	a.root = settings.Root
	a.logger.Debug("using managed directory " + a.root)
	return settings, nil
}

// Root returns the managed directory resolved by Configure.
func (a *App) Root() string {
	return a.root
}

// Pin pins name in the namespace of kind.
func (a *App) Pin(kind domain.PinKind, name string) (domain.Pin, error) {
	pins, err := a.openPins()
	if err != nil {
		return domain.Pin{}, err
	}

	pin, err := pins.Pin(kind, name)
	if err != nil {
		return domain.Pin{}, err
	}

	a.logger.Info(pin.Description())
	return pin, nil
}

// Unpin removes the pin of name. It returns nil when name was not pinned.
func (a *App) Unpin(kind domain.PinKind, name string) (*domain.Pin, error) {
	pins, err := a.openPins()
	if err != nil {
		return nil, err
	}

	pin, err := pins.Unpin(kind, name)
	if err != nil {
		return nil, err
	}

	if pin == nil {
		a.logger.Warn(fmt.Sprintf("the %s '%s' is not pinned", kind, name))
		return nil, nil
	}
	a.logger.Info(fmt.Sprintf("the %s '%s' has been unpinned", pin.Kind, pin.Name))
	return pin, nil
}

// UnpinAll removes every pin.
func (a *App) UnpinAll() ([]domain.Pin, error) {
	pins, err := a.openPins()
	if err != nil {
		return nil, err
	}

	removed, err := pins.UnpinAll()
	if err != nil {
		return nil, err
	}

	for _, pin := range removed {
		a.logger.Info(fmt.Sprintf("the %s '%s' has been unpinned", pin.Kind, pin.Name))
	}
	return removed, nil
}

// ListPins returns the pins of every requested kind, in the order given.
// With no kinds, all kinds are listed.
func (a *App) ListPins(kinds ...domain.PinKind) ([]domain.Pin, error) {
	pins, err := a.openPins()
	if err != nil {
		return nil, err
	}

	if len(kinds) == 0 {
		kinds = domain.PinKinds
	}

	var out []domain.Pin
	for _, kind := range kinds {
		if !kind.Valid() {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownPinKind, kind.String()), "kind", kind.String())
		}
		out = append(out, pins.Pins(kind)...)
	}
	return out, nil
}

// RegisterPackage records that projectPath built packageID at version into packagePath.
func (a *App) RegisterPackage(
	packageID, version, packagePath, projectPath string,
) (*domain.PackageRegistration, error) {
	id, err := domain.NewPackageIdentifier(packageID, version, a.normalizer.Normalize)
	if err != nil {
		return nil, err
	}

	packages, err := a.openPackages()
	if err != nil {
		return nil, err
	}

	registration, err := packages.RegisterPackage(id, packagePath, projectPath)
	if err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("registered %s from %s", id, projectPath))
	return registration, nil
}

// ListPackages returns every registration sorted by package id.
func (a *App) ListPackages(ctx context.Context) ([]*domain.PackageRegistration, error) {
	packages, err := a.openPackages()
	if err != nil {
		return nil, err
	}
	return packages.LoadPackages(ctx)
}

// Location describes where the local build of a package comes from.
type Location struct {
	PackageID  string
	Latest     domain.RegisteredPackageProject
	MostRecent domain.RegisteredPackageProject
}

// Where looks up the projects that last built packageID.
func (a *App) Where(packageID string) (Location, error) {
	packages, err := a.openPackages()
	if err != nil {
		return Location{}, err
	}

	registration, err := packages.GetPackage(packageID)
	if err != nil {
		return Location{}, err
	}
	if registration == nil {
		return Location{}, zerr.With(zerr.Wrap(domain.ErrPackageNotFound, packageID), "package_id", packageID)
	}

	latest, ok := registration.LatestProject()
	if !ok {
		return Location{}, zerr.With(zerr.Wrap(domain.ErrPackageNotFound, packageID), "package_id", packageID)
	}
	mostRecent, _ := registration.MostRecentProject()

	return Location{
		PackageID:  registration.PackageID,
		Latest:     latest,
		MostRecent: mostRecent,
	}, nil
}

func (a *App) openPins() (*registry.PinRegistry, error) {
	if a.root == "" {
		return nil, domain.ErrNoManagedDirectory
	}
	return a.registries.OpenPins(a.root)
}

func (a *App) openPackages() (*registry.PackageRegistry, error) {
	if a.root == "" {
		return nil, domain.ErrNoManagedDirectory
	}
	return a.registries.OpenPackages(a.root)
}
