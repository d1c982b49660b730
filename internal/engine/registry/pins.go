package registry

import (
	"strings"

	"go.trai.ch/xrepo/internal/adapters/jsonstore" //nolint:depguard // Wired in engine layer
	"go.trai.ch/xrepo/internal/core/domain"
	"go.trai.ch/xrepo/internal/core/ports"
	"go.trai.ch/zerr"
)

// PinRegistry manages assembly, package and repo pins persisted in a single document.
// It is not safe for concurrent use.
type PinRegistry struct {
	doc    ports.Document[*domain.PinHolder]
	logger ports.Logger
}

// OpenPinRegistry loads the pin registry document from dir, or starts an empty one.
func OpenPinRegistry(dir string, opts ...Option) (*PinRegistry, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "empty registry directory"), "field", "directory")
	}
	o := newOptions(opts)

	doc, err := jsonstore.LoadDocument(dir, domain.PinRegistryFileName, domain.NewPinHolder)
	if err != nil {
		return nil, zerr.With(err, "registry", "pins")
	}
	if !doc.Loaded() {
		o.logger.Debug("no pin registry at " + doc.Path() + ", starting empty")
	}

	return NewPinRegistry(doc, opts...), nil
}

// NewPinRegistry creates a registry over an already loaded document.
func NewPinRegistry(doc ports.Document[*domain.PinHolder], opts ...Option) *PinRegistry {
	o := newOptions(opts)
	return &PinRegistry{doc: doc, logger: o.logger}
}

// Pin adds a pin of the given kind and persists the registry.
func (r *PinRegistry) Pin(kind domain.PinKind, name string) (domain.Pin, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Pin{}, zerr.With(zerr.Wrap(domain.ErrInvalidArgument, "empty "+kind.String()+" name"), "field", "name")
	}

	set, err := r.set(kind)
	if err != nil {
		return domain.Pin{}, err
	}

	pin, err := set.Add(name)
	if err != nil {
		return domain.Pin{}, err
	}
	if err := r.doc.Save(); err != nil {
		return domain.Pin{}, err
	}

	r.logger.Debug("pinned " + pin.String())
	return pin, nil
}

// Unpin removes a pin of the given kind. It returns nil when name was not pinned.
func (r *PinRegistry) Unpin(kind domain.PinKind, name string) (*domain.Pin, error) {
	set, err := r.set(kind)
	if err != nil {
		return nil, err
	}

	pin, ok := set.Remove(name)
	if !ok {
		return nil, nil
	}
	if err := r.doc.Save(); err != nil {
		return nil, err
	}

	r.logger.Debug("unpinned " + pin.String())
	return &pin, nil
}

// IsPinned reports whether name is pinned in the namespace of kind.
func (r *PinRegistry) IsPinned(kind domain.PinKind, name string) bool {
	set, err := r.set(kind)
	return err == nil && set.Contains(name)
}

// GetPin returns the pin for name. It fails with domain.ErrPinNotFound when absent.
func (r *PinRegistry) GetPin(kind domain.PinKind, name string) (domain.Pin, error) {
	set, err := r.set(kind)
	if err != nil {
		return domain.Pin{}, err
	}

	pin, ok := set.Get(name)
	if !ok {
		err := zerr.Wrap(domain.ErrPinNotFound, kind.String()+" '"+name+"'")
		return domain.Pin{}, zerr.With(zerr.With(err, "kind", kind.String()), "name", name)
	}
	return pin, nil
}

// Pins returns a snapshot of the pins of kind in the order they were added.
func (r *PinRegistry) Pins(kind domain.PinKind) []domain.Pin {
	set, err := r.set(kind)
	if err != nil {
		return nil
	}
	return set.Pins()
}

// UnpinAll removes every pin and returns them: repos first, then packages, then assemblies.
func (r *PinRegistry) UnpinAll() ([]domain.Pin, error) {
	holder := r.doc.Data()

	pins := make([]domain.Pin, 0, holder.Len())
	for _, kind := range domain.PinKinds {
		set := holder.Set(kind)
		pins = append(pins, set.Pins()...)
		set.Clear()
	}

	if err := r.doc.Save(); err != nil {
		return nil, err
	}

	r.logger.Debug("unpinned everything")
	return pins, nil
}

func (r *PinRegistry) set(kind domain.PinKind) (*domain.PinSet, error) {
	if !kind.Valid() {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownPinKind, kind.String()), "kind", kind.String())
	}
	return r.doc.Data().Set(kind), nil
}

// PinAssembly pins an assembly name.
func (r *PinRegistry) PinAssembly(name string) (domain.Pin, error) {
	return r.Pin(domain.AssemblyPin, name)
}

// UnpinAssembly unpins an assembly name.
func (r *PinRegistry) UnpinAssembly(name string) (*domain.Pin, error) {
	return r.Unpin(domain.AssemblyPin, name)
}

// IsAssemblyPinned reports whether an assembly name is pinned.
func (r *PinRegistry) IsAssemblyPinned(name string) bool {
	return r.IsPinned(domain.AssemblyPin, name)
}

// GetAssemblyPin returns the pin of an assembly name.
func (r *PinRegistry) GetAssemblyPin(name string) (domain.Pin, error) {
	return r.GetPin(domain.AssemblyPin, name)
}

// GetPinnedAssemblies returns every assembly pin.
func (r *PinRegistry) GetPinnedAssemblies() []domain.Pin {
	return r.Pins(domain.AssemblyPin)
}

// PinPackage pins a package id.
func (r *PinRegistry) PinPackage(packageID string) (domain.Pin, error) {
	return r.Pin(domain.PackagePin, packageID)
}

// UnpinPackage unpins a package id.
func (r *PinRegistry) UnpinPackage(packageID string) (*domain.Pin, error) {
	return r.Unpin(domain.PackagePin, packageID)
}

// IsPackagePinned reports whether a package id is pinned.
func (r *PinRegistry) IsPackagePinned(packageID string) bool {
	return r.IsPinned(domain.PackagePin, packageID)
}

// GetPackagePin returns the pin of a package id.
func (r *PinRegistry) GetPackagePin(packageID string) (domain.Pin, error) {
	return r.GetPin(domain.PackagePin, packageID)
}

// GetPinnedPackages returns every package pin.
func (r *PinRegistry) GetPinnedPackages() []domain.Pin {
	return r.Pins(domain.PackagePin)
}

// PinRepo pins a repository name.
func (r *PinRegistry) PinRepo(name string) (domain.Pin, error) {
	return r.Pin(domain.RepoPin, name)
}

// UnpinRepo unpins a repository name.
func (r *PinRegistry) UnpinRepo(name string) (*domain.Pin, error) {
	return r.Unpin(domain.RepoPin, name)
}

// IsRepoPinned reports whether a repository name is pinned.
func (r *PinRegistry) IsRepoPinned(name string) bool {
	return r.IsPinned(domain.RepoPin, name)
}

// GetRepoPin returns the pin of a repository name.
func (r *PinRegistry) GetRepoPin(name string) (domain.Pin, error) {
	return r.GetPin(domain.RepoPin, name)
}

// GetPinnedRepos returns every repo pin.
func (r *PinRegistry) GetPinnedRepos() []domain.Pin {
	return r.Pins(domain.RepoPin)
}
