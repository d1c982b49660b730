// Package domain contains the core models of the pin and package registries.
package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// NormalizeFunc canonicalizes a version string so equivalent spellings compare equal.
type NormalizeFunc func(version string) (string, error)

// PackageIdentifier is an immutable (package id, normalized version) pair.
// It is comparable and may be used as a map key.
type PackageIdentifier struct {
	id      string
	version string
}

// NewPackageIdentifier validates id and version and normalizes the version.
func NewPackageIdentifier(id, version string, normalize NormalizeFunc) (PackageIdentifier, error) {
	if strings.TrimSpace(id) == "" {
		return PackageIdentifier{}, zerr.With(zerr.Wrap(ErrInvalidArgument, "empty package id"), "field", "id")
	}
	if strings.TrimSpace(version) == "" {
		return PackageIdentifier{}, zerr.With(zerr.Wrap(ErrInvalidArgument, "empty version of "+id), "field", "version")
	}

	normalized := version
	if normalize != nil {
		v, err := normalize(version)
		if err != nil {
			wrapped := zerr.With(fmt.Errorf("%w: %w", ErrInvalidArgument, err), "package_id", id)
			return PackageIdentifier{}, zerr.With(wrapped, "version", version)
		}
		normalized = v
	}

	return PackageIdentifier{id: id, version: normalized}, nil
}

// ID returns the package id as given.
func (p PackageIdentifier) ID() string {
	return p.id
}

// Version returns the normalized version.
func (p PackageIdentifier) Version() string {
	return p.version
}

// Equal reports whether both identifiers share the id (case-sensitive) and normalized version.
func (p PackageIdentifier) Equal(other PackageIdentifier) bool {
	return p == other
}

// IsZero reports whether the identifier was never constructed.
func (p PackageIdentifier) IsZero() bool {
	return p.id == ""
}

func (p PackageIdentifier) String() string {
	return p.id + "@" + p.version
}
