package domain

import (
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// PinKind identifies the namespace a pin lives in.
type PinKind int

const (
	// AssemblyPin pins an assembly name.
	AssemblyPin PinKind = iota + 1
	// PackagePin pins a package id.
	PackagePin
	// RepoPin pins a repository name.
	RepoPin
)

// PinKinds lists every kind in unpin-all order.
var PinKinds = []PinKind{RepoPin, PackagePin, AssemblyPin}

// Valid reports whether k is one of the defined kinds.
func (k PinKind) Valid() bool {
	return k == AssemblyPin || k == PackagePin || k == RepoPin
}

func (k PinKind) String() string {
	switch k {
	case AssemblyPin:
		return "assembly"
	case PackagePin:
		return "package"
	case RepoPin:
		return "repo"
	default:
		return fmt.Sprintf("PinKind(%d)", int(k))
	}
}

// ParsePinKind parses the CLI spelling of a pin kind.
func ParsePinKind(s string) (PinKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "assembly", "assemblies":
		return AssemblyPin, nil
	case "package", "packages":
		return PackagePin, nil
	case "repo", "repos":
		return RepoPin, nil
	default:
		return 0, zerr.With(zerr.Wrap(ErrUnknownPinKind, "'"+s+"'"), "kind", s)
	}
}

// Pin forces references to Name to resolve to a local build.
type Pin struct {
	Kind PinKind
	Name string
}

// NewPin creates a pin of the given kind.
func NewPin(kind PinKind, name string) Pin {
	return Pin{Kind: kind, Name: name}
}

// Description is the human-readable explanation shown after pinning.
func (p Pin) Description() string {
	switch p.Kind {
	case AssemblyPin:
		return fmt.Sprintf("The assembly '%s' has been pinned. "+
			"All references to this assembly will now be resolved to local copies.", p.Name)
	case PackagePin:
		return fmt.Sprintf("The package '%s' has been pinned. "+
			"All references to this package will now be resolved to local copies.", p.Name)
	case RepoPin:
		return fmt.Sprintf("The repo %s has been pinned. "+
			"All references to packages and assemblies built within this repo will now be resolved to local copies.",
			p.Name)
	default:
		return fmt.Sprintf("'%s' has been pinned.", p.Name)
	}
}

func (p Pin) String() string {
	return p.Kind.String() + ":" + p.Name
}
