package domain

import (
	"encoding/json"
	"fmt"
)

// PinHolder is the persisted document of the pin registry.
// Each namespace is independent, so an assembly and a package may share a name.
type PinHolder struct {
	Assemblies *PinSet
	Packages   *PinSet
	Repos      *PinSet
}

// NewPinHolder creates an empty holder. All three namespaces compare names case-insensitively.
func NewPinHolder() *PinHolder {
	return &PinHolder{
		Assemblies: NewPinSet(AssemblyPin, CaseInsensitive),
		Packages:   NewPinSet(PackagePin, CaseInsensitive),
		Repos:      NewPinSet(RepoPin, CaseInsensitive),
	}
}

// Set returns the namespace for kind.
func (h *PinHolder) Set(kind PinKind) *PinSet {
	switch kind {
	case AssemblyPin:
		return h.Assemblies
	case PackagePin:
		return h.Packages
	case RepoPin:
		return h.Repos
	default:
		panic(fmt.Sprintf("domain: no pin set for %s", kind))
	}
}

// Len returns the total number of pins across namespaces.
func (h *PinHolder) Len() int {
	return h.Assemblies.Len() + h.Packages.Len() + h.Repos.Len()
}

type pinHolderJSON struct {
	Assemblies json.RawMessage `json:"Assemblies,omitempty"`
	Packages   json.RawMessage `json:"Packages,omitempty"`
	Repos      json.RawMessage `json:"Repos,omitempty"`
}

// MarshalJSON encodes the holder as {"Assemblies": [...], "Packages": [...], "Repos": [...]}.
func (h *PinHolder) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Assemblies *PinSet `json:"Assemblies"`
		Packages   *PinSet `json:"Packages"`
		Repos      *PinSet `json:"Repos"`
	}{h.Assemblies, h.Packages, h.Repos})
}

// UnmarshalJSON decodes a holder; missing or null namespaces load empty.
func (h *PinHolder) UnmarshalJSON(data []byte) error {
	var raw pinHolderJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fresh := NewPinHolder()
	for _, part := range []struct {
		set  *PinSet
		data json.RawMessage
	}{
		{fresh.Assemblies, raw.Assemblies},
		{fresh.Packages, raw.Packages},
		{fresh.Repos, raw.Repos},
	} {
		if len(part.data) == 0 || string(part.data) == "null" {
			continue
		}
		if err := part.set.UnmarshalJSON(part.data); err != nil {
			return err
		}
	}

	*h = *fresh
	return nil
}
