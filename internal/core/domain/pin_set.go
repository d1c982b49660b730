package domain

import (
	"encoding/json"
	"strings"

	"go.trai.ch/zerr"
)

// KeyPolicy decides how names are compared within a PinSet.
type KeyPolicy int

const (
	// CaseInsensitive treats names differing only in case as the same key.
	CaseInsensitive KeyPolicy = iota
	// CaseSensitive compares names byte for byte.
	CaseSensitive
)

func (p KeyPolicy) key(name string) string {
	if p == CaseInsensitive {
		return strings.ToLower(name)
	}
	return name
}

// PinSet is an insertion-ordered set of pins of one kind, keyed by name.
type PinSet struct {
	kind   PinKind
	policy KeyPolicy
	pins   []Pin
	index  map[string]int
}

// NewPinSet creates an empty set for the given kind and key policy.
func NewPinSet(kind PinKind, policy KeyPolicy) *PinSet {
	return &PinSet{
		kind:   kind,
		policy: policy,
		index:  make(map[string]int),
	}
}

// Kind returns the kind of pins the set holds.
func (s *PinSet) Kind() PinKind {
	return s.kind
}

// Len returns the number of pins.
func (s *PinSet) Len() int {
	return len(s.pins)
}

// Contains reports whether name is pinned.
func (s *PinSet) Contains(name string) bool {
	_, ok := s.index[s.policy.key(name)]
	return ok
}

// Get returns the pin stored under name.
func (s *PinSet) Get(name string) (Pin, bool) {
	i, ok := s.index[s.policy.key(name)]
	if !ok {
		return Pin{}, false
	}
	return s.pins[i], true
}

// Add pins name. It fails with ErrAlreadyPinned when the key is taken.
func (s *PinSet) Add(name string) (Pin, error) {
	key := s.policy.key(name)
	if _, exists := s.index[key]; exists {
		err := zerr.Wrap(ErrAlreadyPinned, s.kind.String()+" '"+name+"'")
		return Pin{}, zerr.With(zerr.With(err, "kind", s.kind.String()), "name", name)
	}
	pin := NewPin(s.kind, name)
	s.index[key] = len(s.pins)
	s.pins = append(s.pins, pin)
	return pin, nil
}

// Remove unpins name and returns the removed pin, if any.
func (s *PinSet) Remove(name string) (Pin, bool) {
	key := s.policy.key(name)
	i, ok := s.index[key]
	if !ok {
		return Pin{}, false
	}
	removed := s.pins[i]
	s.pins = append(s.pins[:i], s.pins[i+1:]...)
	delete(s.index, key)
	for j := i; j < len(s.pins); j++ {
		s.index[s.policy.key(s.pins[j].Name)] = j
	}
	return removed, true
}

// Pins returns a snapshot of the set in insertion order.
func (s *PinSet) Pins() []Pin {
	out := make([]Pin, len(s.pins))
	copy(out, s.pins)
	return out
}

// Clear removes every pin.
func (s *PinSet) Clear() {
	s.pins = nil
	s.index = make(map[string]int)
}

type pinEntry struct {
	Name string `json:"Name"`
}

// MarshalJSON encodes the set as an array of name entries.
func (s *PinSet) MarshalJSON() ([]byte, error) {
	entries := make([]pinEntry, len(s.pins))
	for i, p := range s.pins {
		entries[i] = pinEntry{Name: p.Name}
	}
	return json.Marshal(entries)
}

// UnmarshalJSON decodes an array of name entries.
// The kind and key policy of the receiver are kept; duplicate keys keep the first entry.
func (s *PinSet) UnmarshalJSON(data []byte) error {
	var entries []pinEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	s.Clear()
	for _, e := range entries {
		if e.Name == "" || s.Contains(e.Name) {
			continue
		}
		if _, err := s.Add(e.Name); err != nil {
			return err
		}
	}
	return nil
}
