package jsonstore

import "path/filepath"

// Document implements ports.Document with a single JSON file.
type Document[T any] struct {
	path   string
	data   T
	loaded bool
}

// LoadDocument reads dir/filename into a value created by newT.
// When the file does not exist or is empty, the fresh value from newT is used
// and nothing is written until Save is called.
func LoadDocument[T any](dir, filename string, newT func() T) (*Document[T], error) {
	d := &Document[T]{
		path: filepath.Join(filepath.Clean(dir), filename),
		data: newT(),
	}

	found, err := readJSON(d.path, &d.data)
	if err != nil {
		return nil, err
	}
	d.loaded = found

	return d, nil
}

// Data returns the in-memory document.
func (d *Document[T]) Data() T {
	return d.data
}

// Path returns the file backing the document.
func (d *Document[T]) Path() string {
	return d.path
}

// Loaded reports whether the document was read from disk rather than created.
func (d *Document[T]) Loaded() bool {
	return d.loaded
}

// Save writes the document to disk.
func (d *Document[T]) Save() error {
	if err := writeJSON(d.path, d.data); err != nil {
		return err
	}
	d.loaded = true
	return nil
}
