package ports

import (
	"context"
	"iter"
)

// Document is a single persisted document that is loaded once and saved as a whole.
type Document[T any] interface {
	// Data returns the in-memory document. Mutations are persisted by Save.
	Data() T

	// Save writes the whole document back to disk.
	Save() error
}

// Collection is a set of documents persisted one file per key.
type Collection[T any] interface {
	// Exists reports whether a document is stored under key.
	Exists(key string) (bool, error)

	// Get loads the document stored under key.
	// Returns domain.ErrDocumentNotFound if there is none.
	Get(key string) (T, error)

	// Put creates or overwrites the document for item's key.
	Put(item T) error

	// Items lazily enumerates every stored document.
	Items() iter.Seq2[T, error]

	// LoadAll reads every stored document concurrently.
	LoadAll(ctx context.Context) ([]T, error)
}
