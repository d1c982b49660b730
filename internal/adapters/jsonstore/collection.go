package jsonstore

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/xrepo/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Collection implements ports.Collection with one JSON file per key.
type Collection[T any] struct {
	dir         string
	keyOf       func(T) string
	foldKeys    bool
	concurrency int
}

// CollectionOption configures a Collection.
type CollectionOption func(*collectionOptions)

type collectionOptions struct {
	foldKeys    bool
	concurrency int
}

// WithCaseInsensitiveKeys makes keys differing only in case address the same file.
func WithCaseInsensitiveKeys() CollectionOption {
	return func(o *collectionOptions) {
		o.foldKeys = true
	}
}

// WithConcurrency bounds the number of files LoadAll reads at once.
func WithConcurrency(n int) CollectionOption {
	return func(o *collectionOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// NewCollection creates a collection rooted at dir. keyOf extracts the key of an item.
// The directory is created lazily by the first Put.
func NewCollection[T any](dir string, keyOf func(T) string, opts ...CollectionOption) *Collection[T] {
	o := collectionOptions{concurrency: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Collection[T]{
		dir:         filepath.Clean(dir),
		keyOf:       keyOf,
		foldKeys:    o.foldKeys,
		concurrency: o.concurrency,
	}
}

// Dir returns the directory holding the documents.
func (c *Collection[T]) Dir() string {
	return c.dir
}

// Exists reports whether a document is stored under key.
// An empty or null file does not count, matching Get.
func (c *Collection[T]) Exists(key string) (bool, error) {
	_, found, err := readDocument(c.Path(key))
	return found, err
}

// Get loads the document stored under key.
func (c *Collection[T]) Get(key string) (T, error) {
	var item T
	found, err := readJSON(c.Path(key), &item)
	if err != nil {
		return item, err
	}
	if !found {
		return item, zerr.With(zerr.Wrap(domain.ErrDocumentNotFound, c.Path(key)), "key", key)
	}
	return item, nil
}

// Put creates or overwrites the document for item's key.
func (c *Collection[T]) Put(item T) error {
	return writeJSON(c.Path(c.keyOf(item)), item)
}

// Items lazily enumerates every stored document in file name order.
// A missing directory yields nothing.
func (c *Collection[T]) Items() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		paths, err := c.documentPaths()
		if err != nil {
			var zero T
			yield(zero, err)
			return
		}
		for _, path := range paths {
			var item T
			found, err := readJSON(path, &item)
			if err == nil && !found {
				continue
			}
			if !yield(item, err) {
				return
			}
		}
	}
}

// LoadAll reads every stored document concurrently and returns them in file name order.
func (c *Collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	paths, err := c.documentPaths()
	if err != nil {
		return nil, err
	}

	items := make([]T, len(paths))
	present := make([]bool, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			found, err := readJSON(path, &items[i])
			present[i] = found
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := items[:0]
	for i, item := range items {
		if present[i] {
			out = append(out, item)
		}
	}
	return out, nil
}

// Path returns the file that holds the document for key.
func (c *Collection[T]) Path(key string) string {
	return filepath.Join(c.dir, c.fileName(key))
}

// fileName maps key to a file name. Keys made only of filename-safe characters
// are used as is; anything else is replaced by its xxhash digest with a '+' prefix
// so the two forms never collide.
func (c *Collection[T]) fileName(key string) string {
	if c.foldKeys {
		key = strings.ToLower(key)
	}
	if isSafeKey(key) {
		return key + domain.DocumentExt
	}
	return fmt.Sprintf("+%016x%s", xxhash.Sum64String(key), domain.DocumentExt)
}

func (c *Collection[T]) documentPaths() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, storeError(domain.ErrStoreReadFailed, err, c.dir)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != domain.DocumentExt {
			continue
		}
		paths = append(paths, filepath.Join(c.dir, name))
	}
	return paths, nil
}

func isSafeKey(key string) bool {
	if key == "" || key[0] == '.' {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
