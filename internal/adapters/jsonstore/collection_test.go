package jsonstore_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xrepo/internal/adapters/jsonstore"
	"go.trai.ch/xrepo/internal/core/domain"
)

type entry struct {
	Key   string `json:"key"`
	Value int    `json:"value"`
}

func entryKey(e *entry) string { return e.Key }

func newEntries(t *testing.T, opts ...jsonstore.CollectionOption) *jsonstore.Collection[*entry] {
	t.Helper()
	return jsonstore.NewCollection(filepath.Join(t.TempDir(), "entries"), entryKey, opts...)
}

func TestCollection_PutGet(t *testing.T) {
	t.Parallel()

	c := newEntries(t)

	ok, err := c.Exists("alpha")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Put(&entry{Key: "alpha", Value: 1}))

	ok, err = c.Exists("alpha")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := c.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, &entry{Key: "alpha", Value: 1}, got)

	require.NoError(t, c.Put(&entry{Key: "alpha", Value: 2}))
	got, err = c.Get("alpha")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Value)
}

func TestCollection_GetMissing(t *testing.T) {
	t.Parallel()

	c := newEntries(t)
	_, err := c.Get("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
}

func TestCollection_EmptyDocumentIsMissing(t *testing.T) {
	t.Parallel()

	for _, content := range []string{"", "  \n", "null"} {
		c := newEntries(t)
		require.NoError(t, c.Put(&entry{Key: "blank"}))
		require.NoError(t, os.WriteFile(c.Path("blank"), []byte(content), 0o600))

		ok, err := c.Exists("blank")
		require.NoError(t, err)
		assert.False(t, ok, "content %q", content)

		_, err = c.Get("blank")
		assert.ErrorIs(t, err, domain.ErrDocumentNotFound)
	}
}

func TestCollection_GetCorrupt(t *testing.T) {
	t.Parallel()

	c := newEntries(t)
	require.NoError(t, c.Put(&entry{Key: "broken"}))
	require.NoError(t, os.WriteFile(c.Path("broken"), []byte("{ invalid json"), 0o600))

	_, err := c.Get("broken")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnmarshalFailed)
	assert.ErrorIs(t, err, domain.ErrStoreUnmarshalFailed)

	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestCollection_CaseInsensitiveKeys(t *testing.T) {
	t.Parallel()

	c := newEntries(t, jsonstore.WithCaseInsensitiveKeys())
	require.NoError(t, c.Put(&entry{Key: "Acme.Widgets", Value: 1}))

	ok, err := c.Exists("ACME.WIDGETS")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := c.Get("acme.widgets")
	require.NoError(t, err)
	assert.Equal(t, "Acme.Widgets", got.Key)
	assert.Equal(t, filepath.Join(c.Dir(), "acme.widgets.json"), c.Path("Acme.Widgets"))
}

func TestCollection_CaseSensitiveKeys(t *testing.T) {
	t.Parallel()

	c := newEntries(t)
	assert.NotEqual(t, c.Path("Alpha"), c.Path("alpha"))
}

func TestCollection_UnsafeKeysAreHashed(t *testing.T) {
	t.Parallel()

	c := newEntries(t)
	for _, key := range []string{"../escape", "with space", ".hidden", "a/b", "ünïcode"} {
		name := filepath.Base(c.Path(key))
		assert.Equal(t, filepath.Join(c.Dir(), name), c.Path(key), key)
		assert.Equal(t, byte('+'), name[0], key)
		assert.Equal(t, ".json", filepath.Ext(name), key)
	}
	assert.NotEqual(t, c.Path("a/b"), c.Path("a\\b"))

	require.NoError(t, c.Put(&entry{Key: "../escape", Value: 7}))
	got, err := c.Get("../escape")
	require.NoError(t, err)
	assert.Equal(t, 7, got.Value)
}

func TestCollection_Items(t *testing.T) {
	t.Parallel()

	c := newEntries(t)

	count := 0
	for range c.Items() {
		count++
	}
	assert.Zero(t, count, "missing directory yields nothing")

	for i, key := range []string{"charlie", "alpha", "bravo"} {
		require.NoError(t, c.Put(&entry{Key: key, Value: i}))
	}
	// Stray files that are not documents are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(c.Dir(), "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(c.Dir(), ".partial.json.123.tmp"), []byte("{"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(c.Dir(), "sub.json"), 0o750))

	var keys []string
	for item, err := range c.Items() {
		require.NoError(t, err)
		keys = append(keys, item.Key)
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, keys)

	// Stopping early is honored.
	seen := 0
	for range c.Items() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestCollection_ItemsReportsCorruptDocument(t *testing.T) {
	t.Parallel()

	c := newEntries(t)
	require.NoError(t, c.Put(&entry{Key: "good"}))
	require.NoError(t, os.WriteFile(c.Path("bad"), []byte("[1,"), 0o600))

	var errs int
	for _, err := range c.Items() {
		if err != nil {
			errs++
			assert.ErrorIs(t, err, domain.ErrStoreUnmarshalFailed)
		}
	}
	assert.Equal(t, 1, errs)
}

func TestCollection_LoadAll(t *testing.T) {
	t.Parallel()

	c := newEntries(t, jsonstore.WithConcurrency(3))

	items, err := c.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)

	const n = 25
	for i := range n {
		require.NoError(t, c.Put(&entry{Key: "k" + strconv.Itoa(100+i), Value: i}))
	}
	// Empty documents are skipped.
	require.NoError(t, os.WriteFile(c.Path("empty"), nil, 0o600))

	items, err = c.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, n)
	for i, item := range items {
		assert.Equal(t, "k"+strconv.Itoa(100+i), item.Key)
		assert.Equal(t, i, item.Value)
	}
}

func TestCollection_LoadAllCanceled(t *testing.T) {
	t.Parallel()

	c := newEntries(t, jsonstore.WithConcurrency(1))
	require.NoError(t, c.Put(&entry{Key: "one"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.LoadAll(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestCollection_LoadAllCorrupt(t *testing.T) {
	t.Parallel()

	c := newEntries(t)
	require.NoError(t, c.Put(&entry{Key: "good"}))
	require.NoError(t, os.WriteFile(c.Path("bad"), []byte("{"), 0o600))

	_, err := c.LoadAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnmarshalFailed)
}
