// Package jsonstore persists documents as indented JSON files.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/xrepo/internal/core/domain"
	"go.trai.ch/zerr"
)

// writeJSON marshals v and replaces path atomically with a temp file and rename.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return storeError(domain.ErrStoreMarshalFailed, err, path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return storeError(domain.ErrStoreCreateFailed, err, dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return storeError(domain.ErrStoreWriteFailed, err, path)
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmpName, domain.FilePerm)
	}
	if err == nil {
		err = os.Rename(tmpName, path)
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return storeError(domain.ErrStoreWriteFailed, err, path)
	}

	return nil
}

// readJSON reads path into v. It reports false without error when the file does not exist
// or holds an empty or null document, leaving v untouched.
func readJSON(path string, v any) (bool, error) {
	data, found, err := readDocument(path)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, storeError(domain.ErrStoreUnmarshalFailed, err, path)
	}
	return true, nil
}

// readDocument returns the raw contents of path. A missing file and an empty or null
// document both report false.
func readDocument(path string) ([]byte, bool, error) {
	//nolint:gosec // Path is built from the managed directory and a derived filename
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, storeError(domain.ErrStoreReadFailed, err, path)
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, false, nil
	}
	return data, true, nil
}

// storeError keeps both kind and the underlying cause in the chain of the returned error.
func storeError(kind, err error, path string) error {
	return zerr.With(fmt.Errorf("%w: %w", kind, err), "path", path)
}
