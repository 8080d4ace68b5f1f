// Package store implements the JSON-file record store every repository sits
// on. Each named collection lives in one file under the store root; Save
// rewrites the whole file through a temp-file-and-rename so a concurrent Load
// never observes a partial write.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fabrica/realestate-crm/internal/api/metrics"
)

var (
	// ErrNotFound is returned by Load when the collection file does not exist.
	// Load never creates files; only Save does.
	ErrNotFound = errors.New("collection not found")
	// ErrCorruptData is returned by Load when the file holds malformed JSON.
	ErrCorruptData = errors.New("collection data corrupt")
	// ErrEncode is returned by Save when the value cannot be serialized.
	ErrEncode = errors.New("collection encode failed")
	// ErrIO covers filesystem failures on either operation.
	ErrIO = errors.New("collection io failure")
	// ErrInvalidName rejects names that would escape the store root.
	ErrInvalidName = errors.New("invalid collection name")
)

// Store provides Load/Save over a fixed data directory. Writers to the same
// collection are serialized by a per-name mutex; writers to different
// collections never contend. The guarantees are in-process only: a second
// server instance pointed at the same directory is not protected, and a crash
// between temp write and rename loses the write (but never truncates the
// previous content).
type Store struct {
	root  string
	locks sync.Map // collection name -> *sync.Mutex
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create root %q: %v", ErrIO, dir, err)
	}
	return &Store{root: dir}, nil
}

// Root returns the data directory the store operates on.
func (s *Store) Root() string {
	return s.root
}

// Load reads the named collection and decodes it into v. An empty or
// whitespace-only file decodes as an empty JSON array, matching the
// pre-seeded-but-blank files the original data directory shipped with.
func (s *Store) Load(name string, v any) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			metrics.StoreErrorsTotal.WithLabelValues("not_found").Inc()
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		metrics.StoreErrorsTotal.WithLabelValues("io").Inc()
		return fmt.Errorf("%w: read %s: %v", ErrIO, name, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("[]")
	}

	if err := json.Unmarshal(data, v); err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("corrupt").Inc()
		return fmt.Errorf("%w: %s: %v", ErrCorruptData, name, err)
	}

	metrics.StoreOperationsTotal.WithLabelValues(name, "load").Inc()
	return nil
}

// Save serializes v as pretty-printed JSON and atomically replaces the named
// collection file. At most one Save per name is in flight at a time; the lock
// is released on every exit path.
func (s *Store) Save(name string, v any) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	mu := s.lock(name)
	mu.Lock()
	defer mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("encode").Inc()
		return fmt.Errorf("%w: %s: %v", ErrEncode, name, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(s.root, name+".*")
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("io").Inc()
		return fmt.Errorf("%w: temp file for %s: %v", ErrIO, name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		metrics.StoreErrorsTotal.WithLabelValues("io").Inc()
		return fmt.Errorf("%w: write %s: %v", ErrIO, name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		metrics.StoreErrorsTotal.WithLabelValues("io").Inc()
		return fmt.Errorf("%w: close %s: %v", ErrIO, name, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		metrics.StoreErrorsTotal.WithLabelValues("io").Inc()
		return fmt.Errorf("%w: replace %s: %v", ErrIO, name, err)
	}

	metrics.StoreOperationsTotal.WithLabelValues(name, "save").Inc()
	return nil
}

// lock returns the mutex for name, creating it on first use.
func (s *Store) lock(name string) *sync.Mutex {
	v, _ := s.locks.LoadOrStore(name, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// path validates name and maps it to a file under the root. Names carrying
// separators or parent segments are rejected so a collection name can never
// address a file outside the store.
func (s *Store) path(name string) (string, error) {
	if name == "" ||
		strings.ContainsAny(name, `/\`) ||
		name == "." || name == ".." ||
		strings.Contains(name, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.root, name), nil
}
