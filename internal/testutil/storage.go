package testutil

import (
	"context"
	"io"
	"net/url"
	"strings"
	"sync"

	"expensify/internal/storage"
)

// FakeObjectStore is an in-memory ObjectStore for tests. Failure modes are
// injectable per call site.
type FakeObjectStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Deleted []string

	PutErr    error
	DeleteErr error
}

var _ storage.ObjectStore = (*FakeObjectStore)(nil)

// NewFakeObjectStore creates an empty fake store.
func NewFakeObjectStore() *FakeObjectStore {
	return &FakeObjectStore{Objects: make(map[string][]byte)}
}

// Put stores the object in memory, honoring the no-overwrite contract.
func (f *FakeObjectStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.PutErr != nil {
		return f.PutErr
	}
	if _, exists := f.Objects[key]; exists {
		return storage.ErrObjectExists
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.Objects[key] = data
	return nil
}

// PublicURL mirrors the real store's URL shape.
func (f *FakeObjectStore) PublicURL(key string) string {
	return "https://storage.test/documents/" + key
}

// KeyFromURL recovers the key from a PublicURL result.
func (f *FakeObjectStore) KeyFromURL(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	key := strings.TrimPrefix(u.Path, "/documents/")
	if key == "" || key == u.Path {
		return "", false
	}
	return key, true
}

// Delete removes the object, recording the key even when failing.
func (f *FakeObjectStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Deleted = append(f.Deleted, key)
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	delete(f.Objects, key)
	return nil
}

// Len returns the number of stored objects.
func (f *FakeObjectStore) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Objects)
}
