// Package assets persists split-engine source images under
// content-addressed keys, so repeated splits of the same node always run
// against identical bytes.
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store is a directory of image files keyed by the SHA-256 of their bytes.
// Storing the same bytes twice yields the same key and a single file.
type Store struct {
	dir     string
	entries map[string]string // key → full path
}

// Open scans dir (creating it if needed) and indexes the assets already
// present.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("assets: create %s: %w", dir, err)
	}

	s := &Store{dir: dir, entries: make(map[string]string)}

	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: scan %s: %w", dir, err)
	}
	for _, de := range des {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		key := strings.TrimSuffix(name, filepath.Ext(name))
		if isKey(key) {
			s.entries[key] = filepath.Join(dir, name)
		}
	}

	return s, nil
}

// Put stores image bytes and returns their key. Bytes already present are
// not rewritten.
func (s *Store) Put(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("assets: empty data")
	}
	sum := sha256.Sum256(data)
	key := hex.EncodeToString(sum[:])

	if _, exists := s.entries[key]; exists {
		return key, nil
	}

	path := filepath.Join(s.dir, key+".img")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("assets: write %s: %w", path, err)
	}
	s.entries[key] = path
	return key, nil
}

// Path returns the filesystem path for a key, or ("", false).
func (s *Store) Path(key string) (string, bool) {
	p, ok := s.entries[key]
	return p, ok
}

// Get reads the stored bytes for a key.
func (s *Store) Get(key string) ([]byte, error) {
	path, ok := s.entries[key]
	if !ok {
		return nil, fmt.Errorf("assets: unknown key %s", key)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	return data, nil
}

// Len returns the number of indexed assets.
func (s *Store) Len() int {
	return len(s.entries)
}

func isKey(k string) bool {
	if len(k) != 64 {
		return false
	}
	_, err := hex.DecodeString(k)
	return err == nil
}
