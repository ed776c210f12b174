// Package settings persists small key-value state (toolbar visibility, dock
// visibility, theme choice, icon customizations) across sessions. Keys are
// slash-separated paths like "toolbars/file/visible"; each segment becomes a
// directory level on disk.
package settings

import (
	"strconv"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/karooapp/karoo/pkg/logging"
)

// Store is a typed facade over a diskv-backed key-value tree. Reads fall
// back to caller-supplied defaults; write failures are logged, never
// propagated, so chrome state persistence can never take the UI down.
type Store struct {
	d   *diskv.Diskv
	log *logging.Logger
}

// Open creates a store rooted at basePath. The directory is created lazily
// on first write.
func Open(basePath string, log *logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      64 * 1024,
		}),
		log: log,
	}
}

// Has reports whether a key holds a value.
func (s *Store) Has(key string) bool {
	return s.d.Has(key)
}

// Delete removes a key. Missing keys are a no-op.
func (s *Store) Delete(key string) {
	if err := s.d.Erase(key); err != nil && s.d.Has(key) {
		s.log.WithFields(map[string]any{"key": key}).Warn("settings delete failed")
	}
}

// String returns the stored value for key, or def when absent.
func (s *Store) String(key, def string) string {
	val, err := s.d.Read(key)
	if err != nil {
		return def
	}
	return string(val)
}

// SetString stores a string value.
func (s *Store) SetString(key, value string) {
	s.write(key, value)
}

// Bool returns the stored boolean for key, or def when absent or malformed.
func (s *Store) Bool(key string, def bool) bool {
	val, err := s.d.Read(key)
	if err != nil {
		return def
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(string(val)))
	if err != nil {
		return def
	}
	return parsed
}

// SetBool stores a boolean value.
func (s *Store) SetBool(key string, value bool) {
	s.write(key, strconv.FormatBool(value))
}

// Int returns the stored integer for key, or def when absent or malformed.
func (s *Store) Int(key string, def int) int {
	val, err := s.d.Read(key)
	if err != nil {
		return def
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(string(val)))
	if err != nil {
		return def
	}
	return parsed
}

// SetInt stores an integer value.
func (s *Store) SetInt(key string, value int) {
	s.write(key, strconv.Itoa(value))
}

// Keys returns every stored key under a slash-separated prefix; an empty
// prefix lists the whole store.
func (s *Store) Keys(prefix string) []string {
	var keys []string
	for key := range s.d.Keys(nil) {
		if prefix == "" || key == prefix || strings.HasPrefix(key, prefix+"/") {
			keys = append(keys, key)
		}
	}
	return keys
}

func (s *Store) write(key, value string) {
	if err := s.d.Write(key, []byte(value)); err != nil {
		s.log.WithFields(map[string]any{"key": key}).Warn("settings write failed")
	}
}

func keyToPathTransform(key string) *diskv.PathKey {
	parts := strings.Split(key, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pk *diskv.PathKey) string {
	if len(pk.Path) == 0 {
		return pk.FileName
	}
	return strings.Join(pk.Path, "/") + "/" + pk.FileName
}
