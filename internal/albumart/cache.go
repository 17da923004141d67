package albumart

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// DefaultMaxAge is how long unused cache entries are kept.
const DefaultMaxAge = 30 * 24 * time.Hour

// Cache stores resized PNG album art on disk, keyed by track path and
// display dimensions. Entries are overwritten in place; a concurrent
// half-written read at worst loses one render to the placeholder.
type Cache struct {
	dir string
}

// NewCache creates a disk cache at dir, or under the XDG cache home when
// dir is empty.
func NewCache(dir string) (*Cache, error) {
	if dir == "" {
		dir = filepath.Join(xdg.CacheHome, "vinyl", "albumart")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

// cacheKey generates a unique key for a track at specific dimensions.
func (c *Cache) cacheKey(trackPath string, width, height int) string {
	data := fmt.Sprintf("%s:%d:%d", trackPath, width, height)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

// Get retrieves cached PNG data for a track at specific dimensions.
// Returns nil if not cached.
func (c *Cache) Get(trackPath string, width, height int) []byte {
	if c == nil {
		return nil
	}

	path := filepath.Join(c.dir, c.cacheKey(trackPath, width, height)+".png")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	// Touch the file so frequently used entries stay fresh for Prune.
	now := time.Now()
	_ = os.Chtimes(path, now, now)

	return data
}

// Put stores PNG data for a track at specific dimensions. Empty data is
// not cached.
func (c *Cache) Put(trackPath string, width, height int, data []byte) error {
	if c == nil || len(data) == 0 {
		return nil
	}

	path := filepath.Join(c.dir, c.cacheKey(trackPath, width, height)+".png")
	return os.WriteFile(path, data, 0o600)
}

// Prune removes cache entries older than maxAge.
func (c *Cache) Prune(maxAge time.Duration) error {
	if c == nil {
		return nil
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, entry.Name()))
		}
	}
	return nil
}

// Clear removes every cache entry.
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
