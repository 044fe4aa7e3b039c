package assets

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Loaded atlases are kept for a while so a new round or a new game from the
// menu does not read and decode the file again. Entries expire so edits to
// a custom atlas show up without a restart.
const (
	cacheSize = 8
	cacheTTL  = time.Minute
)

var cache = expirable.NewLRU[string, *Atlas](cacheSize, nil, cacheTTL)

// LoadPath loads an atlas file from disk, or the built-in atlas when path
// is empty.
func LoadPath(path string, logger *log.Logger) *Atlas {
	if path == "" {
		return Load(nil, "", logger)
	}
	return Load(os.DirFS(filepath.Dir(path)), filepath.Base(path), logger)
}

// Cached is LoadPath through the atlas cache. Atlases are read-only, so
// the same instance is shared by every game that asks for the path.
func Cached(path string, logger *log.Logger) *Atlas {
	if a, ok := cache.Get(path); ok {
		return a
	}
	a := LoadPath(path, logger)
	cache.Add(path, a)
	return a
}
