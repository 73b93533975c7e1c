package bmpm

import (
	"sync"

	"github.com/beidermorse/bmpm/langdetect"
	"github.com/beidermorse/bmpm/language"
	"github.com/beidermorse/bmpm/rule"
)

// Cache is a memoizing table store: rule tables and language-detect tables
// are loaded from backing on the first request for a key and shared across
// all subsequent calls. Concurrent first requests for the same key may each
// load it; the last one stored wins. It locks only the map, never the
// rewrite path. Clear is
// idempotent and safe to call concurrently with lookups.
type Cache struct {
	backing Store

	mu     sync.RWMutex
	tables map[tableKey]*rule.Table
	detect map[language.NameType]*langdetect.Table
}

type tableKey struct {
	kind     TableKind
	nt       language.NameType
	lang     string
	accuracy Accuracy
}

// NewCache wraps backing with a fill-once memoizing cache.
func NewCache(backing Store) *Cache {
	return &Cache{
		backing: backing,
		tables:  make(map[tableKey]*rule.Table),
		detect:  make(map[language.NameType]*langdetect.Table),
	}
}

// Table returns the cached table for the given key, loading it from
// backing on first request.
func (c *Cache) Table(kind TableKind, nt language.NameType, lang string, accuracy Accuracy) (*rule.Table, error) {
	key := tableKey{kind, nt, lang, accuracy}

	c.mu.RLock()
	t, ok := c.tables[key]
	c.mu.RUnlock()
	if ok {
		return t, nil
	}

	loaded, err := c.backing.Table(kind, nt, lang, accuracy)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.tables[key] = loaded
	c.mu.Unlock()
	return loaded, nil
}

// LangDetect returns the cached language-detect table for nt, loading it
// from backing on first request.
func (c *Cache) LangDetect(nt language.NameType) (*langdetect.Table, error) {
	c.mu.RLock()
	t, ok := c.detect[nt]
	c.mu.RUnlock()
	if ok {
		return t, nil
	}

	loaded, err := c.backing.LangDetect(nt)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.detect[nt] = loaded
	c.mu.Unlock()
	return loaded, nil
}

// Clear empties the cache. Safe to call concurrently with Table/LangDetect;
// concurrent callers simply re-populate it.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.tables = make(map[tableKey]*rule.Table)
	c.detect = make(map[language.NameType]*langdetect.Table)
	c.mu.Unlock()
}
