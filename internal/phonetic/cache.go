package phonetic

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"sync"
)

// Cache stores fetched pronunciations in memory for batch operations
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewCache creates a new pronunciation cache
func NewCache() *Cache {
	return &Cache{entries: make(map[string]string)}
}

// Add adds a pronunciation to the cache
func (c *Cache) Add(word, ipa string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[word] = ipa
}

// Get retrieves a pronunciation from the cache
func (c *Cache) Get(word string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ipa, ok := c.entries[word]
	return ipa, ok
}

// Len returns the number of cached pronunciations
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// All returns a copy of all cached pronunciations
func (c *Cache) All() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return maps.Clone(c.entries)
}

// Save writes the cache as a flat word → IPA JSON object, the same layout
// as the pronunciation lookup.
func (c *Cache) Save(path string) error {
	data, err := json.MarshalIndent(c.All(), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write fetched pronunciations: %w", err)
	}
	return nil
}
