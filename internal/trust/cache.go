package trust

import "sync"

// Cache remembers owners verified during a single run. Only positive
// results are stored.
type Cache struct {
	mu       sync.RWMutex
	verified map[string]bool
}

func NewCache() *Cache {
	return &Cache{verified: make(map[string]bool)}
}

func (c *Cache) IsVerified(owner string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.verified[owner]
}

// MarkVerified records owner as verified. It returns false if the owner was
// already present.
func (c *Cache) MarkVerified(owner string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.verified[owner] {
		return false
	}
	c.verified[owner] = true
	return true
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.verified)
}
