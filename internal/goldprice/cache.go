package goldprice

import (
	"sync"
	"time"

	"github.com/aurumworks/showcase/internal/domain"
)

const quoteTTL = 5 * time.Minute

// quoteCache holds the last live resolution so repeated Resolve calls within
// the TTL do not hit the feed. Fallback resolutions are never cached: the
// next caller should get another chance at a live price.
type quoteCache struct {
	mu        sync.RWMutex
	price     domain.ReferencePrice
	hasValue  bool
	expiresAt time.Time
}

func newQuoteCache() *quoteCache {
	return &quoteCache{}
}

func (c *quoteCache) get() (domain.ReferencePrice, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.hasValue || time.Now().After(c.expiresAt) {
		return domain.ReferencePrice{}, false
	}
	return c.price, true
}

func (c *quoteCache) set(price domain.ReferencePrice) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.price = price
	c.hasValue = true
	c.expiresAt = time.Now().Add(quoteTTL)
}
