package gateway

import (
	"container/list"
	"context"
	"sync"
	"time"

	"storefront/pkg/logger"
)

// Entry is a cached backend response.
type Entry struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Cache stores backend responses by request key.
type Cache interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Put(ctx context.Context, key string, e Entry) error
}

// LRUCache is a bounded in-process Cache whose entries expire after a TTL.
type LRUCache struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	order   *list.List // front is most recently used
	now     func() time.Time
}

type lruItem struct {
	key     string
	entry   Entry
	expires time.Time
}

var _ Cache = (*LRUCache)(nil)

// NewLRUCache returns a cache holding at most maxSize entries for ttl each.
func NewLRUCache(maxSize int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		maxSize: maxSize,
		ttl:     ttl,
		items:   make(map[string]*list.Element),
		order:   list.New(),
		now:     time.Now,
	}
}

// Get returns a live entry and marks it most recently used. Expired entries
// are dropped.
func (c *LRUCache) Get(_ context.Context, key string) (Entry, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return Entry{}, false, nil
	}
	item := el.Value.(*lruItem)
	if c.now().After(item.expires) {
		c.remove(el)
		return Entry{}, false, nil
	}
	c.order.MoveToFront(el)
	return item.entry, true, nil
}

// Put inserts or refreshes key, evicting the least recently used entry when
// the cache is over capacity.
func (c *LRUCache) Put(_ context.Context, key string, e Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	expires := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		item := el.Value.(*lruItem)
		item.entry = e
		item.expires = expires
		c.order.MoveToFront(el)
		return nil
	}

	c.items[key] = c.order.PushFront(&lruItem{key: key, entry: e, expires: expires})
	if c.order.Len() > c.maxSize {
		c.remove(c.order.Back())
	}
	return nil
}

// Len returns the number of stored entries, expired or not.
func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Cleanup drops every expired entry and returns how many were removed.
func (c *LRUCache) Cleanup() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for el := c.order.Front(); el != nil; {
		next := el.Next()
		if now.After(el.Value.(*lruItem).expires) {
			c.remove(el)
			removed++
		}
		el = next
	}
	return removed
}

// RunCleaner calls Cleanup every interval until ctx is done.
func (c *LRUCache) RunCleaner(ctx context.Context, interval time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info(ctx, "cache cleaner started", "interval", interval.String())
	for {
		select {
		case <-ctx.Done():
			log.Info(context.Background(), "cache cleaner stopped")
			return
		case <-ticker.C:
			if n := c.Cleanup(); n > 0 {
				log.Info(ctx, "cache cleanup", "removed", n)
			}
		}
	}
}

func (c *LRUCache) remove(el *list.Element) {
	c.order.Remove(el)
	delete(c.items, el.Value.(*lruItem).key)
}
