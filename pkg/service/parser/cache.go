// pkg/service/parser/cache.go
package parser

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// LRUCache 是渲染结果的进程内缓存：容量满时淘汰最久未访问的条目，
// 条目超过 TTL 视同未命中。
type LRUCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[string]*list.Element
	order    *list.List // 队首最旧，队尾最新
}

type cacheEntry struct {
	key       string
	value     string
	createdAt time.Time
}

// NewLRUCache 创建新的 LRU 缓存。
func NewLRUCache(capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

// computeCacheKey 用原文的 SHA256 做缓存键，正文本身可能很大。
func computeCacheKey(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// Get 返回缓存值；过期条目被顺手删除并按未命中处理。
func (c *LRUCache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return "", false
	}

	entry := el.Value.(*cacheEntry)
	if c.ttl > 0 && time.Since(entry.createdAt) > c.ttl {
		c.order.Remove(el)
		delete(c.entries, key)
		return "", false
	}

	c.order.MoveToBack(el)
	return entry.value, true
}

// Set 写入缓存，容量满时淘汰最久未访问的条目。
func (c *LRUCache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*cacheEntry)
		entry.value = value
		entry.createdAt = time.Now()
		c.order.MoveToBack(el)
		return
	}

	if len(c.entries) >= c.capacity {
		if oldest := c.order.Front(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}

	c.entries[key] = c.order.PushBack(&cacheEntry{
		key:       key,
		value:     value,
		createdAt: time.Now(),
	})
}

// Size 返回当前缓存条目数。
func (c *LRUCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
