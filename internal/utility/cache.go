package utility

import (
	"sync"
	"time"
)

// cacheItem là một entry trong cache kèm thời điểm hết hạn
type cacheItem struct {
	value     interface{}
	expiresAt time.Time
}

// Cache là store dạng key-value có giới hạn kích thước, mỗi entry tự hết hạn
// theo TTL. Dùng cho cache xác thực và bộ đếm rate limit; thay thế cho các
// map toàn cục không kiểm soát được vòng đời entry.
type Cache struct {
	items      map[string]cacheItem
	mu         sync.RWMutex
	ttl        time.Duration
	cleanup    time.Duration
	maxEntries int
	stopChan   chan struct{}
}

// NewCache tạo một instance mới của Cache.
// ttl: thời gian sống của mỗi entry; cleanup: chu kỳ dọn dẹp entry hết hạn;
// maxEntries: số entry tối đa (0 = không giới hạn).
func NewCache(ttl, cleanup time.Duration, maxEntries int) *Cache {
	cache := &Cache{
		items:      make(map[string]cacheItem),
		ttl:        ttl,
		cleanup:    cleanup,
		maxEntries: maxEntries,
		stopChan:   make(chan struct{}),
	}
	go cache.cleanupLoop()
	return cache
}

// Set lưu giá trị vào cache với TTL mặc định
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Khi vượt giới hạn, dọn entry hết hạn trước; nếu vẫn đầy thì bỏ qua
	// entry mới thay vì phình bộ nhớ
	if c.maxEntries > 0 && len(c.items) >= c.maxEntries {
		c.removeExpiredLocked()
		if _, exists := c.items[key]; !exists && len(c.items) >= c.maxEntries {
			return
		}
	}
	c.items[key] = cacheItem{value: value, expiresAt: time.Now().Add(c.ttl)}
}

// Get lấy giá trị từ cache; entry hết hạn được coi như không tồn tại
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	item, exists := c.items[key]
	c.mu.RUnlock()

	if !exists || time.Now().After(item.expiresAt) {
		return nil, false
	}
	return item.value, true
}

// Delete xóa một entry khỏi cache
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Increment tăng bộ đếm cho key và trả về giá trị mới.
// Nếu entry chưa tồn tại hoặc đã hết hạn, bộ đếm bắt đầu lại từ 1 với TTL mới.
// Dùng cho rate limiting theo window.
func (c *Cache) Increment(key string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	item, exists := c.items[key]
	if !exists || now.After(item.expiresAt) {
		if c.maxEntries > 0 && len(c.items) >= c.maxEntries {
			c.removeExpiredLocked()
		}
		c.items[key] = cacheItem{value: int64(1), expiresAt: now.Add(c.ttl)}
		return 1
	}

	count, ok := item.value.(int64)
	if !ok {
		count = 0
	}
	count++
	// Giữ nguyên expiresAt: window tính từ request đầu tiên
	c.items[key] = cacheItem{value: count, expiresAt: item.expiresAt}
	return count
}

// Len trả về số entry hiện có (kể cả entry hết hạn chưa được dọn)
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stop dừng goroutine dọn dẹp
func (c *Cache) Stop() {
	close(c.stopChan)
}

// cleanupLoop dọn dẹp các entry hết hạn theo chu kỳ
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			c.removeExpiredLocked()
			c.mu.Unlock()
		case <-c.stopChan:
			return
		}
	}
}

// removeExpiredLocked xóa entry hết hạn; caller phải giữ lock
func (c *Cache) removeExpiredLocked() {
	now := time.Now()
	for k, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, k)
		}
	}
}
