package rules

import (
	"sync"
	"time"

	"courier-ledger/internal/entities"

	"golang.org/x/sync/singleflight"
)

const cacheKey = "current"

// cache хранит одну версию текущих правил. ttl <= 0 отключает кэширование.
// generation растет при каждом invalidate: загрузка, начатая до сброса, в кэш не попадает.
type cache struct {
	mu         sync.RWMutex
	value      *entities.CourierRules
	loadedAt   time.Time
	generation uint64
	ttl        time.Duration
	group      singleflight.Group
}

func newCache(ttl time.Duration) *cache {
	return &cache{ttl: ttl}
}

func (c *cache) get() (entities.CourierRules, bool) {
	if c.ttl <= 0 {
		return entities.CourierRules{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.value == nil || time.Since(c.loadedAt) > c.ttl {
		return entities.CourierRules{}, false
	}
	return *c.value, true
}

func (c *cache) currentGeneration() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

// set сохраняет правила, только если с начала загрузки не было invalidate.
func (c *cache) set(rules entities.CourierRules, generation uint64) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return
	}
	c.value = &rules
	c.loadedAt = time.Now()
}

func (c *cache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = nil
	c.generation++
	c.group.Forget(cacheKey)
}
