package token_bucket

import (
	"sync"
	"time"
)

/*
Алгоритм простой: Allow возвращает true/false, то есть мы либо принимаем запрос, либо отклоняем.
Токены копятся дробно, поэтому медленная скорость пополнения не теряет остатки между вызовами.
*/

type Limiter interface {
	Allow() bool
}

type Clock func() time.Time

type TokenBucket struct {
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        Clock
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return newTokenBucket(capacity, refillRate, time.Now)
}

func newTokenBucket(capacity int, refillRate float64, now Clock) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: now(),
		now:        now,
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) full() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()
	return t.tokens >= t.capacity
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}

// KeyedLimiter держит отдельный bucket на каждого клиента (курьер, админ, IP),
// чтобы один шумный клиент не выедал лимит остальных.
type KeyedLimiter struct {
	capacity   int
	refillRate float64
	now        Clock

	mu          sync.Mutex
	buckets     map[string]*TokenBucket
	calls       int
	sweepEveryN int
}

type KeyedOption func(*KeyedLimiter)

// WithClock подменяет источник времени (для тестов).
func WithClock(now Clock) KeyedOption {
	return func(k *KeyedLimiter) { k.now = now }
}

// WithSweepEvery задает, через сколько вызовов Allow удалять полностью восстановленные buckets.
func WithSweepEvery(n int) KeyedOption {
	return func(k *KeyedLimiter) { k.sweepEveryN = n }
}

func NewKeyedLimiter(capacity int, refillRate float64, opts ...KeyedOption) *KeyedLimiter {
	k := &KeyedLimiter{
		capacity:    capacity,
		refillRate:  refillRate,
		now:         time.Now,
		buckets:     make(map[string]*TokenBucket),
		sweepEveryN: 1024,
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

func (k *KeyedLimiter) Allow(key string) bool {
	k.mu.Lock()
	bucket, ok := k.buckets[key]
	if !ok {
		bucket = newTokenBucket(k.capacity, k.refillRate, k.now)
		k.buckets[key] = bucket
	}
	k.calls++
	if k.sweepEveryN > 0 && k.calls%k.sweepEveryN == 0 {
		k.sweepLocked(key)
	}
	k.mu.Unlock()

	return bucket.Allow()
}

// Len возвращает число отслеживаемых ключей.
func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

// полный bucket неотличим от нового, его можно выбросить без потери состояния
func (k *KeyedLimiter) sweepLocked(keep string) {
	for key, bucket := range k.buckets {
		if key != keep && bucket.full() {
			delete(k.buckets, key)
		}
	}
}
