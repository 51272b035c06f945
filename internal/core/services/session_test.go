package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionCache_StableToken(t *testing.T) {
	cache := NewSessionCache(4)

	first := cache.Token("conv-1")
	second := cache.Token("conv-1")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())
}

func TestSessionCache_DistinctConversations(t *testing.T) {
	cache := NewSessionCache(4)
	assert.NotEqual(t, cache.Token("conv-1"), cache.Token("conv-2"))
}

func TestSessionCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewSessionCache(2)

	t1 := cache.Token("a")
	cache.Token("b")
	cache.Token("a") // refresh a; b is now oldest
	cache.Token("c") // evicts b

	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, t1, cache.Token("a"))

	// b was evicted, so it gets a fresh token and evicts the next oldest.
	cache.Token("b")
	assert.Equal(t, 2, cache.Len())
}

func TestSessionCache_DefaultCapacity(t *testing.T) {
	cache := NewSessionCache(0)
	for i := 0; i < DefaultSessionCapacity+10; i++ {
		cache.Token(string(rune('a' + i%26)))
	}
	assert.LessOrEqual(t, cache.Len(), DefaultSessionCapacity)
}

func TestSessionCache_ConcurrentSameKey(t *testing.T) {
	cache := NewSessionCache(8)

	var wg sync.WaitGroup
	tokens := make([]string, 20)
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tokens[i] = cache.Token("shared")
		}(i)
	}
	wg.Wait()

	for _, tok := range tokens[1:] {
		assert.Equal(t, tokens[0], tok)
	}
}
