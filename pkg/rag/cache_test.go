package rag

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetAndGet(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	cache.Set("apple revenue growth", ModeGraph, []string{"answer"})

	results, ok := cache.Get("apple revenue growth", ModeGraph)
	assert.True(t, ok)
	assert.Equal(t, []string{"answer"}, results)
}

func TestCache_Miss(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	results, ok := cache.Get("unknown query", ModeGraph)
	assert.False(t, ok)
	assert.Nil(t, results)
}

func TestCache_KeyIncludesMode(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	cache.Set("apple", ModeGraph, []string{"graph answer"})

	_, ok := cache.Get("apple", ModeChunks)
	assert.False(t, ok)
}

func TestCache_NormalizesQuery(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	cache.Set("  Apple Revenue  ", ModeGraph, []string{"answer"})

	results, ok := cache.Get("apple revenue", ModeGraph)
	assert.True(t, ok)
	assert.Equal(t, []string{"answer"}, results)
}

func TestCache_TTLExpiry(t *testing.T) {
	cache := NewCache(50 * time.Millisecond)

	cache.Set("query", ModeGraph, []string{"answer"})

	_, ok := cache.Get("query", ModeGraph)
	assert.True(t, ok)

	time.Sleep(60 * time.Millisecond)

	_, ok = cache.Get("query", ModeGraph)
	assert.False(t, ok)
}

func TestCache_Clear(t *testing.T) {
	cache := NewCache(1 * time.Minute)

	cache.Set("q1", ModeGraph, []string{"a"})
	cache.Set("q2", ModeChunks, []string{"b"})
	assert.Equal(t, 2, cache.Len())

	cache.Clear()
	assert.Equal(t, 0, cache.Len())

	_, ok := cache.Get("q1", ModeGraph)
	assert.False(t, ok)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	cache := NewCache(1 * time.Minute)
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cache.Set("shared", ModeGraph, []string{"answer"})
		}()
		go func() {
			defer wg.Done()
			cache.Get("shared", ModeGraph)
		}()
	}
	wg.Wait()

	results, ok := cache.Get("shared", ModeGraph)
	assert.True(t, ok)
	assert.Equal(t, []string{"answer"}, results)
}
