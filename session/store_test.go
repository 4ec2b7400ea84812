package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/pkg/apperr"
)

func TestCreateGetRemove(t *testing.T) {
	s := NewStore(0)

	c := s.Create("sid-1")
	require.NotNil(t, c)

	got, err := s.Get("sid-1")
	require.NoError(t, err)
	assert.Same(t, c, got)

	s.Remove("sid-1")
	_, err = s.Get("sid-1")
	require.Error(t, err)

	// removal is idempotent
	s.Remove("sid-1")
	assert.Equal(t, 0, s.Len())
}

func TestGetUnknownSessionHasNoSideEffect(t *testing.T) {
	s := NewStore(0)

	_, err := s.Get("nonexistent")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
	assert.Equal(t, 0, s.Len(), "lookup must not create a cart")
}

func TestCreateReplacesExistingCart(t *testing.T) {
	s := NewStore(0)

	first := s.Create("sid-1")
	require.NoError(t, first.Add(1, "Pizza", decimal.RequireFromString("12.99"), 1))

	second := s.Create("sid-1")
	assert.NotSame(t, first, second)
	assert.Empty(t, second.Entries(), "login restarts with an empty cart")
	assert.Equal(t, 1, s.Len())
}

func TestEvictIdle(t *testing.T) {
	s := NewStore(time.Minute)

	s.Create("old")
	time.Sleep(time.Millisecond)
	s.Create("fresh")

	// only sessions idle past the ttl go away
	n := s.evictIdle(time.Now().Add(30 * time.Second))
	assert.Equal(t, 0, n)
	assert.Equal(t, 2, s.Len())

	n = s.evictIdle(time.Now().Add(2 * time.Minute))
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, s.Len())

	_, err := s.Get("old")
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestGetRefreshesIdleClock(t *testing.T) {
	s := NewStore(50 * time.Millisecond)
	s.Create("sid-1")

	time.Sleep(30 * time.Millisecond)
	_, err := s.Get("sid-1") // touch
	require.NoError(t, err)

	// 30ms past the touch is inside the ttl; without the touch the
	// session would be ~60ms idle and gone
	n := s.evictIdle(time.Now().Add(30 * time.Millisecond))
	assert.Equal(t, 0, n)

	n = s.evictIdle(time.Now().Add(100 * time.Millisecond))
	assert.Equal(t, 1, n)
}

func TestConcurrentSessionsDoNotInterfere(t *testing.T) {
	s := NewStore(0)
	const n = 32

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("sid-%d", i)
			c := s.Create(id)
			assert.NoError(t, c.Add(uint(i+1), "Pizza", decimal.RequireFromString("12.99"), 1))
			got, err := s.Get(id)
			if assert.NoError(t, err) {
				assert.Len(t, got.Entries(), 1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n, s.Len())
}
