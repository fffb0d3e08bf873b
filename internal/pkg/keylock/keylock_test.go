package keylock_test

import (
	"sync"
	"testing"
	"time"

	"go-storefront/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := keylock.New()

	var (
		mu    sync.Mutex
		order []int
		wg    sync.WaitGroup
	)

	unlock := km.Lock("item-1")
	for i := 1; i <= 3; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			u := km.Lock("item-1")
			defer u()
			mu.Lock()
			order = append(order, n)
			mu.Unlock()
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	assert.Empty(t, order)
	mu.Unlock()

	unlock()
	wg.Wait()
	assert.Len(t, order, 3)
	assert.Equal(t, 0, km.Len())
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	km := keylock.New()

	unlockA := km.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		u := km.Lock("b")
		u()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on b blocked by a")
	}
}

func TestKeyedMutex_DoubleUnlockIsSafe(t *testing.T) {
	km := keylock.New()
	u := km.Lock("a")
	u()
	u()
	assert.Equal(t, 0, km.Len())
}
