package datelock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	date := time.Date(2025, time.March, 7, 15, 30, 0, 0, time.Local)
	assert.Equal(t, "date:2025-03-07", Key(date))
	assert.Equal(t, "year:2025", YearKey(2025))
}

func TestLocalLocker_SerializesSameKey(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	var (
		mu      sync.Mutex
		active  int
		maxSeen int
		wg      sync.WaitGroup
	)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(ctx, "date:2025-03-07")
			if !assert.NoError(t, err) {
				return
			}

			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()

			assert.NoError(t, unlock(ctx))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Empty(t, l.locks)
}

func TestLocalLocker_DifferentKeysDoNotBlock(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	unlockA, err := l.Lock(ctx, "date:2025-03-07")
	require.NoError(t, err)
	defer unlockA(ctx)

	timeoutCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()

	unlockB, err := l.Lock(timeoutCtx, "date:2025-03-08")
	require.NoError(t, err)
	require.NoError(t, unlockB(ctx))
}

func TestLocalLocker_TimesOut(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	unlock, err := l.Lock(ctx, "date:2025-03-07")
	require.NoError(t, err)

	timeoutCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()

	_, err = l.Lock(timeoutCtx, "date:2025-03-07")
	assert.ErrorIs(t, err, ErrLockTimeout)

	require.NoError(t, unlock(ctx))
	// повторный вызов unlock безопасен
	require.NoError(t, unlock(ctx))
	assert.Empty(t, l.locks)
}
