//go:build unit

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptHook answers EVALSHA in place of a server, counting per key.
type scriptHook struct {
	counts map[string]int64
	keys   []string
	err    error
}

func (h *scriptHook) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h *scriptHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (h *scriptHook) ProcessHook(_ redis.ProcessHook) redis.ProcessHook {
	return func(_ context.Context, cmd redis.Cmder) error {
		if h.err != nil {
			cmd.SetErr(h.err)
			return h.err
		}
		args := cmd.Args()
		key := args[3].(string)
		h.keys = append(h.keys, key)
		h.counts[key]++
		cmd.(*redis.Cmd).SetVal(h.counts[key])
		return nil
	}
}

func newHookedClient(t *testing.T, h *scriptHook) *redis.Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	rdb.AddHook(h)
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestRedisLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	h := &scriptHook{counts: map[string]int64{}}
	l := NewRedisLimiter(newHookedClient(t, h), 2, time.Minute, "bookings")

	for i, want := range []bool{true, true, false} {
		ok, err := l.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.Equal(t, want, ok, "hit %d", i+1)
	}

	ok, err := l.Allow(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "bookings:203.0.113.7", h.keys[0])
}

func TestRedisLimiter_AllowError(t *testing.T) {
	h := &scriptHook{counts: map[string]int64{}, err: errors.New("connection refused")}
	l := NewRedisLimiter(newHookedClient(t, h), 2, time.Minute, "")

	ok, err := l.Allow(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestMemoryLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(2, time.Minute)
	l.now = func() time.Time { return now }

	for i, want := range []bool{true, true, false} {
		ok, err := l.Allow(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, want, ok, "hit %d", i+1)
	}

	ok, _ := l.Allow(ctx, "b")
	assert.True(t, ok, "keys are independent")

	now = now.Add(time.Minute)
	ok, _ = l.Allow(ctx, "a")
	assert.True(t, ok, "window reset")
}
