package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/Domenick1991/bookingservice/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryHook answers EXISTS and SET from a map so no server is dialed.
type memoryHook struct {
	mu   sync.Mutex
	keys map[string]string
	sets [][]interface{}
	err  error
}

func newMemoryHook() *memoryHook {
	return &memoryHook{keys: make(map[string]string)}
}

func (h *memoryHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return nil, errors.New("dial disabled in tests")
	}
}

func (h *memoryHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		h.mu.Lock()
		defer h.mu.Unlock()

		if h.err != nil {
			cmd.SetErr(h.err)
			return h.err
		}

		args := cmd.Args()
		switch c := cmd.(type) {
		case *redis.IntCmd:
			if cmd.Name() == "exists" {
				var n int64
				for _, k := range args[1:] {
					if _, ok := h.keys[fmt.Sprint(k)]; ok {
						n++
					}
				}
				c.SetVal(n)
				return nil
			}
		case *redis.StatusCmd:
			switch cmd.Name() {
			case "set":
				h.keys[fmt.Sprint(args[1])] = fmt.Sprint(args[2])
				h.sets = append(h.sets, args)
				c.SetVal("OK")
				return nil
			case "ping":
				c.SetVal("PONG")
				return nil
			}
		}
		err := fmt.Errorf("unexpected command %v", args)
		cmd.SetErr(err)
		return err
	}
}

func (h *memoryHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func newTestCache(t *testing.T, ttl time.Duration) (*RedisCache, *memoryHook) {
	t.Helper()
	hook := newMemoryHook()
	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	client.AddHook(hook)
	c := NewRedisCacheWithClient(client, ttl)
	t.Cleanup(func() { _ = c.Close() })
	return c, hook
}

func TestNewRedisCache(t *testing.T) {
	c := NewRedisCache(config.RedisConfig{Addr: "localhost:6379"}, time.Hour)
	assert.NotNil(t, c)
	assert.Equal(t, time.Hour, c.dedupeTTL)
	assert.NoError(t, c.Close())
}

func TestSentKey(t *testing.T) {
	assert.Equal(t, "notify:event:abc", sentKey("abc"))
}

func TestRedisCache_Ping(t *testing.T) {
	c, _ := newTestCache(t, time.Hour)

	assert.NoError(t, c.Ping(context.Background()))
}

func TestRedisCache_MarkSent(t *testing.T) {
	c, hook := newTestCache(t, time.Hour)
	ctx := context.Background()

	sent, err := c.WasSent(ctx, "evt-1")
	require.NoError(t, err)
	assert.False(t, sent, "unseen event")

	require.NoError(t, c.MarkSent(ctx, "evt-1"))

	sent, err = c.WasSent(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, sent, "marked event")

	sent, err = c.WasSent(ctx, "evt-2")
	require.NoError(t, err)
	assert.False(t, sent, "other events are unaffected")

	require.Len(t, hook.sets, 1)
	assert.Equal(t, "notify:event:evt-1", hook.sets[0][1])
	assert.Contains(t, hook.sets[0], "ex", "key carries the dedupe TTL")
	assert.Contains(t, hook.sets[0], int64(3600))
}

func TestRedisCache_Errors(t *testing.T) {
	c, hook := newTestCache(t, time.Hour)
	hook.err = errors.New("connection refused")
	ctx := context.Background()

	sent, err := c.WasSent(ctx, "evt-1")
	assert.EqualError(t, err, "connection refused")
	assert.False(t, sent)

	assert.EqualError(t, c.MarkSent(ctx, "evt-1"), "connection refused")
}
