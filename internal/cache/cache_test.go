package cache

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func exercise(t *testing.T, c Cache) {
	ctx := context.Background()

	var got entry
	found, err := c.Get(ctx, Prefix+"tags:1", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, Prefix+"tags:1", entry{ID: 1, Name: "cotton"}, time.Minute))
	require.NoError(t, c.Set(ctx, Prefix+"tags", []entry{{ID: 1}}, time.Minute))
	require.NoError(t, c.Set(ctx, "other:1", entry{ID: 9}, time.Minute))

	found, err = c.Get(ctx, Prefix+"tags:1", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, entry{ID: 1, Name: "cotton"}, got)

	require.NoError(t, c.DeleteByPrefix(ctx, Prefix))

	found, err = c.Get(ctx, Prefix+"tags:1", &got)
	require.NoError(t, err)
	assert.False(t, found)
	found, err = c.Get(ctx, Prefix+"tags", &[]entry{})
	require.NoError(t, err)
	assert.False(t, found)

	var other entry
	found, err = c.Get(ctx, "other:1", &other)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 9, other.ID)
}

func TestMemory(t *testing.T) {
	m := NewMemory(time.Minute, 0)
	defer m.Close()
	exercise(t, m)
}

func TestMemory_Expiry(t *testing.T) {
	m := NewMemory(time.Minute, 0)
	defer m.Close()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", entry{ID: 1}, time.Nanosecond))
	time.Sleep(time.Millisecond)

	found, err := m.Get(ctx, "k", &entry{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemory_SweepAndClose(t *testing.T) {
	m := NewMemory(time.Nanosecond, time.Millisecond)
	require.NoError(t, m.Set(context.Background(), "k", entry{ID: 1}, 0))

	assert.Eventually(t, func() bool { return m.Size() == 0 }, time.Second, 5*time.Millisecond)
	assert.NoError(t, m.Close())
	assert.NoError(t, m.Close())
}

func TestRedis(t *testing.T) {
	srv := miniredis.RunT(t)

	r, err := NewRedis(context.Background(), srv.Addr(), "", 0, time.Minute)
	require.NoError(t, err)
	defer r.Close()

	exercise(t, r)
}

func TestRedis_DefaultTTL(t *testing.T) {
	srv := miniredis.RunT(t)

	r, err := NewRedis(context.Background(), srv.Addr(), "", 0, 30*time.Second)
	require.NoError(t, err)
	defer r.Close()

	require.NoError(t, r.Set(context.Background(), Prefix+"products", []entry{}, 0))
	assert.Equal(t, 30*time.Second, srv.TTL(Prefix+"products"))

	srv.FastForward(31 * time.Second)
	found, err := r.Get(context.Background(), Prefix+"products", &[]entry{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewRedis_Unreachable(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	_, err = NewRedis(context.Background(), addr, "", 0, time.Minute)
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	c := NewNop()
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", 1, time.Minute))
	found, err := c.Get(ctx, "k", new(int))
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.DeleteByPrefix(ctx, Prefix))
	assert.NoError(t, c.Close())
}
