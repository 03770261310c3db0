package container

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/cacheboot/internal/cache"
	"github.com/device-management-toolkit/cacheboot/pkg/heapcache"
)

func TestContainer_SingleCacheManager(t *testing.T) {
	t.Parallel()

	c := New()

	_, ok := c.CacheManager()
	assert.False(t, ok)

	first := cache.NewHeapManager(heapcache.NewDefault())
	require.NoError(t, c.SetCacheManager(first))

	err := c.SetCacheManager(cache.NewHeapManager(heapcache.NewDefault()))
	assert.ErrorIs(t, err, ErrCacheManagerExists)

	got, ok := c.CacheManager()
	assert.True(t, ok)
	assert.Same(t, first, got)
}

func TestContainer_Customizers(t *testing.T) {
	t.Parallel()

	c := New()
	c.RegisterCustomizer("a")
	c.RegisterCustomizer("b")

	list := c.Customizers()
	assert.Equal(t, []interface{}{"a", "b"}, list)

	list[0] = "mutated"
	assert.Equal(t, []interface{}{"a", "b"}, c.Customizers())
}

func TestContainer_ShutdownOrderAndErrors(t *testing.T) {
	t.Parallel()

	c := New()

	var order []int

	errFirst := errors.New("first failed")

	c.OnShutdown(func() error { order = append(order, 1); return errFirst })
	c.OnShutdown(func() error { order = append(order, 2); return nil })
	c.OnShutdown(func() error { order = append(order, 3); return nil })

	err := c.Shutdown()
	assert.ErrorIs(t, err, errFirst)
	assert.Equal(t, []int{3, 2, 1}, order)

	assert.NoError(t, c.Shutdown(), "hooks run once")
	assert.Equal(t, []int{3, 2, 1}, order)
}
