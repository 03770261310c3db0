package autoconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/device-management-toolkit/cacheboot/config"
	"github.com/device-management-toolkit/cacheboot/internal/autoconfig"
	"github.com/device-management-toolkit/cacheboot/internal/cache"
	"github.com/device-management-toolkit/cacheboot/internal/container"
	"github.com/device-management-toolkit/cacheboot/internal/mocks"
	"github.com/device-management-toolkit/cacheboot/pkg/heapcache"
	"github.com/device-management-toolkit/cacheboot/pkg/logger"
	"github.com/device-management-toolkit/cacheboot/pkg/resource"
)

const defaultXML = `<heapcache name="default">
  <cache name="fromDefault" timeToLiveSeconds="60"/>
</heapcache>`

const explicitXML = `<heapcache name="explicit">
  <defaultCache timeToLiveSeconds="30"/>
  <cache name="users" timeToLiveSeconds="300"/>
  <cache name="sessions" timeToLiveSeconds="900"/>
</heapcache>`

const explicitYAML = `name: yaml
caches:
  - name: orders
    eternal: true
`

func withDefault() fstest.MapFS {
	return fstest.MapFS{"heapcache.xml": {Data: []byte(defaultXML)}}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func newConfiguration(props config.Cache, root fstest.MapFS) *autoconfig.HeapCacheConfiguration {
	return autoconfig.New(props, resource.NewLoader(root), autoconfig.ProviderClasspath, logger.New("error"))
}

func TestConfigure_ProviderMissing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	classpath := mocks.NewMockClasspath(ctrl)
	classpath.EXPECT().Available(cache.ProviderHeap).Return(false)

	// no container calls are expected: the provider check short-circuits
	c := mocks.NewMockContainer(ctrl)

	h := autoconfig.New(config.Cache{Heap: config.HeapCache{Config: "classpath:heapcache.xml"}}, resource.NewLoader(withDefault()), classpath, logger.New("error"))

	outcome := h.ShouldActivate(c)
	assert.False(t, outcome.Match)
	assert.Contains(t, outcome.Message, "heap")

	classpath.EXPECT().Available(cache.ProviderHeap).Return(false)

	m, err := h.Configure(c)
	assert.NoError(t, err)
	assert.Nil(t, m)
}

func TestConfigure_ExistingManagerWins(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	existing := cache.NewHeapManager(heapcache.NewDefault())

	c := mocks.NewMockContainer(ctrl)
	c.EXPECT().CacheManager().Return(existing, true).Times(2)

	h := newConfiguration(config.Cache{Heap: config.HeapCache{Config: "classpath:heapcache.xml"}}, withDefault())

	outcome := h.ShouldActivate(c)
	assert.False(t, outcome.Match)
	assert.Equal(t, "found an existing cache manager", outcome.Message)

	m, err := h.Configure(c)
	assert.NoError(t, err)
	assert.Nil(t, m)
}

func TestConfigure_ExistingManagerInContainer(t *testing.T) {
	t.Parallel()

	c := container.New()
	existing := cache.NewHeapManager(heapcache.NewDefault())
	require.NoError(t, c.SetCacheManager(existing))

	m, err := newConfiguration(config.Cache{}, withDefault()).Configure(c)
	require.NoError(t, err)
	assert.Nil(t, m)

	published, _ := c.CacheManager()
	assert.Same(t, existing, published)
}

func TestConfigure_ExplicitLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		location func(t *testing.T) string
		caches   []string
		manager  string
	}{
		{
			name:     "xml path",
			location: func(t *testing.T) string { return writeFile(t, "caches.xml", explicitXML) },
			caches:   []string{"users", "sessions"},
			manager:  "explicit",
		},
		{
			name:     "file url",
			location: func(t *testing.T) string { return "file:" + writeFile(t, "caches.xml", explicitXML) },
			caches:   []string{"users", "sessions"},
			manager:  "explicit",
		},
		{
			name:     "yaml path",
			location: func(t *testing.T) string { return writeFile(t, "caches.yaml", explicitYAML) },
			caches:   []string{"orders"},
			manager:  "yaml",
		},
		{
			name:     "classpath",
			location: func(*testing.T) string { return "classpath:heapcache.xml" },
			caches:   []string{"fromDefault"},
			manager:  "default",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := container.New()
			h := newConfiguration(config.Cache{Type: config.CacheTypeHeap, Heap: config.HeapCache{Config: tt.location(t)}}, withDefault())

			m, err := h.Configure(c)
			require.NoError(t, err)
			require.NotNil(t, m)

			assert.Equal(t, tt.caches, m.CacheNames())

			heap, ok := m.(*cache.HeapManager)
			require.True(t, ok)
			assert.Equal(t, tt.manager, heap.Native().Name())

			published, ok := c.CacheManager()
			assert.True(t, ok)
			assert.Same(t, m, published)
		})
	}
}

func TestConfigure_DefaultLocation(t *testing.T) {
	t.Parallel()

	c := container.New()
	h := newConfiguration(config.Cache{}, withDefault())

	outcome := h.ShouldActivate(c)
	assert.True(t, outcome.Match)
	assert.Contains(t, outcome.Message, "class path resource [heapcache.xml]")

	loc := h.ResolveLocation()
	require.NotNil(t, loc)
	assert.Equal(t, "heapcache.xml", loc.Filename())

	m, err := h.Configure(c)
	require.NoError(t, err)
	assert.Equal(t, []string{"fromDefault"}, m.CacheNames())
}

func TestConfigure_NoConfigurationSource(t *testing.T) {
	t.Parallel()

	c := container.New()
	h := newConfiguration(config.Cache{}, fstest.MapFS{})

	outcome := h.ShouldActivate(c)
	assert.False(t, outcome.Match)
	assert.Nil(t, h.ResolveLocation())

	m, err := h.Configure(c)
	require.NoError(t, err)
	assert.Nil(t, m)

	_, ok := c.CacheManager()
	assert.False(t, ok)
}

func TestConfigure_CacheTypeMismatch(t *testing.T) {
	t.Parallel()

	c := container.New()
	h := newConfiguration(config.Cache{Type: config.CacheTypeNone}, withDefault())

	outcome := h.ShouldActivate(c)
	assert.False(t, outcome.Match)
	assert.Contains(t, outcome.Message, "'none'")

	m, err := h.Configure(c)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestConfigure_CustomizersInRegistrationOrder(t *testing.T) {
	t.Parallel()

	c := container.New()

	var order []string

	c.RegisterCustomizer(cache.CustomizerFunc[*cache.HeapManager](func(m *cache.HeapManager) {
		order = append(order, "C1")

		_, err := m.Native().AddCache("audit")
		require.NoError(t, err)
	}))
	c.RegisterCustomizer(cache.CustomizerFunc[*cache.HeapManager](func(m *cache.HeapManager) {
		order = append(order, "C2")

		// C2 observes the effect of C1
		m.Cache("audit").Put("seen-by", "C2")
	}))

	m, err := newConfiguration(config.Cache{}, withDefault()).Configure(c)
	require.NoError(t, err)

	assert.Equal(t, []string{"C1", "C2"}, order)
	assert.Equal(t, []string{"fromDefault", "audit"}, m.CacheNames())

	v, ok := m.Cache("audit").Get("seen-by")
	assert.True(t, ok)
	assert.Equal(t, "C2", v)
}

func TestConfigure_MalformedConfigurationFailsStartup(t *testing.T) {
	t.Parallel()

	c := container.New()
	location := writeFile(t, "broken.xml", `<heapcache><cache name="a"></heapcache>`)

	m, err := newConfiguration(config.Cache{Heap: config.HeapCache{Config: location}}, nil).Configure(c)
	require.Error(t, err)
	assert.Nil(t, m)

	var parseErr *heapcache.ParseError
	assert.True(t, errors.As(err, &parseErr), "the heapcache error must surface")

	_, ok := c.CacheManager()
	assert.False(t, ok)
}

func TestConfigure_ExplicitLocationMissing(t *testing.T) {
	t.Parallel()

	c := container.New()
	location := filepath.Join(t.TempDir(), "missing.xml")

	h := newConfiguration(config.Cache{Heap: config.HeapCache{Config: location}}, withDefault())

	assert.True(t, h.ShouldActivate(c).Match, "a configured location activates even if unreadable")

	_, err := h.Configure(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "cache configuration does not exist")
}

func TestConfigure_PublishFailureShutsDownNative(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	errTaken := errors.New("taken")

	var published *cache.HeapManager

	c := mocks.NewMockContainer(ctrl)
	c.EXPECT().CacheManager().Return(nil, false)
	c.EXPECT().Customizers().Return(nil)
	c.EXPECT().SetCacheManager(gomock.Any()).DoAndReturn(func(m cache.Manager) error {
		published = m.(*cache.HeapManager)

		return errTaken
	})

	_, err := newConfiguration(config.Cache{}, withDefault()).Configure(c)
	assert.ErrorIs(t, err, errTaken)

	require.NotNil(t, published)
	assert.Equal(t, heapcache.StatusShutdown, published.Native().Status())
}

func TestConfigure_ShutdownHookStopsNative(t *testing.T) {
	t.Parallel()

	c := container.New()

	m, err := newConfiguration(config.Cache{}, withDefault()).Configure(c)
	require.NoError(t, err)

	require.NoError(t, c.Shutdown())
	assert.Equal(t, heapcache.StatusShutdown, m.(*cache.HeapManager).Native().Status())
}

func TestBuildManager_NoLocationUsesDefaults(t *testing.T) {
	t.Parallel()

	native, err := newConfiguration(config.Cache{}, nil).BuildManager(nil)
	require.NoError(t, err)

	assert.Equal(t, heapcache.DefaultManagerName, native.Name())
	assert.Empty(t, native.CacheNames())
}

func TestAdapt_WrapsNative(t *testing.T) {
	t.Parallel()

	native := heapcache.NewDefault()
	_, err := native.AddCache("users")
	require.NoError(t, err)

	var applied bool

	m := newConfiguration(config.Cache{}, nil).Adapt(native, []interface{}{
		cache.CustomizerFunc[cache.Manager](func(cache.Manager) { applied = true }),
	})

	assert.True(t, applied)
	assert.Same(t, native, m.Native())
	assert.NotNil(t, m.Cache("users"))
}
