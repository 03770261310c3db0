package heapcache

import (
	"errors"
	"fmt"
	"sync"
)

// Status is the lifecycle state of a Manager.
type Status int

const (
	StatusAlive Status = iota
	StatusShutdown
)

func (s Status) String() string {
	if s == StatusShutdown {
		return "SHUTDOWN"
	}

	return "ALIVE"
}

// Errors.
var (
	ErrShutdown    = errors.New("heapcache: manager is shut down")
	ErrCacheExists = errors.New("heapcache: cache already exists")
	ErrEmptyName   = errors.New("heapcache: cache name cannot be empty")
	ErrNilConfig   = errors.New("heapcache: configuration is nil")
)

// Manager owns a set of named caches.
type Manager struct {
	mu     sync.RWMutex
	config *Configuration
	caches map[string]*Cache
	order  []string
	status Status
}

// New builds a Manager with one cache per declared cache configuration.
func New(cfg *Configuration) (*Manager, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("heapcache: %w", err)
	}

	if cfg.Name == "" {
		cfg.Name = DefaultManagerName
	}

	m := &Manager{
		config: cfg,
		caches: make(map[string]*Cache, len(cfg.Caches)),
		order:  make([]string, 0, len(cfg.Caches)),
	}

	for _, cc := range cfg.Caches {
		m.addLocked(cc)
	}

	return m, nil
}

// NewDefault builds a Manager from DefaultConfiguration.
func NewDefault() *Manager {
	m, _ := New(DefaultConfiguration())

	return m
}

// Name -.
func (m *Manager) Name() string {
	return m.config.Name
}

// Configuration returns the configuration the manager was built from.
func (m *Manager) Configuration() *Configuration {
	return m.config
}

// Status -.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.status
}

// Cache returns the named cache, or nil when it does not exist or the
// manager is shut down.
func (m *Manager) Cache(name string) *Cache {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.status != StatusAlive {
		return nil
	}

	return m.caches[name]
}

// CacheNames returns cache names in declaration order, runtime additions last.
func (m *Manager) CacheNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, len(m.order))
	copy(names, m.order)

	return names
}

// AddCache creates a cache from the default cache template.
func (m *Manager) AddCache(name string) (*Cache, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != StatusAlive {
		return nil, ErrShutdown
	}

	if _, ok := m.caches[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrCacheExists, name)
	}

	return m.addLocked(m.config.template(name)), nil
}

// RemoveCache drops the named cache and its entries. Unknown names are ignored.
func (m *Manager) RemoveCache(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.caches[name]
	if !ok {
		return
	}

	c.RemoveAll()
	delete(m.caches, name)

	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)

			break
		}
	}
}

// Shutdown empties every cache. The manager cannot be used afterwards.
// Calling Shutdown more than once is a no-op.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status == StatusShutdown {
		return
	}

	for _, c := range m.caches {
		c.RemoveAll()
	}

	m.caches = map[string]*Cache{}
	m.order = nil
	m.status = StatusShutdown
}

func (m *Manager) addLocked(cc CacheConfiguration) *Cache {
	c := newCache(cc, m.config.cleanupInterval())
	m.caches[cc.Name] = c
	m.order = append(m.order, cc.Name)

	return c
}
