package cache

import (
	"sort"
	"sync"
)

// ProviderHeap is the name under which the heapcache adapter registers.
const ProviderHeap = "heap"

var (
	providersMu sync.RWMutex
	providers   = make(map[string]struct{})
)

// RegisterProvider records that a cache provider is linked into the binary.
func RegisterProvider(name string) {
	providersMu.Lock()
	defer providersMu.Unlock()

	providers[name] = struct{}{}
}

// ProviderAvailable reports whether name was registered.
func ProviderAvailable(name string) bool {
	providersMu.RLock()
	defer providersMu.RUnlock()

	_, ok := providers[name]

	return ok
}

// Providers returns the registered provider names, sorted.
func Providers() []string {
	providersMu.RLock()
	defer providersMu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
