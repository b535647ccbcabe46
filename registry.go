package ardbc

import (
	"sync"

	"github.com/ardbc/ardbc/internal/driver"
)

// Driver is implemented by a concrete database engine binding. See
// internal/driver.Driver for the full contract; it is re-exported here so
// driver authors outside this module only ever need to import the root
// package.
type Driver = driver.Driver

// Registry is a process-independent map from driver name to driver object,
// guarded by a mutex. Most applications use the package-level
// RegisterDriver/UnregisterDriver/Open façade backed by DefaultRegistry;
// constructing a private Registry is useful for tests that register
// fakes without colliding with other tests' driver names.
type Registry struct {
	mu      sync.Mutex
	drivers map[string]driver.Driver
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{drivers: make(map[string]driver.Driver)}
}

// RegisterDriver adds driver under name. It fails with a
// *DuplicateDriverError if name is already registered.
func (r *Registry) RegisterDriver(name string, drv driver.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drivers[name]; ok {
		return &DuplicateDriverError{Name: name}
	}
	r.drivers[name] = drv
	return nil
}

// UnregisterDriver removes name. It is idempotent: no error if name was
// never registered, or was already removed.
func (r *Registry) UnregisterDriver(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drivers, name)
}

// Open returns a Database bound to the driver registered under name and
// the given url. It fails with a *UnknownDriverError if name isn't
// registered. Open never dials a connection itself — that happens lazily
// on the first Prepare or Begin.
func (r *Registry) Open(name, url string) (*Database, error) {
	r.mu.Lock()
	drv, ok := r.drivers[name]
	r.mu.Unlock()

	if !ok {
		return nil, &UnknownDriverError{Name: name}
	}

	return newDatabase(name, url, drv), nil
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process-wide singleton Registry, lazily
// initialized on first use. It is a thin façade over an ordinary Registry
// instance — RegisterDriver, UnregisterDriver and Open at package scope
// all forward to it.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// RegisterDriver registers drv under name on the default registry.
func RegisterDriver(name string, drv driver.Driver) error {
	return DefaultRegistry().RegisterDriver(name, drv)
}

// UnregisterDriver removes name from the default registry.
func UnregisterDriver(name string) {
	DefaultRegistry().UnregisterDriver(name)
}

// Open returns a Database bound to name and url on the default registry.
func Open(name, url string) (*Database, error) {
	return DefaultRegistry().Open(name, url)
}
