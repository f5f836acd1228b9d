package config

import "sync/atomic"

// Runtime provides atomic access to configuration for hot-reload support.
//
// The watcher callback stores each reloaded config; emissions read the latest one:
//
//	runtime := config.NewRuntime(initialConfig)
//	w.OnReload(func(cfg *config.Config) error {
//		runtime.Store(cfg)
//		return nil
//	})
//	req := runtime.Get().Dataset.Request()
type Runtime struct {
	ptr atomic.Pointer[Config]
}

// NewRuntime creates a new Runtime with the given initial configuration.
func NewRuntime(initial *Config) *Runtime {
	r := &Runtime{}
	r.ptr.Store(initial)
	return r
}

// Get returns the current configuration atomically.
func (r *Runtime) Get() *Config {
	return r.ptr.Load()
}

// Store atomically replaces the current configuration.
func (r *Runtime) Store(cfg *Config) {
	r.ptr.Store(cfg)
}
