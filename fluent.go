package fluent

import (
	"sync"
	"sync/atomic"

	"github.com/roach88/fluent/chain"
	"github.com/roach88/fluent/config"
	"github.com/roach88/fluent/object"
	"github.com/roach88/fluent/registry"
)

// init publishes the initial global state.
func init() {
	st.Store(&state{
		cfg: config.Default(),
		reg: registry.Default,
	})
}

// New creates a spec accumulator against parent using the global
// configuration and decoration registry.
func New(parent object.Host) *chain.Chain {
	s := st.Load()
	return chain.New(parent, chain.WithConfig(s.cfg), chain.WithRegistry(s.reg))
}

// Object creates a root decoration target.
func Object() *object.Object {
	return object.New(nil)
}

// ObjectUnder creates a decoration target scoped under parent.
func ObjectUnder(parent *object.Object) *object.Object {
	return object.New(parent)
}

// Config returns the global configuration snapshot.
func Config() config.Config {
	return st.Load().cfg
}

// SetConfig replaces the global configuration used by chains created
// through New.
func SetConfig(cfg config.Config) {
	mu.Lock()
	defer mu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: cfg, reg: old.reg})
}

// Registry returns the global decoration registry.
func Registry() *registry.Registry {
	return st.Load().reg
}

// SetRegistry replaces the global decoration registry. A nil registry
// leaves the state unchanged.
func SetRegistry(r *registry.Registry) {
	if r == nil {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	old := st.Load()
	st.Store(&state{cfg: old.cfg, reg: r})
}

// Decorations returns the synthesized-member records for target from the
// global registry.
func Decorations(target object.Host) []registry.Record {
	return st.Load().reg.For(target)
}

// Undecorate removes a synthesized member and its records from target via
// the global registry.
func Undecorate(target object.Host, key string) bool {
	return st.Load().reg.Undecorate(target, key)
}

// mu serializes writers so read-modify-write swaps never interleave.
var mu sync.Mutex

// st is the global state snapshot. Published states are immutable; writers
// build a new state and swap it atomically.
var st atomic.Pointer[state]

// state carries the globals chains are created with.
type state struct {
	// cfg is the ambient configuration for new chains.
	cfg config.Config
	// reg is the decoration registry installations are recorded in.
	reg *registry.Registry
}
