package chain

import (
	"sort"

	"go.uber.org/zap"

	"github.com/roach88/fluent/config"
	"github.com/roach88/fluent/is"
	"github.com/roach88/fluent/object"
	"github.com/roach88/fluent/registry"
	"github.com/roach88/fluent/schema"
	"github.com/roach88/fluent/store"
	"github.com/roach88/fluent/strcase"
)

// Handler shapes. The implicit receiver of the source idiom is an explicit
// parameter here; Bind fixes it at composition time, and it defaults to the
// owning parent.

// GetFunc produces the value of an accessor member.
type GetFunc func(recv any) any

// SetFunc assigns a value through an accessor member.
type SetFunc func(recv any, value any)

// CallFunc is the body of a callable member.
type CallFunc func(recv any, args ...any) any

// ReturnFunc transforms a call result when Returns is configured with
// callReturns: it receives the original result followed by the original
// arguments, and its result becomes the member's return value.
type ReturnFunc func(result any, args ...any) any

// FactoryFunc is run once per target name during synthesis, before
// behavior composition. It may call configuration methods on the chain,
// including appending further names.
type FactoryFunc func(name string, c *Chain)

// MemberDef is the explicit form of one member definition ingested by
// NameMap: any combination of get, set, and call handlers. Both Get and
// Set present enables getter/setter mode for that name.
type MemberDef struct {
	Get  GetFunc
	Set  SetFunc
	Call CallFunc
}

// handler wraps a configured get/set/call function. Defaulted handlers are
// fallback wiring installed by the synthesizer; composition replaces them
// freely, while explicit ones are preserved. Seeded handlers were captured
// from one name's pre-existing member and are dropped before the next name
// is wired.
type handler struct {
	get       GetFunc
	set       SetFunc
	call      CallFunc
	defaulted bool
	seeded    bool
}

// Chain is the spec accumulator: a fluent configuration surface writing
// into its own ordered store, consumed exactly once by Build.
//
// A Chain is exclusively owned by its caller until passed into Build,
// which clears the store and releases the parent link; the instance must
// not be reused afterwards. Not safe for concurrent use.
type Chain struct {
	parent object.Host
	cfg    config.Config
	spec   *store.Store
	reg    *registry.Registry

	// err is the first recorded misuse under strict mode, surfaced by
	// Build.
	err *ConfigError

	// built marks the spec as consumed; a second Build is a no-op.
	built bool
}

// Option configures a Chain at construction.
type Option func(*Chain)

// WithConfig sets the ambient configuration.
func WithConfig(cfg config.Config) Option {
	return func(c *Chain) {
		c.cfg = cfg
	}
}

// WithRegistry sets the decoration registry installations are recorded in.
func WithRegistry(r *registry.Registry) Option {
	return func(c *Chain) {
		if r != nil {
			c.reg = r
		}
	}
}

// New creates a spec accumulator against parent.
func New(parent object.Host, opts ...Option) *Chain {
	c := &Chain{
		parent: parent,
		cfg:    config.Default(),
		spec:   store.New(),
		reg:    registry.Default,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Parent returns the owning parent, or nil once the chain is consumed.
func (c *Chain) Parent() object.Host {
	return c.parent
}

// Store capability wiring: a Chain nested inside another store inlines its
// own entries in recursive snapshots, accepts delegated config, and clears
// with its owner.

// ComposedStore implements store.Composable.
func (c *Chain) ComposedStore() *store.Store { return c.spec }

// MergeConfig implements store.Mergeable.
func (c *Chain) MergeConfig(src map[string]any) { c.spec.Merge(src, nil) }

// ClearAll implements store.Clearable.
func (c *Chain) ClearAll() { c.spec.Clear() }

// Name adds target member names. Names accumulate across calls (factories
// append further names during synthesis); duplicates are dropped.
func (c *Chain) Name(names ...string) *Chain {
	cur := c.names()
	seen := make(map[string]struct{}, len(cur))
	for _, n := range cur {
		seen[n] = struct{}{}
	}
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		cur = append(cur, n)
	}
	c.spec.Set(KeyNames, cur)
	return c
}

// NameMap ingests a mapping of member definitions. Each key becomes a
// target name. A callable value queues a factory that installs it as the
// call handler and disables getter/setter mode for that name. A MemberDef
// or a {get,set,call} mapping ingests its sub-fields; get and set both
// present enables getter/setter mode.
func (c *Chain) NameMap(defs map[string]any) *Chain {
	keys := make([]string, 0, len(defs))
	for k := range defs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		key := key
		v := defs[key]
		c.Name(key)

		if call, ok := asCallFunc(v); ok {
			c.Factory(func(n string, ch *Chain) {
				if !ch.nameMatches(n, key) {
					return
				}
				ch.OnCall(call)
				ch.GetSet(false)
			})
			continue
		}

		def, ok := asMemberDef(v)
		if !ok {
			c.fail(&ConfigError{
				Code:    ErrCodeBadHandler,
				Message: "member definition is neither callable nor a get/set/call definition",
				Name:    key,
			})
			continue
		}
		c.Factory(func(n string, ch *Chain) {
			if !ch.nameMatches(n, key) {
				return
			}
			if def.Get != nil {
				ch.OnGet(def.Get)
			}
			if def.Set != nil {
				ch.OnSet(def.Set)
			}
			if def.Call != nil {
				ch.OnCall(def.Call)
			}
			if def.Get != nil && def.Set != nil {
				ch.GetSet(true)
			}
		})
	}
	return c
}

// Type sets the validator descriptor for call and set arguments.
func (c *Chain) Type(t *schema.Type) *Chain {
	c.spec.Set(KeyType, t)
	return c
}

// Default sets the value default getters fall back to when the parent
// store has no entry under the member name.
func (c *Chain) Default(v any) *Chain {
	c.spec.Set(KeyDefault, v)
	return c
}

// Initial sets the value written to the parent store at synthesis time.
func (c *Chain) Initial(v any) *Chain {
	c.spec.Set(KeyInitial, v)
	return c
}

// OnValid sets the callback invoked with values that pass validation.
func (c *Chain) OnValid(fn func(v any)) *Chain {
	c.spec.Set(KeyOnValid, fn)
	return c
}

// OnInvalid sets the callback invoked with values that fail validation.
func (c *Chain) OnInvalid(fn func(v any)) *Chain {
	c.spec.Set(KeyOnInvalid, fn)
	return c
}

// CallReturns marks the Returns value as callable (see Returns).
func (c *Chain) CallReturns(on bool) *Chain {
	c.spec.Set(KeyCallReturns, on)
	return c
}

// OnGet sets the explicit get handler.
func (c *Chain) OnGet(fn GetFunc) *Chain {
	c.spec.Set(KeyOnGet, handler{get: fn})
	return c
}

// OnSet sets the explicit set handler.
func (c *Chain) OnSet(fn SetFunc) *Chain {
	c.spec.Set(KeyOnSet, handler{set: fn})
	return c
}

// OnCall sets the explicit call handler.
func (c *Chain) OnCall(fn CallFunc) *Chain {
	c.spec.Set(KeyOnCall, handler{call: fn})
	return c
}

// Bind fixes the receiver the composed method operates on. A nil target
// binds to the owning parent.
func (c *Chain) Bind(target any) *Chain {
	if target == nil {
		target = c.parent
	}
	c.spec.Set(KeyBind, target)
	return c
}

// Returns replaces the installed method's result with v. With callReturns,
// v must be a ReturnFunc; it is invoked with the original result followed
// by the original arguments and its result is returned instead.
func (c *Chain) Returns(v any, callReturns bool) *Chain {
	c.spec.Set(KeyReturns, v)
	c.spec.Set(KeyCallReturns, callReturns)
	return c
}

// Chainable is shorthand for Returns(v, false).
func (c *Chain) Chainable(v any) *Chain {
	return c.Returns(v, false)
}

// Alias queues additional names that receive the primary name's final
// descriptor.
func (c *Chain) Alias(names ...string) *Chain {
	cur, _ := c.spec.Get(KeyAlias)
	list, _ := cur.([]string)
	c.spec.Set(KeyAlias, append(list, names...))
	return c
}

// Factory queues fn to run once per name during synthesis, before
// behavior composition.
func (c *Chain) Factory(fn FactoryFunc) *Chain {
	cur, _ := c.spec.Get(KeyFactories)
	list, _ := cur.([]FactoryFunc)
	c.spec.Set(KeyFactories, append(list, fn))
	return c
}

// Encase enables wrap-existing-function mode. A string naming a callable
// member on the parent resolves to that member; a callable is used as-is;
// anything else turns the mode on for the method captured at conflict
// detection.
func (c *Chain) Encase(x any) *Chain {
	switch v := x.(type) {
	case string:
		if c.parent != nil {
			if d, ok := c.parent.Descriptor(v); ok {
				if vd, ok := d.(object.ValueDescriptor); ok {
					c.spec.Set(KeyEncase, liftMethod(vd.Value))
					return c
				}
			}
		}
		c.spec.Set(KeyEncase, true)
	default:
		if fn, ok := asCallFunc(x); ok {
			c.spec.Set(KeyEncase, fn)
			return c
		}
		c.spec.Set(KeyEncase, true)
	}
	return c
}

// CamelCase marks that installed names are converted to camel form first.
func (c *Chain) CamelCase() *Chain {
	c.spec.Set(KeyCamelCase, true)
	return c
}

// Define toggles direct-value installation for the produced members. While
// on, it wins over getter/setter mode regardless of call order.
func (c *Chain) Define(on bool) *Chain {
	c.spec.Set(KeyDefine, on)
	if on {
		c.spec.Set(KeyGetSet, false)
	}
	return c
}

// GetSet toggles paired-accessor installation for the produced members.
func (c *Chain) GetSet(on bool) *Chain {
	c.spec.Set(KeyGetSet, on)
	return c
}

// Decorate installs the synthesized members onto target instead of the
// owning parent, records the decoration in target's registry, and makes
// the built method return the decorated object unless the call's own
// result is truthy. A nil target resolves to the parent's parent; when
// that is also nil the call is configuration misuse handled per the
// strictness mode.
func (c *Chain) Decorate(target object.Host) *Chain {
	if target == nil {
		if c.parent != nil {
			target = c.parent.Parent()
		}
		if target == nil {
			c.fail(&ConfigError{
				Code:    ErrCodeNoDecorationTarget,
				Message: "no resolvable decoration target",
			})
			return c
		}
	}
	c.spec.Set(KeyDecorationTarget, target)
	return c
}

// AutoIncrement queues a factory that seeds the member's store entry with
// zero and installs a call handler that increments and re-stores it,
// returning the new count.
func (c *Chain) AutoIncrement() *Chain {
	return c.Factory(func(name string, ch *Chain) {
		st := ch.parent.ConfigStore()
		ch.Initial(0)
		ch.OnCall(func(recv any, args ...any) any {
			n := 0
			if cur, ok := st.Get(name); ok {
				if i, ok := cur.(int); ok {
					n = i
				}
			}
			n++
			st.Set(name, n)
			return n
		})
	})
}

// fail records misuse per the strictness policy: strict keeps the first
// error for Build to return, lenient logs and moves on.
func (c *Chain) fail(err *ConfigError) {
	if c.cfg.Mode == config.Strict {
		if c.err == nil {
			c.err = err
		}
		return
	}
	c.cfg.Logger.Warn("configuration misuse ignored",
		zap.String("code", string(err.Code)),
		zap.String("message", err.Message),
		zap.String("name", err.Name),
	)
}

// nameMatches reports whether installed, the name a factory received,
// refers to key as configured. Factories see post-conversion names, so
// with camel casing on the configured key matches its camel form.
func (c *Chain) nameMatches(installed, key string) bool {
	if installed == key {
		return true
	}
	return c.boolAt(KeyCamelCase) && installed == strcase.Camel(key)
}

// names returns the accumulated name list.
func (c *Chain) names() []string {
	cur, _ := c.spec.Get(KeyNames)
	list, _ := cur.([]string)
	return list
}

// handlerAt returns the handler stored under key.
func (c *Chain) handlerAt(key string) (handler, bool) {
	cur, ok := c.spec.Get(key)
	if !ok {
		return handler{}, false
	}
	h, ok := cur.(handler)
	return h, ok
}

// boolAt reads a boolean flag from the spec store.
func (c *Chain) boolAt(key string) bool {
	cur, _ := c.spec.Get(key)
	return is.True(cur)
}

// liftMethod adapts an installed Method into the receiver-explicit
// CallFunc shape.
func liftMethod(m object.Method) CallFunc {
	return func(_ any, args ...any) any {
		return m(args...)
	}
}

// asCallFunc coerces the callable shapes NameMap and Encase accept.
func asCallFunc(v any) (CallFunc, bool) {
	switch fn := v.(type) {
	case CallFunc:
		return fn, true
	case func(recv any, args ...any) any:
		return fn, true
	case object.Method:
		return liftMethod(fn), true
	case func(args ...any) any:
		return liftMethod(fn), true
	default:
		return nil, false
	}
}

// asMemberDef coerces MemberDef values and {get,set,call} mappings.
func asMemberDef(v any) (MemberDef, bool) {
	switch def := v.(type) {
	case MemberDef:
		return def, true
	case *MemberDef:
		if def == nil {
			return MemberDef{}, false
		}
		return *def, true
	case map[string]any:
		out := MemberDef{}
		ok := false
		if g, found := def["get"]; found {
			if fn, isGet := g.(func(recv any) any); isGet {
				out.Get = fn
				ok = true
			} else if fn, isGet := g.(GetFunc); isGet {
				out.Get = fn
				ok = true
			}
		}
		if s, found := def["set"]; found {
			if fn, isSet := s.(func(recv any, value any)); isSet {
				out.Set = fn
				ok = true
			} else if fn, isSet := s.(SetFunc); isSet {
				out.Set = fn
				ok = true
			}
		}
		if call, found := def["call"]; found {
			if fn, isCall := asCallFunc(call); isCall {
				out.Call = fn
				ok = true
			}
		}
		return out, ok
	default:
		return MemberDef{}, false
	}
}
