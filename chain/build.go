package chain

import (
	"go.uber.org/zap"

	"github.com/roach88/fluent/is"
	"github.com/roach88/fluent/object"
	"github.com/roach88/fluent/schema"
	"github.com/roach88/fluent/strcase"
)

// BuildWith materializes like Build with returnValue substituted for every
// synthesized method's result, as if Returns(returnValue, false) had been
// configured. An explicitly configured Returns wins; a nil returnValue is a
// plain Build.
func (c *Chain) BuildWith(returnValue any) (object.Host, error) {
	if returnValue != nil && !c.spec.Has(KeyReturns) {
		c.Returns(returnValue, false)
	}
	return c.Build()
}

// Build materializes the accumulated spec onto the configured target and
// consumes the chain: the spec store is cleared, the parent link released,
// and the instance marked so a second Build is a no-op creating nothing.
//
// It returns the owning parent so call sites can continue chaining on the
// parent rather than the spec, plus the first recorded configuration error
// under strict mode.
func (c *Chain) Build() (object.Host, error) {
	if c.built || c.parent == nil {
		return nil, nil
	}
	parent := c.parent
	logger := c.cfg.Logger

	target := parent
	decorated := false
	if v, ok := c.spec.Get(KeyDecorationTarget); ok {
		if h, ok := v.(object.Host); ok {
			target = h
			decorated = true
		}
	}

	camel := c.boolAt(KeyCamelCase)

	// Index-based loop: factories may append names mid-pass, so the list
	// is re-read after every synthesis step.
	names := c.names()
	for i := 0; i < len(names); i++ {
		installed := names[i]
		if camel {
			installed = strcase.Camel(installed)
		}
		c.synthesize(installed, parent, target, decorated, camel, i == 0, logger)
		names = c.names()
	}

	var err error
	if c.err != nil {
		err = c.err
	}

	c.spec.Clear()
	c.parent = nil
	c.built = true
	return parent, err
}

// synthesize runs the full descriptor pipeline for one installed name:
// conflict detection, default wiring, factory expansion, behavior
// composition, descriptor assembly, and installation.
func (c *Chain) synthesize(name string, parent, target object.Host, decorated, camel, primary bool, logger *zap.Logger) {
	// Seeds captured for a previous name must not leak into this name's
	// wiring; without them the default store wiring below takes over.
	for _, key := range []string{KeyOnCall, KeyOnSet} {
		if h, ok := c.handlerAt(key); ok && h.seeded {
			c.spec.Delete(key)
		}
	}

	// 1. Conflict detection. Non-configurable members are skipped
	// outright; redefining them would fail, so the name is a silent no-op.
	existing, hasExisting := target.Descriptor(name)
	if hasExisting && !existing.IsConfigurable() {
		logger.Debug("skipping non-configurable member", zap.String("member", name))
		return
	}
	var captured CallFunc
	if hasExisting {
		if vd, ok := existing.(object.ValueDescriptor); ok && vd.Value != nil {
			// The member is already decorated: its current value seeds
			// the call and set slots unless explicit handlers exist.
			captured = liftMethod(vd.Value)
			if h, ok := c.handlerAt(KeyOnCall); !ok || h.defaulted || h.call == nil {
				c.spec.Set(KeyOnCall, handler{call: captured, seeded: true})
			}
			if h, ok := c.handlerAt(KeyOnSet); !ok || h.defaulted || h.set == nil {
				seed := captured
				c.spec.Set(KeyOnSet, handler{set: func(recv any, v any) { seed(recv, v) }, seeded: true})
			}
		}
	}

	// 2. Default wiring. Whichever of get/set/call was not explicitly
	// supplied (or was defaulted for a previous name) reads and writes
	// the owning store under this same name.
	pstore := parent.ConfigStore()
	defVal, hasDefault := c.spec.Get(KeyDefault)
	if h, ok := c.handlerAt(KeyOnGet); !ok || h.defaulted || h.get == nil {
		c.spec.Set(KeyOnGet, handler{defaulted: true, get: func(any) any {
			if v, ok := pstore.Get(name); ok {
				return v
			}
			if hasDefault {
				return defVal
			}
			return nil
		}})
	}
	if h, ok := c.handlerAt(KeyOnSet); !ok || h.defaulted || h.set == nil {
		c.spec.Set(KeyOnSet, handler{defaulted: true, set: func(_ any, v any) {
			pstore.Set(name, v)
		}})
	}
	if h, ok := c.handlerAt(KeyOnCall); !ok || h.defaulted || h.call == nil {
		// A decorated method's default return must stay falsy so the
		// decorate wrapper can substitute the decorated object.
		var defaultReturn any
		if !decorated {
			defaultReturn = parent
		}
		c.spec.Set(KeyOnCall, handler{defaulted: true, call: func(_ any, args ...any) any {
			if len(args) > 0 {
				pstore.Set(name, args[0])
			}
			return defaultReturn
		}})
	}

	// 3. Factory expansion. Factories may reconfigure the spec, including
	// appending names; everything below re-reads the store afterwards.
	if v, ok := c.spec.Get(KeyFactories); ok {
		if fns, ok := v.([]FactoryFunc); ok {
			for _, fn := range fns {
				fn(name, c)
			}
		}
	}

	getH, _ := c.handlerAt(KeyOnGet)
	setH, _ := c.handlerAt(KeyOnSet)
	callH, _ := c.handlerAt(KeyOnCall)
	get := getH.get
	set := setH.set
	call := callH.call
	if get == nil {
		get = func(any) any { return nil }
	}
	if set == nil {
		set = func(any, any) {}
	}
	if call == nil {
		call = func(any, ...any) any { return nil }
	}

	var onValid, onInvalid func(any)
	if v, ok := c.spec.Get(KeyOnValid); ok {
		onValid, _ = v.(func(v any))
	}
	if v, ok := c.spec.Get(KeyOnInvalid); ok {
		onInvalid, _ = v.(func(v any))
	}

	// 4a. Validation replaces both call and set with a validating wrapper.
	validated := false
	if tv, ok := c.spec.Get(KeyType); ok {
		if t, ok := tv.(*schema.Type); ok {
			validated = true
			call = CallFunc(schema.Wrap(name, t, onValid, onInvalid, logger, schema.Next(call)))
			innerSet := set
			setNext := schema.Wrap(name, t, onValid, onInvalid, logger, func(recv any, args ...any) any {
				innerSet(recv, args[0])
				return nil
			})
			set = func(recv any, v any) { setNext(recv, v) }
		}
	}

	// 4b. Otherwise encasing wraps the captured or configured method.
	if !validated {
		if ev, ok := c.spec.Get(KeyEncase); ok {
			method := call
			if fn, ok := asCallFunc(ev); ok {
				method = fn
			} else if captured != nil {
				method = captured
			}
			call = encaseWrap(name, method, onValid, onInvalid, logger)
			innerSet := set
			encSet := encaseWrap(name, func(recv any, args ...any) any {
				innerSet(recv, args[0])
				return nil
			}, onValid, onInvalid, logger)
			set = func(recv any, v any) { encSet(recv, v) }
		}
	}

	// 4c. Binding fixes the receiver the composed closures operate on.
	recv := any(parent)
	if bv, ok := c.spec.Get(KeyBind); ok {
		recv = bv
	}

	// 4d. Return transform.
	if rv, ok := c.spec.Get(KeyReturns); ok {
		inner := call
		if c.boolAt(KeyCallReturns) {
			if rfn, ok := asReturnFunc(rv); ok {
				call = func(recv any, args ...any) any {
					return rfn(inner(recv, args...), args...)
				}
			} else {
				c.fail(&ConfigError{
					Code:    ErrCodeBadHandler,
					Message: "callReturns is set but the returns value is not callable",
					Name:    name,
				})
				call = func(recv any, args ...any) any {
					inner(recv, args...)
					return rv
				}
			}
		} else {
			call = func(recv any, args ...any) any {
				inner(recv, args...)
				return rv
			}
		}
	} else if decorated {
		inner := call
		tgt := target
		call = func(recv any, args ...any) any {
			if res := inner(recv, args...); truthy(res) {
				return res
			}
			return tgt
		}
	}

	// 4e. Initial value lands on the parent store before any call occurs.
	if iv, ok := c.spec.Get(KeyInitial); ok {
		pstore.Set(name, iv)
	}

	// 5. Descriptor assembly: accessor pair in getter/setter mode, single
	// callable value otherwise. Direct-value mode wins over getter/setter
	// mode when both are set. Attributes of an overridden descriptor carry
	// over, with the accessor shape winning any conflict.
	var desc object.Descriptor
	getSet := c.boolAt(KeyGetSet) && !c.boolAt(KeyDefine)
	if getSet {
		g, s, r := get, set, recv
		desc = object.AccessorDescriptor{
			Get:          func() any { return g(r) },
			Set:          func(v any) { s(r, v) },
			Enumerable:   true,
			Configurable: true,
		}
	} else {
		cl, r := call, recv
		desc = object.ValueDescriptor{
			Value:        func(args ...any) any { return cl(r, args...) },
			Enumerable:   true,
			Configurable: true,
		}
	}
	if hasExisting {
		desc = object.MergeAttributes(existing, desc)
	}

	// 6. Installation plus decoration bookkeeping.
	if err := target.Define(name, desc); err != nil {
		logger.Debug("skipping member", zap.String("member", name), zap.Error(err))
		return
	}
	c.reg.Track(target, name, name)

	if getSet {
		g, s, r := get, set, recv
		getName := strcase.GetterName(name)
		setName := strcase.SetterName(name)
		if err := target.Define(getName, object.ValueDescriptor{
			Value:        func(...any) any { return g(r) },
			Enumerable:   true,
			Configurable: true,
		}); err == nil {
			c.reg.Track(target, getName, name)
		}
		if err := target.Define(setName, object.ValueDescriptor{
			Value: func(args ...any) any {
				if len(args) > 0 {
					s(r, args[0])
				}
				return nil
			},
			Enumerable:   true,
			Configurable: true,
		}); err == nil {
			c.reg.Track(target, setName, name)
		}
		target.ConfigStore().RegisterShorthand(name, func(v any) { s(r, v) })
	}

	// Aliases copy the primary name's final descriptor.
	if !primary {
		return
	}
	if av, ok := c.spec.Get(KeyAlias); ok {
		if aliases, ok := av.([]string); ok {
			for _, alias := range aliases {
				if camel {
					alias = strcase.Camel(alias)
				}
				if err := target.Define(alias, desc); err != nil {
					logger.Debug("skipping alias", zap.String("member", alias), zap.Error(err))
					continue
				}
				c.reg.Track(target, alias, name)
			}
		}
	}
}

// encaseWrap normalizes results around method: a panic routes to onInvalid
// (or a warn log) and yields nil, success routes the result to onValid.
func encaseWrap(name string, method CallFunc, onValid, onInvalid func(any), logger *zap.Logger) CallFunc {
	return func(recv any, args ...any) (result any) {
		defer func() {
			if r := recover(); r == nil {
				return
			} else if onInvalid != nil {
				onInvalid(r)
				result = nil
			} else {
				logger.Warn("encased method panicked",
					zap.String("member", name),
					zap.Any("panic", r),
				)
				result = nil
			}
		}()
		result = method(recv, args...)
		if onValid != nil {
			onValid(result)
		}
		return result
	}
}

// truthy mirrors the loose truthiness the decorate return rule needs:
// nil and false are falsy, everything else passes.
func truthy(v any) bool {
	return !is.Nil(v) && !is.False(v)
}

// asReturnFunc coerces the callable shapes Returns accepts under
// callReturns.
func asReturnFunc(v any) (ReturnFunc, bool) {
	switch fn := v.(type) {
	case ReturnFunc:
		return fn, true
	case func(result any, args ...any) any:
		return fn, true
	case object.Method:
		return func(result any, args ...any) any {
			return fn(append([]any{result}, args...)...)
		}, true
	case func(args ...any) any:
		return func(result any, args ...any) any {
			return fn(append([]any{result}, args...)...)
		}, true
	default:
		return nil, false
	}
}
