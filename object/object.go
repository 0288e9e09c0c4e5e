package object

import (
	"errors"
	"fmt"
	"sort"

	"github.com/roach88/fluent/store"
)

var (
	// ErrNotConfigurable is returned when Define targets an existing
	// member whose descriptor forbids redefinition.
	ErrNotConfigurable = errors.New("object: member is not configurable")
	// ErrNoMember is returned when a name has no installed descriptor.
	ErrNoMember = errors.New("object: no such member")
	// ErrNotCallable is returned when Call targets an accessor invoked
	// with more than one argument.
	ErrNotCallable = errors.New("object: member is not callable with these arguments")
	// ErrNotAssignable is returned when SetMember targets a member with
	// no write path.
	ErrNotAssignable = errors.New("object: member is not assignable")
)

// Target is the abstract property map the descriptor synthesizer installs
// into. Keeping installation behind this interface means the synthesizer
// never mutates an unknown foreign type reflectively.
type Target interface {
	// Define installs d under name. Redefining a non-configurable member
	// returns ErrNotConfigurable.
	Define(name string, d Descriptor) error
	// Descriptor returns the installed descriptor for name, if any.
	Descriptor(name string) (Descriptor, bool)
	// Delete removes the member and reports whether it existed.
	Delete(name string) bool
	// Names returns all member names in sorted order.
	Names() []string
}

// Host is what a spec accumulator decorates: an installable target with a
// backing config store for default get/set wiring, a metadata store for
// decoration bookkeeping, and an optional parent scope.
type Host interface {
	Target

	// ConfigStore returns the ordered store backing default member wiring.
	ConfigStore() *store.Store
	// Meta returns the lazily-created metadata store for decoration and
	// schema bookkeeping.
	Meta() *store.Store
	// Parent returns the enclosing scope, or nil at the root.
	Parent() Host
}

// Object is the concrete map-backed Host. The zero value is not usable;
// construct with New.
type Object struct {
	parent  *Object
	members map[string]Descriptor
	cfg     *store.Store
	meta    *store.Store
}

// New creates an Object under parent. A nil parent makes a root scope.
func New(parent *Object) *Object {
	return &Object{
		parent:  parent,
		members: make(map[string]Descriptor),
		cfg:     store.New(),
	}
}

// Define implements Target.
func (o *Object) Define(name string, d Descriptor) error {
	if cur, ok := o.members[name]; ok && !cur.IsConfigurable() {
		return fmt.Errorf("%w: %s", ErrNotConfigurable, name)
	}
	o.members[name] = d
	return nil
}

// Descriptor implements Target.
func (o *Object) Descriptor(name string) (Descriptor, bool) {
	d, ok := o.members[name]
	return d, ok
}

// Delete implements Target.
func (o *Object) Delete(name string) bool {
	_, ok := o.members[name]
	delete(o.members, name)
	return ok
}

// Names implements Target.
func (o *Object) Names() []string {
	names := make([]string, 0, len(o.members))
	for name := range o.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ConfigStore implements Host.
func (o *Object) ConfigStore() *store.Store {
	return o.cfg
}

// Meta implements Host. The metadata store is created on first use so
// undecorated objects stay lightweight.
func (o *Object) Meta() *store.Store {
	if o.meta == nil {
		o.meta = store.New()
	}
	return o.meta
}

// HasMeta reports whether metadata has ever been attached.
func (o *Object) HasMeta() bool {
	return o.meta != nil
}

// Parent implements Host.
func (o *Object) Parent() Host {
	if o.parent == nil {
		return nil
	}
	return o.parent
}

// Call invokes the member under name. A value member is invoked with args
// as-is. An accessor member reads with zero args and writes with one.
func (o *Object) Call(name string, args ...any) (any, error) {
	d, ok := o.members[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoMember, name)
	}
	switch m := d.(type) {
	case ValueDescriptor:
		return m.Value(args...), nil
	case AccessorDescriptor:
		switch len(args) {
		case 0:
			if m.Get == nil {
				return nil, fmt.Errorf("%w: %s", ErrNotCallable, name)
			}
			return m.Get(), nil
		case 1:
			if m.Set == nil {
				return nil, fmt.Errorf("%w: %s", ErrNotAssignable, name)
			}
			m.Set(args[0])
			return nil, nil
		default:
			return nil, fmt.Errorf("%w: %s", ErrNotCallable, name)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoMember, name)
	}
}

// GetMember reads the member under name: an accessor invokes its getter, a
// value member yields the callable itself.
func (o *Object) GetMember(name string) (any, error) {
	d, ok := o.members[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoMember, name)
	}
	switch m := d.(type) {
	case AccessorDescriptor:
		if m.Get == nil {
			return nil, nil
		}
		return m.Get(), nil
	case ValueDescriptor:
		return m.Value, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoMember, name)
	}
}

// SetMember assigns to the member under name through its setter.
func (o *Object) SetMember(name string, value any) error {
	d, ok := o.members[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoMember, name)
	}
	a, ok := d.(AccessorDescriptor)
	if !ok || a.Set == nil {
		return fmt.Errorf("%w: %s", ErrNotAssignable, name)
	}
	a.Set(value)
	return nil
}
