package object

// Method is the installed form of a synthesized callable member.
type Method func(args ...any) any

// Getter is the installed read half of an accessor member.
type Getter func() any

// Setter is the installed write half of an accessor member.
type Setter func(value any)

// Descriptor is a sealed variant describing one installable member shape.
// Only ValueDescriptor and AccessorDescriptor implement it: a member is
// either a single callable value or a paired get/set accessor, never both.
type Descriptor interface {
	descriptor() // Sealed - only these types implement it

	// IsEnumerable reports whether the member shows up in snapshots.
	IsEnumerable() bool
	// IsConfigurable reports whether the member may be redefined later.
	IsConfigurable() bool
}

// ValueDescriptor installs a single callable value under a name.
type ValueDescriptor struct {
	Value        Method
	Enumerable   bool
	Configurable bool
}

func (ValueDescriptor) descriptor() {}

// IsEnumerable implements Descriptor.
func (d ValueDescriptor) IsEnumerable() bool { return d.Enumerable }

// IsConfigurable implements Descriptor.
func (d ValueDescriptor) IsConfigurable() bool { return d.Configurable }

// AccessorDescriptor installs a paired get/set accessor under a name.
// Reading the member invokes Get; assigning to it invokes Set. There is no
// writability attribute in accessor form.
type AccessorDescriptor struct {
	Get          Getter
	Set          Setter
	Enumerable   bool
	Configurable bool
}

func (AccessorDescriptor) descriptor() {}

// IsEnumerable implements Descriptor.
func (d AccessorDescriptor) IsEnumerable() bool { return d.Enumerable }

// IsConfigurable implements Descriptor.
func (d AccessorDescriptor) IsConfigurable() bool { return d.Configurable }

// MergeAttributes carries prior attributes onto next when a member is being
// redefined over an existing descriptor. The shape of next wins: when next
// is an accessor, any lingering direct-value attribute of prev is dropped
// (accessor form has no writability), and only the enumerable/configurable
// attributes survive the merge.
func MergeAttributes(prev, next Descriptor) Descriptor {
	if prev == nil {
		return next
	}
	switch d := next.(type) {
	case AccessorDescriptor:
		d.Enumerable = d.Enumerable || prev.IsEnumerable()
		d.Configurable = d.Configurable || prev.IsConfigurable()
		return d
	case ValueDescriptor:
		d.Enumerable = d.Enumerable || prev.IsEnumerable()
		d.Configurable = d.Configurable || prev.IsConfigurable()
		return d
	default:
		return next
	}
}
