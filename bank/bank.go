// Package bank resolves layout names to layouts.
//
// A Bank is filled once at construction and never changes afterwards, so it
// can be read from any goroutine without locking.
package bank

import (
	"github.com/grovetools/stroke/errors"
	"github.com/grovetools/stroke/layout"
	"github.com/grovetools/stroke/layouts"
)

// Bank is the immutable registry of layouts.
type Bank struct {
	byName  map[string]*layout.Layout
	order   []*layout.Layout
	primary []*layout.Layout
	def     *layout.Layout
}

// New registers ls in order and selects defaultName as the startup layout.
// It fails when a name repeats, when the default is missing, or when any
// layout stroke targets a layout that is not registered.
func New(defaultName string, ls ...*layout.Layout) (*Bank, error) {
	b, err := NewUnchecked(defaultName, ls...)
	if err != nil {
		return nil, err
	}

	for _, l := range b.order {
		for _, target := range l.Targets() {
			if layout.IsReservedTarget(target) {
				if len(b.primary) == 0 {
					return nil, errors.UnknownLayout(target).WithDetail("referencedBy", l.Name())
				}
				continue
			}
			if _, ok := b.byName[target]; !ok {
				return nil, errors.UnknownLayout(target).WithDetail("referencedBy", l.Name())
			}
		}
	}

	return b, nil
}

// NewUnchecked is New without the layout target checks. Layouts under
// development can be loaded this way; a stroke naming a missing layout then
// fails with UNKNOWN_LAYOUT when it is dispatched.
func NewUnchecked(defaultName string, ls ...*layout.Layout) (*Bank, error) {
	b := &Bank{byName: make(map[string]*layout.Layout, len(ls))}
	for _, l := range ls {
		if _, exists := b.byName[l.Name()]; exists {
			return nil, errors.DuplicateLayout(l.Name())
		}
		b.byName[l.Name()] = l
		b.order = append(b.order, l)
		if l.Category() == layout.Primary {
			b.primary = append(b.primary, l)
		}
	}

	def, ok := b.byName[defaultName]
	if !ok {
		return nil, errors.UnknownLayout(defaultName).WithDetail("role", "default")
	}
	b.def = def

	return b, nil
}

// Default builds the bank of compiled-in layouts.
func Default() (*Bank, error) {
	return New(layouts.Default, layouts.All()...)
}

// MustDefault is Default for program start-up; the compiled-in layouts are
// always consistent, so a failure is a build defect.
func MustDefault() *Bank {
	b, err := Default()
	if err != nil {
		panic(err)
	}
	return b
}

// Layout returns the layout registered under name.
func (b *Bank) Layout(name string) (*layout.Layout, error) {
	l, ok := b.byName[name]
	if !ok {
		return nil, errors.UnknownLayout(name)
	}
	return l, nil
}

// Has reports whether name is registered.
func (b *Bank) Has(name string) bool {
	_, ok := b.byName[name]
	return ok
}

// Default returns the startup layout.
func (b *Bank) Default() *layout.Layout {
	return b.def
}

// Layouts returns every layout in registration order.
func (b *Bank) Layouts() []*layout.Layout {
	return append([]*layout.Layout(nil), b.order...)
}

// Primary returns the primary layouts in registration order.
func (b *Bank) Primary() []*layout.Layout {
	return append([]*layout.Layout(nil), b.primary...)
}

// StepPrimary returns the primary layout step places after from, wrapping
// around. A from that is not primary steps from the first primary layout.
func (b *Bank) StepPrimary(from *layout.Layout, step int) *layout.Layout {
	n := len(b.primary)
	if n == 0 {
		return nil
	}
	idx := 0
	for i, l := range b.primary {
		if l == from {
			idx = i
			break
		}
	}
	return b.primary[((idx+step)%n+n)%n]
}
