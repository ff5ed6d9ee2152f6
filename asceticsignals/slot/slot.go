// Package slot names a method of an owner type so that it can be used as a
// listener identity, independently of any instance.
//
// A slot is built from a method expression:
//
//	type Display struct{ text string }
//
//	func (d *Display) OnChanged(value int) { d.text = strconv.Itoa(value) }
//
//	onChanged := slot.Of((*Display).OnChanged)
//
// Two slots built from the same method expression have equal IDs. Slots built
// from different methods, or from same-named methods of different owner types,
// have different IDs.
package slot

import (
	"cmp"
	"fmt"
	"reflect"
	"runtime"

	"github.com/pkg/errors"
)

var ErrNilMethod = errors.New("slot: method is nil")

// ID identifies a method of an owner type. IDs are comparable and may be used
// as map keys.
type ID struct {
	owner reflect.Type
	pc    uintptr
	name  string
}

func (id ID) Owner() reflect.Type {
	return id.owner
}

// Name returns the fully qualified runtime name of the method,
// e.g. "example.com/pkg.(*Display).OnChanged".
func (id ID) Name() string {
	return id.name
}

func (id ID) IsZero() bool {
	return id.owner == nil && id.pc == 0
}

func (id ID) String() string {
	if id.IsZero() {
		return "<zero slot>"
	}
	return id.name
}

// Compare orders IDs by method name, then code pointer, then owner type name.
func (id ID) Compare(other ID) int {
	if c := cmp.Compare(id.name, other.name); c != 0 {
		return c
	}
	if c := cmp.Compare(id.pc, other.pc); c != 0 {
		return c
	}
	return cmp.Compare(typeName(id.owner), typeName(other.owner))
}

func typeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	return t.String()
}

// Slot binds an ID to the method it was derived from.
type Slot[O, E any] struct {
	id     ID
	method func(*O, E)
}

// New builds a slot from a method expression such as (*Display).OnChanged.
//
// Function literals are accepted too, but literals differing only by captured
// variables share a code pointer and therefore an ID.
func New[O, E any](method func(*O, E)) (Slot[O, E], error) {
	owner := reflect.TypeFor[O]()
	if method == nil {
		return Slot[O, E]{}, errors.Wrapf(ErrNilMethod, "owner %v", owner)
	}
	pc := reflect.ValueOf(method).Pointer()
	return Slot[O, E]{
		id: ID{
			owner: owner,
			pc:    pc,
			name:  funcName(pc),
		},
		method: method,
	}, nil
}

// Of is like New but panics if method is nil.
func Of[O, E any](method func(*O, E)) Slot[O, E] {
	s, err := New(method)
	if err != nil {
		panic(err)
	}
	return s
}

func funcName(pc uintptr) string {
	if fn := runtime.FuncForPC(pc); fn != nil {
		return fn.Name()
	}
	return fmt.Sprintf("func@%#x", pc)
}

func (s Slot[O, E]) ID() ID {
	return s.id
}

func (s Slot[O, E]) IsZero() bool {
	return s.method == nil
}

// Bind returns a closure calling the slot's method on obj.
func (s Slot[O, E]) Bind(obj *O) func(E) {
	method := s.method
	return func(event E) {
		method(obj, event)
	}
}
