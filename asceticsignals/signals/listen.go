package signals

import (
	"cmp"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/krew-solutions/ascetic-signals-go/asceticsignals/disposable"
	"github.com/krew-solutions/ascetic-signals-go/asceticsignals/slot"
)

// ListenerKey identifies one registration: a slot bound to an object.
// Only Listen and Forget build keys.
type ListenerKey struct {
	slot   slot.ID
	object unsafe.Pointer
}

func (k ListenerKey) Slot() slot.ID {
	return k.slot
}

func (k ListenerKey) compare(other ListenerKey) int {
	if c := k.slot.Compare(other.slot); c != 0 {
		return c
	}
	return cmp.Compare(uintptr(k.object), uintptr(other.object))
}

// The key holds obj as a traced pointer, so as long as a key exists (in the
// signal or in a guard) no other object can be allocated at the same address.
// Distinct zero-size objects may share an address and thus a key.
func keyOf[O, E any](obj *O, s slot.Slot[O, E]) ListenerKey {
	return ListenerKey{
		slot:   s.ID(),
		object: unsafe.Pointer(obj),
	}
}

// Listen registers the slot's method, bound to obj, on sig. Registering the
// same (obj, slot) pair again replaces the previous registration.
//
// The returned Disposable forgets the registration. It may be ignored in favour
// of calling Forget with the same arguments.
//
//	type Display struct{ disposables *disposable.CompositeDisposable }
//
//	func (d *Display) OnChanged(value int) { ... }
//
//	func NewDisplay(counter *Counter) *Display {
//		d := &Display{disposables: disposable.NewCompositeDisposable()}
//		d.disposables.Add(signals.Listen(counter.Changed, d, slot.Of((*Display).OnChanged)))
//		return d
//	}
//
//	func (d *Display) Close() { d.disposables.Dispose() }
func Listen[O, E any](sig Signal[E], obj *O, s slot.Slot[O, E]) disposable.Disposable {
	if obj == nil {
		panic(errors.Wrapf(ErrNilObject, "listen %s", s.ID()))
	}
	if s.IsZero() {
		panic(errors.Wrapf(ErrZeroSlot, "listen %T", obj))
	}
	key := keyOf(obj, s)
	sig.addListener(key, Observer[E](s.Bind(obj)))
	return disposable.NewDisposable(func() {
		sig.removeListener(key)
	})
}

// Forget removes the registration made by Listen with the same obj and slot.
// It is a no-op if there is none. A slot derived from a different method
// expression does not match, even if it ends up calling the same method.
func Forget[O, E any](sig Signal[E], obj *O, s slot.Slot[O, E]) {
	if obj == nil || s.IsZero() {
		return
	}
	sig.removeListener(keyOf(obj, s))
}
