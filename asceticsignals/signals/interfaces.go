package signals

import (
	"github.com/krew-solutions/ascetic-signals-go/asceticsignals/slot"
)

type Observer[E any] func(E)

// Signal is implemented only by this package. Listeners are added and removed
// through Listen and Forget.
type Signal[E any] interface {
	Notify(event E)
	NotifyRecover(event E) error
	Len() int

	addListener(key ListenerKey, observer Observer[E])
	removeListener(key ListenerKey)
}

// PanicHandler receives the slot and recovered value of each observer panic
// caught by NotifyRecover.
type PanicHandler func(id slot.ID, recovered any)
