package signals

import "github.com/pkg/errors"

var (
	ErrNilObject     = errors.New("signals: listener object is nil")
	ErrZeroSlot      = errors.New("signals: slot was not built with slot.New or slot.Of")
	ErrObserverPanic = errors.New("signals: observer panicked")
)
