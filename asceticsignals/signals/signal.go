package signals

import (
	"log/slog"
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
)

// noCopy makes go vet's copylocks check report copies of a signal.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

type entry[E any] struct {
	key      ListenerKey
	observer Observer[E]
}

// SignalImp keeps its entries sorted by ListenerKey, so observers are notified
// in key order rather than registration order.
//
// SignalImp is not safe for concurrent use.
type SignalImp[E any] struct {
	_            noCopy
	id           ulid.ULID
	logID        string
	logger       *slog.Logger
	panicHandler PanicHandler
	entries      []entry[E]
}

func NewSignal[E any](opts ...Option) *SignalImp[E] {
	o := newOptions(opts)
	return &SignalImp[E]{
		id:           o.id,
		logID:        o.id.String(),
		logger:       o.logger,
		panicHandler: o.panicHandler,
	}
}

func (s *SignalImp[E]) ID() ulid.ULID {
	return s.id
}

func (s *SignalImp[E]) Len() int {
	return len(s.entries)
}

func (s *SignalImp[E]) search(key ListenerKey) (int, bool) {
	return slices.BinarySearchFunc(s.entries, key, func(e entry[E], k ListenerKey) int {
		return e.key.compare(k)
	})
}

func (s *SignalImp[E]) addListener(key ListenerKey, observer Observer[E]) {
	i, found := s.search(key)
	if found {
		s.entries[i].observer = observer
	} else {
		s.entries = slices.Insert(s.entries, i, entry[E]{key: key, observer: observer})
	}
	s.logger.Debug("listener added",
		slog.String("signal", s.logID),
		slog.String("slot", key.slot.String()),
		slog.Bool("replaced", found),
		slog.Int("listeners", len(s.entries)),
	)
}

func (s *SignalImp[E]) removeListener(key ListenerKey) {
	i, found := s.search(key)
	if !found {
		return
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	s.logger.Debug("listener removed",
		slog.String("signal", s.logID),
		slog.String("slot", key.slot.String()),
		slog.Int("listeners", len(s.entries)),
	)
}

// snapshot detaches the dispatch list from later Listen and Forget calls made
// by observers.
func (s *SignalImp[E]) snapshot() []entry[E] {
	return slices.Clone(s.entries)
}

// Notify calls every observer with event. Listeners added or removed by an
// observer take effect from the next Notify.
func (s *SignalImp[E]) Notify(event E) {
	entries := s.snapshot()
	s.logger.Debug("notifying signal",
		slog.String("signal", s.logID),
		slog.Int("listeners", len(entries)),
	)
	for _, e := range entries {
		e.observer(event)
	}
}

// NotifyRecover is like Notify but a panicking observer does not stop the
// dispatch. Every recovered panic is returned, wrapping ErrObserverPanic.
func (s *SignalImp[E]) NotifyRecover(event E) error {
	entries := s.snapshot()
	s.logger.Debug("notifying signal",
		slog.String("signal", s.logID),
		slog.Int("listeners", len(entries)),
		slog.Bool("recover", true),
	)
	var result error
	for _, e := range entries {
		if err := s.call(e, event); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}

func (s *SignalImp[E]) call(e entry[E], event E) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s.logger.Warn("observer panicked",
			slog.String("signal", s.logID),
			slog.String("slot", e.key.slot.String()),
			slog.Any("panic", r),
		)
		if s.panicHandler != nil {
			s.panicHandler(e.key.slot, r)
		}
		err = errors.Wrapf(ErrObserverPanic, "%s: %v", e.key.slot, r)
	}()
	e.observer(event)
	return nil
}
