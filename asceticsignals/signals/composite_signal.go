package signals

import (
	"github.com/hashicorp/go-multierror"
)

// CompositeSignalImp lets one Listen or Forget call cover several signals.
type CompositeSignalImp[E any] struct {
	delegates []Signal[E]
}

func NewCompositeSignal[E any](delegates ...Signal[E]) *CompositeSignalImp[E] {
	return &CompositeSignalImp[E]{delegates: delegates}
}

func (s *CompositeSignalImp[E]) addListener(key ListenerKey, observer Observer[E]) {
	for _, delegate := range s.delegates {
		delegate.addListener(key, observer)
	}
}

func (s *CompositeSignalImp[E]) removeListener(key ListenerKey) {
	for _, delegate := range s.delegates {
		delegate.removeListener(key)
	}
}

func (s *CompositeSignalImp[E]) Notify(event E) {
	for _, delegate := range s.delegates {
		delegate.Notify(event)
	}
}

func (s *CompositeSignalImp[E]) NotifyRecover(event E) error {
	var result error
	for _, delegate := range s.delegates {
		if err := delegate.NotifyRecover(event); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}

// Len sums the delegates' listener counts.
func (s *CompositeSignalImp[E]) Len() int {
	n := 0
	for _, delegate := range s.delegates {
		n += delegate.Len()
	}
	return n
}
