package disposable

type Disposable interface {
	Dispose()
}

type DisposableImp struct {
	callback func()
	disposed bool
}

// NewDisposable returns a Disposable that runs callback on the first Dispose call.
func NewDisposable(callback func()) *DisposableImp {
	return &DisposableImp{callback: callback}
}

func (d *DisposableImp) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	if d.callback != nil {
		d.callback()
	}
}

type CompositeDisposable struct {
	delegates []Disposable
	disposed  bool
}

func NewCompositeDisposable(delegates ...Disposable) *CompositeDisposable {
	return &CompositeDisposable{delegates: delegates}
}

// Add appends d. If the composite is already disposed, d is disposed at once.
func (c *CompositeDisposable) Add(d Disposable) {
	if c.disposed {
		d.Dispose()
		return
	}
	c.delegates = append(c.delegates, d)
}

// Dispose disposes delegates in reverse order of addition.
func (c *CompositeDisposable) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	delegates := c.delegates
	c.delegates = nil
	for i := len(delegates) - 1; i >= 0; i-- {
		delegates[i].Dispose()
	}
}
