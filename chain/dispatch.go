package chain

// Dispatcher is the execution context completions are delivered on. A client
// typically supplies one that schedules onto its callback goroutine or task
// queue; tests use Sync to observe delivery inline.
type Dispatcher interface {
	Dispatch(fn func())
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(fn func())

// Dispatch implements Dispatcher.
func (f DispatcherFunc) Dispatch(fn func()) { f(fn) }

// Sync invokes the callback inline on the delivering goroutine. It is the
// default when Chain.Dispatcher is nil.
var Sync Dispatcher = DispatcherFunc(func(fn func()) { fn() })

// Async invokes the callback on a fresh goroutine, returning to the
// delivering interceptor immediately.
var Async Dispatcher = DispatcherFunc(func(fn func()) { go fn() })
