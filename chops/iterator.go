package chops

import (
	"context"
)

// Iterator describes some iterator over a data structure.
// It must not require closing at the end of iteration,
// as CoIterate may abandon it at any time.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns a channel on which the items from the iterator
// will be sent. It is closed when the iterator is exhausted or
// the iteration is stopped.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. This must not be called more than once.
// If the Items channel is closed, this doesn't need to be called.
//
// If you need to stop from multiple goroutines, use a sync.Once:
//
//	var once sync.Once
//	co := CoIterate[T](ctx, ...)
//	for i := 0; i < 10; i++ {
//		go func() {
//			for item := range co.Items() {
//				if item meets some stopping condition {
//					once.Do(co.Stop)
//				}
//			}
//		}()
//	}
func (c CoIterator[T]) Stop() {
	close(c.stop)
}

// CoIterate starts coroutine-style iteration.
// The usage is as follows:
//
//	co := CoIterate[T](ctx, someTree.Iterator())
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// If you might pass a typed nil pointer into CoIterate,
// make sure your underlying type's methods can handle
// being called with a nil receiver.
//
// Note: CoIterate starts a goroutine, which exits when Stop() is
// called, ctx is done, or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
// One item that was already being offered when Stop was called may
// still be received after it.
// The iterator is only ever advanced by that goroutine.
func CoIterate[T any](ctx context.Context, iterator Iterator[T]) CoIterator[T] {
	out := make(chan T)
	stop := make(chan struct{})
	co := CoIterator[T]{
		items: out,
		stop:  stop,
	}

	if iterator == nil {
		close(out)
		return co
	}

	go func(out chan<- T, stop <-chan struct{}, i Iterator[T]) {
		defer close(out)
		for i.Next() {
			select {
			case <-stop:
				return
			case <-ctx.Done():
				return
			default:
			}
			select {
			case out <- i.Item():
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}(out, stop, iterator)

	return co
}
