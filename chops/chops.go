// Package chops provides channel plumbing for handing tree
// traversals to other goroutines: a goroutine-backed adapter
// for iterators, and a non-blocking receive for checking
// what such a goroutine has produced so far.
package chops

// Status represents the result of a non-blocking channel
// operation. It can be Ok, Closed, or Blocked.
type Status int

func (s Status) String() string {
	switch s {
	case Ok:
		return "Ok"
	case Closed:
		return "Closed"
	case Blocked:
		return "Blocked"
	default:
		return "<invalid chops.Status>"
	}
}

const (
	// The channel accepted the receive without blocking.
	Ok Status = iota
	// The channel is closed. Future operations will always
	// return Closed again.
	Closed
	// The channel is not ready. Nothing has been sent
	// yet, or the sender is not waiting on the other end.
	Blocked
)

type Result[T any] struct {
	value  T
	status Status
}

// Get returns the result of the channel operation:
// If the return Status is Ok, the receive succeeded and
// the returned T is the channel element.
// Otherwise the returned T will be the zero value of T.
func (r Result[T]) Get() (T, Status) {
	return r.value, r.status
}

// Match performs an exhaustive match on the Result.
func (r Result[T]) Match(ok func(T), closed, blocked func()) {
	switch r.status {
	case Ok:
		ok(r.value)
	case Closed:
		closed()
	case Blocked:
		blocked()
	default:
		panic("unhandled case in Match")
	}
}

// TryRecv attempts a non-blocking receive from a channel.
func TryRecv[T any](ch <-chan T) Result[T] {
	select {
	case x, ok := <-ch:
		if ok {
			return Result[T]{
				value:  x,
				status: Ok,
			}
		}
		return Result[T]{
			status: Closed,
		}
	default:
		return Result[T]{
			status: Blocked,
		}
	}
}
