// internal/pkg/lifecycle/guard.go
package lifecycle

import (
	"fmt"
	"sync/atomic"

	"github.com/pkg/errors"
)

var (
	// ErrNotInitialized is reported when a store is used before its constructor ran
	ErrNotInitialized = errors.New("store is not initialized")
	// ErrClosed is reported when a store is used after Close
	ErrClosed = errors.New("store is closed")
)

const (
	stateUninitialized int32 = iota
	stateOpen
	stateClosed
)

// AccessError is the panic value raised when a store is accessed outside its lifetime
type AccessError struct {
	Store string
	Op    string
	err   error
}

// Error implements error
func (e *AccessError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Store, e.Op, e.err)
}

// Unwrap exposes the underlying sentinel, so errors.Is works against it
func (e *AccessError) Unwrap() error {
	return e.err
}

// StackTrace returns where the invalid access happened
func (e *AccessError) StackTrace() errors.StackTrace {
	if st, ok := e.err.(interface{ StackTrace() errors.StackTrace }); ok {
		return st.StackTrace()
	}
	return nil
}

// Fail panics with an AccessError for the given store and operation
func Fail(store, op string, cause error) {
	panic(&AccessError{
		Store: store,
		Op:    op,
		err:   errors.WithStack(cause),
	})
}

// Guard tracks whether a store's backing state is usable.
// The zero value is uninitialized.
type Guard struct {
	state atomic.Int32
}

// Open marks the guard as usable
func (g *Guard) Open() {
	g.state.Store(stateOpen)
}

// Close marks the guard as discarded. Closing twice is allowed.
func (g *Guard) Close() {
	g.state.Store(stateClosed)
}

// IsOpen reports whether the guarded store may be used
func (g *Guard) IsOpen() bool {
	return g.state.Load() == stateOpen
}

// Check panics with an AccessError unless the guard is open
func (g *Guard) Check(store, op string) {
	switch g.state.Load() {
	case stateOpen:
		return
	case stateClosed:
		Fail(store, op, ErrClosed)
	default:
		Fail(store, op, ErrNotInitialized)
	}
}
