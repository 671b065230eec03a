package rewrite

import (
	"fmt"
	"sync/atomic"
)

// Sequence issues unique naming scopes for contract applications. The
// original design kept a process-wide counter under a single-threaded
// assumption; here the counter travels as an explicit value through the
// call chain and is incremented atomically, so independent declarations
// can be rewritten concurrently within one pass.
//
// The zero value is ready to use. One Sequence must serve a whole
// transformation pass: names are unique only against the numbers the same
// Sequence handed out.
type Sequence struct {
	n atomic.Uint64
}

// Next reserves the next naming scope. It is called exactly once per
// contract application, before any synthesized name is emitted.
func (s *Sequence) Next() Names {
	return Names{n: s.n.Add(1)}
}

// Names derives every identifier synthesized for a single contract
// application.
type Names struct {
	n uint64
}

// Region is the label of the escape region wrapping the rewritten body.
func (m Names) Region() string {
	return fmt.Sprintf("__hoare_%d", m.n)
}

// Done names the captured-flag of the result slot: true once any exit path
// has stored the function's result.
func (m Names) Done() string {
	return fmt.Sprintf("__hoare_done_%d", m.n)
}

// Result names the i-th value binding of the result slot.
func (m Names) Result(i int) string {
	return fmt.Sprintf("__hoare_result_%d_%d", m.n, i)
}

// Ret names the i-th unwrapped result binding the exit check and the final
// return statement read from.
func (m Names) Ret(i int) string {
	return fmt.Sprintf("__hoare_ret_%d_%d", m.n, i)
}
