// Package rewrite implements the contract injection itself: given a
// declaration and an extracted predicate, it rebuilds the declaration body
// so that the predicate is enforced at entry, exit, or both, while the
// declaration keeps its signature, receiver, and observable behavior.
//
// The hard part is not the assertions, it is control flow. A postcondition
// has to see the function's result on every exit path, including a return
// buried two conditionals deep inside a loop. The body is therefore wrapped
// into an escape region: a labeled single-iteration for statement that is
// unconditionally broken out of. Every return lexically bound to the target
// function is folded into "capture the values into the result slot, then
// break out of the region"; returns of nested function literals belong to
// their own scope and are left alone, as are loop break/continue statements.
// After the region a guard asserts the slot was in fact assigned (reaching
// it unassigned means the fold missed a path, which is a bug here, not a
// contract violation), the slot is unwrapped into plain bindings, the exit
// check runs against them, and the function returns them.
//
// The labeled loop is kept deliberately. Go has no labeled plain blocks
// (break only targets for/switch/select) and goto cannot jump over variable
// declarations, so the loop is the one construct that gives "a scope that
// can be left from anywhere inside" without touching the body's own
// declarations.
//
// Synthesized identifiers are derived from a Sequence value threaded
// through the call chain. Each contract application reserves one number, so
// slot names and region labels never collide across declarations, nested
// rewrites, or stacked contracts within one transformation pass, and the
// pass itself may rewrite independent declarations in parallel.
//
// Deferred functions keep Go semantics: they run when the rebuilt function
// returns, after the exit check. A defer that mutates named results
// therefore escapes the postcondition. Documented limitation.
package rewrite
