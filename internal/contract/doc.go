// Package contract defines the contract metadata model: the contract kinds,
// the directive comment format, and the predicate extraction rules.
//
// A contract is attached to a declaration with a directive comment of the form
//
//	//hoare:<keyword> = "<predicate>"
//
// where keyword is one of precond, postcond, invariant, or their
// debug_-prefixed variants. The predicate is an ordinary Go boolean
// expression over the declaration's parameters (and receiver). Inside
// postcondition and invariant predicates the token "return" is a reserved
// alias for the function's final value.
//
// The package only validates and extracts; injecting the checks into a
// declaration body is the job of package rewrite.
package contract
