package contract

import (
	"fmt"
	"go/token"

	"github.com/sirkon/hoare/internal/hoarules"
)

// Condition is implemented by the recoverable error conditions of this
// package. Both carry a rule code and the position of the offending
// directive; the caller recovers by leaving the declaration untouched and
// handing the condition to the diagnostics collaborator.
type Condition interface {
	error
	Rule() hoarules.Rule
	Pos() token.Pos
}

// MalformedContractError reports contract metadata whose name or value does
// not match the expected contract keyword shape.
type MalformedContractError struct {
	code hoarules.Rule
	msg  string
	pos  token.Pos
}

func (e *MalformedContractError) Error() string       { return e.msg }
func (e *MalformedContractError) Rule() hoarules.Rule { return e.code }
func (e *MalformedContractError) Pos() token.Pos      { return e.pos }

// UnsupportedTargetError reports contract metadata attached to a
// declaration shape without a rewritable body.
type UnsupportedTargetError struct {
	code hoarules.Rule
	msg  string
	pos  token.Pos
}

func (e *UnsupportedTargetError) Error() string       { return e.msg }
func (e *UnsupportedTargetError) Rule() hoarules.Rule { return e.code }
func (e *UnsupportedTargetError) Pos() token.Pos      { return e.pos }

// Unsupported builds an UnsupportedTargetError with the canonical
// "{Kind} on <what>" message.
func Unsupported(rule hoarules.Rule, kind Kind, what string, pos token.Pos) *UnsupportedTargetError {
	return &UnsupportedTargetError{
		code: rule,
		msg:  fmt.Sprintf("%s on %s", kind.LongName(), what),
		pos:  pos,
	}
}

func malformed(pos token.Pos, msg string) *MalformedContractError {
	return &MalformedContractError{
		code: hoarules.MalformedContract(),
		msg:  msg,
		pos:  pos,
	}
}

func unexpectedName(entry RawEntry) *MalformedContractError {
	return &MalformedContractError{
		code: hoarules.UnexpectedContractName(),
		msg:  fmt.Sprintf("unexpected name in condition: %s", entry.Name),
		pos:  entry.Pos,
	}
}

func notStringLiteral(pos token.Pos) *MalformedContractError {
	return &MalformedContractError{
		code: hoarules.PredicateNotStringLiteral(),
		msg:  "unexpected kind of predicate for condition",
		pos:  pos,
	}
}
