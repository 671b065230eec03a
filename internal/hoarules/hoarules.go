package hoarules

import "fmt"

// Rule represents a hoare rule code (HOA-series).
type Rule int

const (
	ruleInvalid Rule = iota

	HOA000MalformedContract
	HOA001PredicateNotStringLiteral
	HOA002UnexpectedContractName
	HOA010UnsupportedTarget
	HOA011BodylessDeclaration
	HOA020ResultNeverCaptured
)

// String returns the canonical code and short name of the rule.
// Example: "HOA000: MalformedContract"
func (r Rule) String() string {
	switch r {
	case HOA000MalformedContract:
		return "HOA000: MalformedContract"
	case HOA001PredicateNotStringLiteral:
		return "HOA001: PredicateNotStringLiteral"
	case HOA002UnexpectedContractName:
		return "HOA002: UnexpectedContractName"
	case HOA010UnsupportedTarget:
		return "HOA010: UnsupportedTarget"
	case HOA011BodylessDeclaration:
		return "HOA011: BodylessDeclaration"
	case HOA020ResultNeverCaptured:
		return "HOA020: ResultNeverCaptured"
	default:
		return fmt.Sprintf("rule-unknown(%d)", r)
	}
}

// Description returns the human-readable explanation of the rule.
func (r Rule) Description() string {
	switch r {
	case HOA000MalformedContract:
		return "Contract metadata must have the form <keyword> = \"<predicate>\"."
	case HOA001PredicateNotStringLiteral:
		return "Contract predicate must be a string literal expression."
	case HOA002UnexpectedContractName:
		return "Contract metadata name must match the contract keyword or its debug_ form."
	case HOA010UnsupportedTarget:
		return "Contracts apply only to function-like declarations with a body."
	case HOA011BodylessDeclaration:
		return "Contracts cannot be injected into a declaration without a body."
	case HOA020ResultNeverCaptured:
		return "The synthesized body finished without capturing a result; this is a rewriter bug, not a contract violation."
	default:
		return fmt.Sprintf("unknown-rule(%d)", r)
	}
}

// Canonical constructors for readability and stable call sites.

func MalformedContract() Rule          { return HOA000MalformedContract }
func PredicateNotStringLiteral() Rule  { return HOA001PredicateNotStringLiteral }
func UnexpectedContractName() Rule     { return HOA002UnexpectedContractName }
func UnsupportedTarget() Rule          { return HOA010UnsupportedTarget }
func BodylessDeclaration() Rule        { return HOA011BodylessDeclaration }
func ResultNeverCaptured() Rule        { return HOA020ResultNeverCaptured }
