package contract

import (
	"encoding"
	"fmt"
)

// Kind describes varieties of contracts enforced at runtime.
type Kind int

const (
	KindInvalid Kind = iota

	// KindPrecond checks the predicate before the original body runs.
	KindPrecond

	// KindPostcond checks the predicate after the function's result is
	// captured, right before it is handed to the caller.
	KindPostcond

	// KindInvariant checks the predicate both entering and leaving,
	// with its own pair of labels.
	KindInvariant
)

var kindKeywordMap = map[Kind]string{
	KindPrecond:   "precond",
	KindPostcond:  "postcond",
	KindInvariant: "invariant",
}

func (k Kind) String() string {
	v, ok := kindKeywordMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", int(k))
	}

	return v
}

var _ encoding.TextUnmarshaler = (*Kind)(nil)

// UnmarshalText for setting values with configs, CLI, etc.
func (k *Kind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for kind, v := range kindKeywordMap {
		if v == text {
			*k = kind
			return nil
		}
	}

	return fmt.Errorf("unknown contract kind %q", text)
}

// Keyword returns the directive keyword that triggers this kind.
func (k Kind) Keyword() string {
	return k.String()
}

// LongName is the capitalized kind name used in diagnostics.
func (k Kind) LongName() string {
	switch k {
	case KindPrecond:
		return "Precondition"
	case KindPostcond:
		return "Postcondition"
	case KindInvariant:
		return "Invariant"
	default:
		return fmt.Sprintf("invalid(%d)", int(k))
	}
}

// HasPrecond reports whether the kind checks the predicate at entry.
func (k Kind) HasPrecond() bool {
	return k == KindPrecond || k == KindInvariant
}

// HasPostcond reports whether the kind checks the predicate at exit.
func (k Kind) HasPostcond() bool {
	return k == KindPostcond || k == KindInvariant
}

// ChecksReturn reports whether the return-alias is bound for this kind's
// exit check.
func (k Kind) ChecksReturn() bool {
	return k.HasPostcond()
}

// EntryLabel is the assertion label phase for the entry check.
// Calling it for a kind without an entry check is a programming error.
func (k Kind) EntryLabel() string {
	switch k {
	case KindPrecond:
		return "Precondition"
	case KindInvariant:
		return "Invariant entering"
	default:
		panic(fmt.Sprintf("no entry label for contract kind %s", k))
	}
}

// ExitLabel is the assertion label phase for the exit check.
// Calling it for a kind without an exit check is a programming error.
func (k Kind) ExitLabel() string {
	switch k {
	case KindPostcond:
		return "Postcondition"
	case KindInvariant:
		return "Invariant leaving"
	default:
		panic(fmt.Sprintf("no exit label for contract kind %s", k))
	}
}
