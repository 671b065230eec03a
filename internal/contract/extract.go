package contract

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
)

// ResultAlias is the reserved token inside postcondition and invariant
// predicate text that refers to the function's final value.
const ResultAlias = "return"

// Predicate is a parsed boolean expression plus its original source text.
// The text is retained for building assertion labels and for binding the
// return-alias at exit. Expr is the entry instance; it is nil for
// postconditions, which assert nothing at entry and whose text may contain
// the alias, which is not parseable as an identifier.
type Predicate struct {
	Text string
	Expr ast.Expr
}

// Extract validates a metadata entry against the expected contract keyword
// and returns its predicate. The entry name must equal the keyword or its
// debug_-prefixed form; the value must be a string literal holding a
// parseable expression. Any mismatch is a MalformedContract condition and
// the caller must leave the annotated declaration untouched.
func Extract(entry RawEntry, want Kind) (Predicate, error) {
	keyword := want.Keyword()
	if entry.Name != keyword && entry.Name != DebugPrefix+keyword {
		return Predicate{}, unexpectedName(entry)
	}

	if entry.Value == "" {
		return Predicate{}, malformed(entry.Pos, "unexpected format of condition")
	}

	lit, err := parser.ParseExpr(entry.Value)
	if err != nil {
		return Predicate{}, notStringLiteral(entry.Pos)
	}
	basic, ok := lit.(*ast.BasicLit)
	if !ok || basic.Kind != token.STRING {
		return Predicate{}, notStringLiteral(entry.Pos)
	}

	text, err := strconv.Unquote(basic.Value)
	if err != nil {
		return Predicate{}, notStringLiteral(entry.Pos)
	}

	pred := Predicate{Text: text}

	if want.HasPrecond() {
		pred.Expr, err = parser.ParseExpr(text)
		if err != nil {
			return Predicate{}, malformed(entry.Pos, fmt.Sprintf("condition predicate does not parse: %v", err))
		}
		return pred, nil
	}

	// A postcondition is only ever asserted at exit, with the return-alias
	// bound. The raw text may contain the alias and cannot be parsed as
	// written; validate against a placeholder binding instead.
	if _, err := pred.ExitInstance("__hoare_probe"); err != nil {
		return Predicate{}, malformed(entry.Pos, fmt.Sprintf("condition predicate does not parse: %v", err))
	}

	return pred, nil
}

// ExitInstance parses the predicate once more with the return-alias bound
// to the given result name. The substitution is a blind substring
// replacement per the reserved-alias convention; predicate text where
// "return" occurs as part of a longer identifier is corrupted by it.
// Known limitation, kept as is.
func (p Predicate) ExitInstance(resultName string) (ast.Expr, error) {
	text := strings.ReplaceAll(p.Text, ResultAlias, resultName)

	expr, err := parser.ParseExpr(text)
	if err != nil {
		return nil, fmt.Errorf("condition predicate does not parse with the return-alias bound: %w", err)
	}

	return expr, nil
}

// Label builds the user-visible assertion failure message:
//
//	{Precondition|Postcondition|Invariant entering|Invariant leaving} of <fn> (<predicate>)
//
// Embedded double quotes in the predicate text are escaped so that the
// message survives being embedded into a string literal verbatim.
func Label(phase, fnName, predText string) string {
	return fmt.Sprintf("%s of %s (%s)", phase, fnName, strings.ReplaceAll(predText, `"`, `\"`))
}
