package rewrite

import (
	"go/ast"
	"go/token"

	"github.com/sirkon/hoare/internal/contract"
	"github.com/sirkon/hoare/internal/hoarules"
)

// target is a classified declaration shape the injector can work with. The
// shapes differ only in how the rebuilt body is installed back; the
// rewriting itself is shared.
type target struct {
	name    string
	ftype   *ast.FuncType
	body    *ast.BlockStmt
	install func(*ast.BlockStmt)
}

// Apply injects the contract described by entry into node, rebuilding the
// declaration body in place. The whole operation is a no-op on error:
// classification and predicate extraction run before any mutation, so a
// failed contract never leaves a partial rewrite behind and the declaration
// stays untouched.
//
// Debug-prefixed entries consult debugAssertions, the externally supplied
// build-mode signal, and pass the declaration through unchanged when it is
// false. injected reports whether the body was in fact rebuilt; extraction
// errors surface even for gated-off entries.
func Apply(seq *Sequence, node ast.Node, entry contract.RawEntry, kind contract.Kind, debugAssertions bool) (injected bool, err error) {
	tgt, err := classify(node, kind, entry.Pos)
	if err != nil {
		return false, err
	}

	pred, err := contract.Extract(entry, kind)
	if err != nil {
		return false, err
	}

	if entry.Debug() && !debugAssertions {
		return false, nil
	}

	names := seq.Next()

	exitPred := pred.Expr
	if kind.ChecksReturn() {
		exitPred, err = pred.ExitInstance(names.Ret(0))
		if err != nil {
			return false, err
		}
	}

	tgt.install(synthesize(names, tgt.name, tgt.ftype, tgt.body, pred, exitPred, kind))
	return true, nil
}

// Classify reports whether node is a declaration shape contracts can be
// injected into. It is the validation half of Apply, used by the lint
// analyzer which must not rewrite anything.
func Classify(node ast.Node, kind contract.Kind, pos token.Pos) error {
	_, err := classify(node, kind, pos)
	return err
}

// classify performs the case analysis over the closed shape set: free
// function, method, function-valued var declaration. Everything else is an
// UnsupportedTarget condition.
func classify(node ast.Node, kind contract.Kind, pos token.Pos) (target, error) {
	switch d := node.(type) {
	case *ast.FuncDecl:
		// Free functions and methods differ only in the receiver, which
		// stays where it is.
		if d.Body == nil {
			return target{}, contract.Unsupported(hoarules.BodylessDeclaration(), kind, "bodyless function declaration", pos)
		}
		return target{
			name:    d.Name.Name,
			ftype:   d.Type,
			body:    d.Body,
			install: func(b *ast.BlockStmt) { d.Body = b },
		}, nil

	case *ast.GenDecl:
		if tgt, ok := funcValuedVar(d); ok {
			return tgt, nil
		}
		return target{}, contract.Unsupported(hoarules.UnsupportedTarget(), kind, "non-function item", pos)

	case *ast.Field:
		if _, ok := d.Type.(*ast.FuncType); ok {
			return target{}, contract.Unsupported(hoarules.BodylessDeclaration(), kind, "interface method without body", pos)
		}
		return target{}, contract.Unsupported(hoarules.UnsupportedTarget(), kind, "non-function item", pos)

	default:
		return target{}, contract.Unsupported(hoarules.UnsupportedTarget(), kind, "non-function item", pos)
	}
}

// funcValuedVar matches `var Name = func(...) ... { ... }`, the one
// value-declaration shape that carries a rewritable body.
func funcValuedVar(d *ast.GenDecl) (target, bool) {
	if d.Tok != token.VAR || len(d.Specs) != 1 {
		return target{}, false
	}

	vs, ok := d.Specs[0].(*ast.ValueSpec)
	if !ok || len(vs.Names) != 1 || len(vs.Values) != 1 {
		return target{}, false
	}

	lit, ok := vs.Values[0].(*ast.FuncLit)
	if !ok {
		return target{}, false
	}

	return target{
		name:    vs.Names[0].Name,
		ftype:   lit.Type,
		body:    lit.Body,
		install: func(b *ast.BlockStmt) { lit.Body = b },
	}, true
}
