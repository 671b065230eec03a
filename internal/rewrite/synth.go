package rewrite

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"

	"github.com/sirkon/hoare/internal/contract"
)

// synthesize assembles the rebuilt body from the extracted predicate, the
// contract kind, and the original body. The layout is fixed:
//
//  1. entry assertion, when the kind has one;
//  2. result slot declarations, "no value yet";
//  3. the escape region: the exit-rewritten body, a unit capture for void
//     functions, and an unconditional exit of the region;
//  4. the unwrap guard and plain result bindings;
//  5. exit assertion against those bindings, when the kind has one;
//  6. a return of the bindings, keeping the body's type intact.
//
// exitPred is the predicate instance with the return-alias already bound;
// for kinds without an exit check it is ignored. synthesize itself cannot
// fail: everything fallible happens before it is called, so a failed
// contract never leaves a partially rewritten declaration behind.
func synthesize(
	names Names,
	fnName string,
	ftype *ast.FuncType,
	body *ast.BlockStmt,
	pred contract.Predicate,
	exitPred ast.Expr,
	kind contract.Kind,
) *ast.BlockStmt {
	res := flattenResults(ftype)

	var stmts []ast.Stmt

	if kind.HasPrecond() {
		label := contract.Label(kind.EntryLabel(), fnName, pred.Text)
		stmts = append(stmts, assertStmt(pred.Expr, label))
	}

	for i, typ := range res.types {
		stmts = append(stmts, varDecl(names.Result(i), typ))
	}
	stmts = append(stmts, varDecl(names.Done(), ast.NewIdent("bool")))

	rewriteExits(body, names, res)

	region := body.List
	if res.void() {
		// No trailing return is required of a void body, falling off the
		// end is the unit exit.
		region = append(region, setCaptured(names))
	}
	region = append(region, leaveRegion(names))

	stmts = append(stmts, &ast.LabeledStmt{
		Label: ast.NewIdent(names.Region()),
		Stmt: &ast.ForStmt{
			Body: &ast.BlockStmt{List: region},
		},
	})

	stmts = append(stmts, unwrapGuard(names, fnName))

	for i := range res.types {
		stmts = append(stmts, &ast.AssignStmt{
			Lhs: []ast.Expr{ast.NewIdent(names.Ret(i))},
			Tok: token.DEFINE,
			Rhs: []ast.Expr{ast.NewIdent(names.Result(i))},
		})
	}

	if kind.HasPostcond() {
		label := contract.Label(kind.ExitLabel(), fnName, pred.Text)
		stmts = append(stmts, assertStmt(exitPred, label))
	}

	if !res.void() {
		rets := make([]ast.Expr, len(res.types))
		for i := range res.types {
			rets[i] = ast.NewIdent(names.Ret(i))
		}
		stmts = append(stmts, &ast.ReturnStmt{Results: rets})
	}

	return &ast.BlockStmt{List: stmts}
}

// assertStmt builds: if !(<pred>) { panic("<label>") }
//
// Plain panic is the platform's assertion mechanism; a contract violation
// is indistinguishable from any other runtime assertion failure.
func assertStmt(pred ast.Expr, label string) ast.Stmt {
	return &ast.IfStmt{
		Cond: &ast.UnaryExpr{Op: token.NOT, X: &ast.ParenExpr{X: pred}},
		Body: &ast.BlockStmt{List: []ast.Stmt{
			panicStmt(label),
		}},
	}
}

// unwrapGuard asserts the result slot was assigned before the region was
// left. Tripping it means the exit rewriting missed a control path; the
// message is worded apart from contract violations on purpose.
func unwrapGuard(names Names, fnName string) ast.Stmt {
	msg := fmt.Sprintf("hoare: internal error: result of %s was never captured", fnName)
	return &ast.IfStmt{
		Cond: &ast.UnaryExpr{Op: token.NOT, X: ast.NewIdent(names.Done())},
		Body: &ast.BlockStmt{List: []ast.Stmt{
			panicStmt(msg),
		}},
	}
}

func panicStmt(msg string) ast.Stmt {
	return &ast.ExprStmt{
		X: &ast.CallExpr{
			Fun:  ast.NewIdent("panic"),
			Args: []ast.Expr{&ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(msg)}},
		},
	}
}

// varDecl builds: var <name> <type>
//
// Result slot declarations reuse the signature's type expressions; the
// printer renders shared nodes just fine and the shadow file is for
// compilation only.
func varDecl(name string, typ ast.Expr) ast.Stmt {
	return &ast.DeclStmt{
		Decl: &ast.GenDecl{
			Tok: token.VAR,
			Specs: []ast.Spec{
				&ast.ValueSpec{
					Names: []*ast.Ident{ast.NewIdent(name)},
					Type:  typ,
				},
			},
		},
	}
}
