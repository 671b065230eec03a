package rewrite

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"
)

// results is the flattened result list of the target signature: one entry
// per returned value. Go guarantees result names are all present or all
// absent, so names is either empty strings throughout or fully populated.
type results struct {
	types []ast.Expr
	names []string
}

func flattenResults(ftype *ast.FuncType) results {
	var res results
	if ftype.Results == nil {
		return res
	}

	for _, field := range ftype.Results.List {
		if len(field.Names) == 0 {
			res.types = append(res.types, field.Type)
			res.names = append(res.names, "")
			continue
		}
		for _, name := range field.Names {
			res.types = append(res.types, field.Type)
			res.names = append(res.names, name.Name)
		}
	}

	return res
}

func (r results) void() bool {
	return len(r.types) == 0
}

func (r results) named() bool {
	return len(r.names) > 0 && r.names[0] != ""
}

// rewriteExits folds every return lexically bound to the target function
// into "assign the result slot, then break out of the escape region". The
// fold recurses through conditionals, switches, selects, nested blocks and
// loops, but stops at function literals: their returns target their own
// scope. Loop break/continue statements are untouched, they target their
// own loop, not the function.
func rewriteExits(body *ast.BlockStmt, names Names, res results) {
	astutil.Apply(body, func(c *astutil.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.FuncLit:
			return false
		case *ast.ReturnStmt:
			c.Replace(captureAndBreak(n, names, res))
			return false
		}
		return true
	}, nil)
}

// captureAndBreak turns a return statement into the two-step exit sequence:
// store the returned values into the slot, mark it captured, leave the
// region. A naked return with named results captures from the named result
// variables; a naked return in a void function captures the unit case,
// which is just the flag.
func captureAndBreak(ret *ast.ReturnStmt, names Names, res results) *ast.BlockStmt {
	var list []ast.Stmt

	rhs := ret.Results
	if len(rhs) == 0 && res.named() {
		for _, name := range res.names {
			rhs = append(rhs, ast.NewIdent(name))
		}
	}

	if len(rhs) > 0 {
		lhs := make([]ast.Expr, len(res.types))
		for i := range res.types {
			lhs[i] = ast.NewIdent(names.Result(i))
		}
		list = append(list, &ast.AssignStmt{
			Lhs: lhs,
			Tok: token.ASSIGN,
			Rhs: rhs,
		})
	}

	list = append(list, setCaptured(names), leaveRegion(names))

	return &ast.BlockStmt{List: list}
}

// setCaptured builds: __hoare_done_N = true
func setCaptured(names Names) ast.Stmt {
	return &ast.AssignStmt{
		Lhs: []ast.Expr{ast.NewIdent(names.Done())},
		Tok: token.ASSIGN,
		Rhs: []ast.Expr{ast.NewIdent("true")},
	}
}

// leaveRegion builds: break __hoare_N
func leaveRegion(names Names) ast.Stmt {
	return &ast.BranchStmt{
		Tok:   token.BREAK,
		Label: ast.NewIdent(names.Region()),
	}
}
