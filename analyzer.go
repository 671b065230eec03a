package main

import (
	"go/ast"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/hoare/internal/contract"
	"github.com/sirkon/hoare/internal/rewrite"
)

const doc = `hoare validates contract directives: keyword shape, predicate form, and target declarations`

// Analyzer is the lint entry point. It runs the validation half of the
// pipeline under go vet without rewriting anything.
var Analyzer = &analysis.Analyzer{
	Name:     "hoare",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.GenDecl)(nil),
	}

	pector.Preorder(nodeFilter, func(node ast.Node) {
		switch n := node.(type) {
		case *ast.FuncDecl:
			checkDirectives(pass, n, n.Doc)
		case *ast.GenDecl:
			checkDirectives(pass, n, n.Doc)
			for _, spec := range n.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				iface, ok := ts.Type.(*ast.InterfaceType)
				if !ok {
					continue
				}
				for _, m := range iface.Methods.List {
					checkDirectives(pass, m, m.Doc)
				}
			}
		}
	})

	return nil, nil
}

// checkDirectives validates every contract directive in a declaration's doc
// comment: the keyword must resolve, the predicate must extract, and the
// declaration must be an injectable shape. Diagnostics land on the
// declaration the directive annotates.
func checkDirectives(pass *analysis.Pass, node ast.Node, doc *ast.CommentGroup) {
	if doc == nil {
		return
	}

	for _, c := range doc.List {
		entry, ok := contract.ParseComment(c.Text, c.Pos())
		if !ok {
			continue
		}

		kind, _, err := contract.Resolve(entry)
		if err != nil {
			reportCondition(pass, node, err)
			continue
		}

		if _, err := contract.Extract(entry, kind); err != nil {
			reportCondition(pass, node, err)
			continue
		}

		if err := rewrite.Classify(node, kind, entry.Pos); err != nil {
			reportCondition(pass, node, err)
		}
	}
}

func reportCondition(pass *analysis.Pass, node ast.Node, err error) {
	var cond contract.Condition
	if !errors.As(err, &cond) {
		return
	}
	pass.Reportf(node.Pos(), "%s: %s", cond.Rule(), cond.Error())
}
