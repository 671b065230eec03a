package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sirkon/hoare/internal/contract"
	"github.com/sirkon/hoare/internal/report"
	"github.com/sirkon/hoare/internal/rewrite"
)

// Overlay is the go build -overlay JSON format.
type Overlay struct {
	Replace map[string]string `json:"Replace"`
}

// Engine runs contract injection over a project tree.
type Engine struct {
	root    string
	cfg     Config
	rep     *report.Reporter
	log     *logrus.Logger
	seq     rewrite.Sequence
	overlay Overlay
}

// New creates an Engine rooted at the given directory. The reporter
// accumulates diagnostics across the whole pass.
func New(root string, cfg Config, rep *report.Reporter, log *logrus.Logger) *Engine {
	return &Engine{
		root:    root,
		cfg:     cfg,
		rep:     rep,
		log:     log,
		overlay: Overlay{Replace: map[string]string{}},
	}
}

// Run executes the full pipeline: scan, inject, write shadow files, write
// the overlay.
func (e *Engine) Run() error {
	if err := os.MkdirAll(e.cacheDir(), 0o755); err != nil {
		return errors.Wrap(err, "create cache dir")
	}

	if err := e.walk(e.rewriteFile); err != nil {
		return err
	}

	return e.writeOverlay()
}

// Check runs the validation half of the pipeline: directives are parsed,
// predicates extracted, and targets classified, but nothing is written.
// Problems land in the reporter.
func (e *Engine) Check() error {
	return e.walk(e.checkFile)
}

// OverlayPath returns where Run puts overlay.json.
func (e *Engine) OverlayPath() string {
	return filepath.Join(e.cacheDir(), "overlay.json")
}

func (e *Engine) walk(process func(path string) error) error {
	cacheDir := e.cacheDir()
	return filepath.Walk(e.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path == e.root {
				return nil
			}
			if path == cacheDir || e.skipDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		return process(path)
	})
}

func (e *Engine) skipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, skip := range e.cfg.Skip {
		if name == skip {
			return true
		}
	}
	return false
}

func (e *Engine) cacheDir() string {
	if filepath.IsAbs(e.cfg.CacheDir) {
		return e.cfg.CacheDir
	}
	return filepath.Join(e.root, e.cfg.CacheDir)
}

// application is a resolved directive bound to the declaration it
// annotates.
type application struct {
	node  ast.Node
	entry contract.RawEntry
	kind  contract.Kind
}

// collect gathers the contract applications of a file. Directives live in
// declaration doc comments; stacked directives on one declaration are kept
// in source order and each wraps the body produced by the previous one.
// Unresolvable directive names are reported right here, the rest of the
// pipeline never sees them.
func (e *Engine) collect(f *ast.File, fset *token.FileSet) []application {
	extract := e.rep.Phase(report.PhaseExtract)

	var apps []application
	fromDoc := func(node ast.Node, doc *ast.CommentGroup) {
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
				reportCondition(extract, err, fset)
				continue
			}
			apps = append(apps, application{node: node, entry: entry, kind: kind})
		}
	}

	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			fromDoc(d, d.Doc)
		case *ast.GenDecl:
			fromDoc(d, d.Doc)
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				iface, ok := ts.Type.(*ast.InterfaceType)
				if !ok {
					continue
				}
				for _, m := range iface.Methods.List {
					fromDoc(m, m.Doc)
				}
			}
		}
	}

	return apps
}

func (e *Engine) rewriteFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "resolve %s", path)
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, abs, nil, parser.ParseComments)
	if err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}

	apps := e.collect(f, fset)
	if len(apps) == 0 {
		return nil
	}

	rewritePhase := e.rep.Phase(report.PhaseRewrite)
	var injected int
	for _, app := range apps {
		ok, err := rewrite.Apply(&e.seq, app.node, app.entry, app.kind, e.cfg.Debug)
		if err != nil {
			if !reportCondition(rewritePhase, err, fset) {
				return errors.Wrapf(err, "inject contract in %s", path)
			}
			continue
		}
		if ok {
			injected++
		}
	}
	if injected == 0 {
		return nil
	}

	// The printer would displace the remaining comments into the
	// synthesized code. The shadow file is for compilation only.
	f.Comments = nil

	var buf strings.Builder
	cfg := printer.Config{Mode: printer.UseSpaces | printer.TabIndent, Tabwidth: 8}
	if err := cfg.Fprint(&buf, fset, f); err != nil {
		return errors.Wrapf(err, "print shadow for %s", path)
	}

	content := buf.String()
	hash := sha256.Sum256([]byte(content))
	base := strings.TrimSuffix(filepath.Base(path), ".go")
	shadow := filepath.Join(e.cacheDir(), fmt.Sprintf("%s_%s.go", base, hex.EncodeToString(hash[:])[:12]))

	if err := os.WriteFile(shadow, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "write shadow %s", shadow)
	}

	e.overlay.Replace[abs] = shadow
	e.log.WithFields(logrus.Fields{
		"file":      path,
		"contracts": injected,
	}).Info("contracts injected")
	return nil
}

func (e *Engine) checkFile(path string) error {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	if err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}

	extract := e.rep.Phase(report.PhaseExtract)
	rewritePhase := e.rep.Phase(report.PhaseRewrite)
	for _, app := range e.collect(f, fset) {
		if _, err := contract.Extract(app.entry, app.kind); err != nil {
			reportCondition(extract, err, fset)
			continue
		}
		if err := rewrite.Classify(app.node, app.kind, app.entry.Pos); err != nil {
			reportCondition(rewritePhase, err, fset)
		}
	}

	return nil
}

func (e *Engine) writeOverlay() error {
	if len(e.overlay.Replace) == 0 {
		e.log.Info("no contracts found, overlay not written")
		return nil
	}

	data, err := json.MarshalIndent(e.overlay, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal overlay")
	}

	path := e.OverlayPath()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}

	e.log.WithFields(logrus.Fields{
		"path":  path,
		"files": len(e.overlay.Replace),
	}).Info("overlay written")
	return nil
}

// reportCondition routes a recoverable contract condition into the
// reporter. Anything else is not a condition and must abort the pass.
func reportCondition(rep *report.PhaseReporter, err error, fset *token.FileSet) bool {
	var cond contract.Condition
	if !errors.As(err, &cond) {
		return false
	}
	rep.Report(cond.Rule(), cond.Error(), fset.Position(cond.Pos()))
	return true
}
