// Package report collects diagnostics produced while contracts are
// extracted and injected. The engine keeps going after a bad contract
// (the declaration stays untouched), so diagnostics accumulate here and
// are presented together once the pass is done.
package report
