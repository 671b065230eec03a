// Package engine drives a transformation pass over a project tree: it
// scans the Go sources under a root, applies contract directives to the
// declarations carrying them, and writes the rewritten files as shadow
// copies under a cache directory together with an overlay.json suitable
// for `go build -overlay`. Original sources are never modified.
//
// Bad contracts do not stop the pass. The offending declaration is left
// as written and a diagnostic is accumulated in the reporter; the overlay
// only ever maps files whose every surviving directive was injected
// cleanly or skipped by the debug gate.
package engine
