// Package hoarules defines the canonical HOA-series rule codes reported by hoare.
//
// Every condition the contract injector can report is identified by a stable
// code, so that violations can be filtered and traced consistently across the
// rewrite pipeline, the lint analyzer, and log output.
//
// # Structure
//
// Rule codes follow the format "HOA<NNN>: <Name>" and are grouped by
// functional area:
//
//	000–009  Contract metadata shape (recoverable, declaration left untouched)
//	010–019  Declaration shape (recoverable, declaration left untouched)
//	020–029  Internal invariants of the synthesized code (fatal at runtime)
//
// Typical output in the reporter:
//
//	HOA000: MalformedContract: unexpected format of condition
//
// Rule identifiers are stable; never renumber existing codes.
package hoarules
