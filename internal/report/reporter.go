package report

import (
	"fmt"
	"go/token"
	"sync"

	"github.com/sirkon/hoare/internal/hoarules"
)

// Reporter accumulates diagnostics from a transformation pass.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report represents a single diagnostic entry.
type Report struct {
	Phase    Phase
	RuleCode hoarules.Rule
	Pos      token.Position
	Message  string
}

// Phase marks the pass stage where a report was generated.
type Phase int

const (
	phaseInvalid Phase = iota
	PhaseExtract       // directive parsing and predicate extraction
	PhaseRewrite       // body synthesis and exit rewriting
	PhaseEmit          // shadow file and overlay generation
)

func (p Phase) String() string {
	switch p {
	case PhaseExtract:
		return "extract"
	case PhaseRewrite:
		return "rewrite"
	case PhaseEmit:
		return "emit"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

// PhaseReporter binds a Reporter to a fixed phase.
// It lets a pass stage record rule violations without naming the phase
// on every report.
type PhaseReporter struct {
	parent *Reporter
	phase  Phase
}

// Phase returns a pointer to a phase-bound reporter that automatically
// sets the given phase for all reports produced through it.
func (r *Reporter) Phase(p Phase) *PhaseReporter {
	return &PhaseReporter{parent: r, phase: p}
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Report records a new rule violation under the bound phase.
// An empty message falls back to the rule's description.
func (rp *PhaseReporter) Report(rule hoarules.Rule, message string, pos token.Position) {
	if message == "" {
		message = rule.Description()
	}
	rp.parent.Report(Report{
		Phase:    rp.phase,
		RuleCode: rule,
		Message:  message,
		Pos:      pos,
	})
}

// Reports returns a snapshot of all collected records.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}
