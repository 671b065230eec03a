package contract

import (
	"go/token"
	"strings"
	"testing"
)

func TestParseComment(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		ok        bool
		wantName  string
		wantValue string
	}{
		{
			name:      "precond",
			text:      `//hoare:precond = "x > 0"`,
			ok:        true,
			wantName:  "precond",
			wantValue: `"x > 0"`,
		},
		{
			name:      "debug postcond",
			text:      `//hoare:debug_postcond = "return != nil"`,
			ok:        true,
			wantName:  "debug_postcond",
			wantValue: `"return != nil"`,
		},
		{
			name:      "spaces around the sign",
			text:      `//hoare:invariant="len(s) >= 0"`,
			ok:        true,
			wantName:  "invariant",
			wantValue: `"len(s) >= 0"`,
		},
		{
			name:     "no value",
			text:     `//hoare:precond`,
			ok:       true,
			wantName: "precond",
		},
		{
			name: "ordinary comment",
			text: `// just a comment`,
		},
		{
			name: "other directive",
			text: `//go:generate stringer`,
		},
		{
			name: "marker requires no space",
			text: `// hoare:precond = "x > 0"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := ParseComment(tt.text, token.Pos(1))
			if ok != tt.ok {
				t.Fatalf("ok: got %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if entry.Name != tt.wantName {
				t.Errorf("name: got %q, want %q", entry.Name, tt.wantName)
			}
			if entry.Value != tt.wantValue {
				t.Errorf("value: got %q, want %q", entry.Value, tt.wantValue)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		entryName string
		kind      Kind
		debug     bool
		wantErr   bool
	}{
		{name: "precond", entryName: "precond", kind: KindPrecond},
		{name: "postcond", entryName: "postcond", kind: KindPostcond},
		{name: "invariant", entryName: "invariant", kind: KindInvariant},
		{name: "debug precond", entryName: "debug_precond", kind: KindPrecond, debug: true},
		{name: "debug postcond", entryName: "debug_postcond", kind: KindPostcond, debug: true},
		{name: "debug invariant", entryName: "debug_invariant", kind: KindInvariant, debug: true},
		{name: "unknown", entryName: "precondition", wantErr: true},
		{name: "double debug prefix", entryName: "debug_debug_precond", wantErr: true},
		{name: "empty", entryName: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, debug, err := Resolve(RawEntry{Name: tt.entryName, Pos: token.Pos(1)})
			if tt.wantErr {
				if err == nil {
					t.Fatal("error expected")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if kind != tt.kind {
				t.Errorf("kind: got %v, want %v", kind, tt.kind)
			}
			if debug != tt.debug {
				t.Errorf("debug: got %v, want %v", debug, tt.debug)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		entry    RawEntry
		want     Kind
		wantText string
		wantErr  string
	}{
		{
			name:     "plain precond",
			entry:    RawEntry{Name: "precond", Value: `"x >= -100"`},
			want:     KindPrecond,
			wantText: "x >= -100",
		},
		{
			name:     "debug name matches",
			entry:    RawEntry{Name: "debug_precond", Value: `"x != 0"`},
			want:     KindPrecond,
			wantText: "x != 0",
		},
		{
			name:     "postcond with return alias",
			entry:    RawEntry{Name: "postcond", Value: `"return * 2 == x"`},
			want:     KindPostcond,
			wantText: "return * 2 == x",
		},
		{
			name:    "name from another contract",
			entry:   RawEntry{Name: "postcond", Value: `"x > 0"`},
			want:    KindPrecond,
			wantErr: "unexpected name in condition: postcond",
		},
		{
			name:    "missing value",
			entry:   RawEntry{Name: "precond"},
			want:    KindPrecond,
			wantErr: "unexpected format of condition",
		},
		{
			name:    "numeric predicate",
			entry:   RawEntry{Name: "precond", Value: "42"},
			want:    KindPrecond,
			wantErr: "unexpected kind of predicate for condition",
		},
		{
			name:    "identifier predicate",
			entry:   RawEntry{Name: "invariant", Value: "someVar"},
			want:    KindInvariant,
			wantErr: "unexpected kind of predicate for condition",
		},
		{
			name:    "predicate text does not parse",
			entry:   RawEntry{Name: "precond", Value: `"x >"`},
			want:    KindPrecond,
			wantErr: "condition predicate does not parse",
		},
		{
			name:    "alias in precond does not parse",
			entry:   RawEntry{Name: "precond", Value: `"return > 0"`},
			want:    KindPrecond,
			wantErr: "condition predicate does not parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := Extract(tt.entry, tt.want)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatal("error expected")
				}
				if got := err.Error(); !strings.Contains(got, tt.wantErr) {
					t.Fatalf("error: got %q, want it to contain %q", got, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if pred.Text != tt.wantText {
				t.Errorf("text: got %q, want %q", pred.Text, tt.wantText)
			}
			if tt.want.HasPrecond() && pred.Expr == nil {
				t.Error("entry instance expected for a kind with an entry check")
			}
		})
	}
}

func TestExitInstance(t *testing.T) {
	pred := Predicate{Text: "return * 2 == x"}
	expr, err := pred.ExitInstance("__hoare_ret_1_0")
	if err != nil {
		t.Fatal(err)
	}
	if expr == nil {
		t.Fatal("expression expected")
	}

	// The substitution is blind: "return" inside a longer identifier is
	// corrupted and the instance no longer parses.
	pred = Predicate{Text: "returnCode == 0"}
	if _, err := pred.ExitInstance("__hoare_ret_2_0"); err == nil {
		t.Fatal("error expected for an identifier containing the alias")
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name  string
		phase string
		fn    string
		pred  string
		want  string
	}{
		{
			name:  "precondition",
			phase: "Precondition",
			fn:    "half",
			pred:  "x >= 0",
			want:  "Precondition of half (x >= 0)",
		},
		{
			name:  "invariant leaving",
			phase: "Invariant leaving",
			fn:    "push",
			pred:  "len(s.items) >= 0",
			want:  "Invariant leaving of push (len(s.items) >= 0)",
		},
		{
			name:  "embedded quotes get escaped",
			phase: "Postcondition",
			fn:    "name",
			pred:  `return != "x"`,
			want:  `Postcondition of name (return != \"x\")`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.phase, tt.fn, tt.pred); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindProperties(t *testing.T) {
	tests := []struct {
		kind        Kind
		keyword     string
		longName    string
		hasPrecond  bool
		hasPostcond bool
		entryLabel  string
		exitLabel   string
	}{
		{
			kind:       KindPrecond,
			keyword:    "precond",
			longName:   "Precondition",
			hasPrecond: true,
			entryLabel: "Precondition",
		},
		{
			kind:        KindPostcond,
			keyword:     "postcond",
			longName:    "Postcondition",
			hasPostcond: true,
			exitLabel:   "Postcondition",
		},
		{
			kind:        KindInvariant,
			keyword:     "invariant",
			longName:    "Invariant",
			hasPrecond:  true,
			hasPostcond: true,
			entryLabel:  "Invariant entering",
			exitLabel:   "Invariant leaving",
		},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			if got := tt.kind.Keyword(); got != tt.keyword {
				t.Errorf("keyword: got %q", got)
			}
			if got := tt.kind.LongName(); got != tt.longName {
				t.Errorf("long name: got %q", got)
			}
			if got := tt.kind.HasPrecond(); got != tt.hasPrecond {
				t.Errorf("has precond: got %v", got)
			}
			if got := tt.kind.HasPostcond(); got != tt.hasPostcond {
				t.Errorf("has postcond: got %v", got)
			}
			if tt.hasPrecond {
				if got := tt.kind.EntryLabel(); got != tt.entryLabel {
					t.Errorf("entry label: got %q", got)
				}
			}
			if tt.hasPostcond {
				if got := tt.kind.ExitLabel(); got != tt.exitLabel {
					t.Errorf("exit label: got %q", got)
				}
				if !tt.kind.ChecksReturn() {
					t.Error("kinds with an exit check bind the return alias")
				}
			}
		})
	}
}
