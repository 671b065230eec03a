package contract

import (
	"go/token"
	"strings"
)

// Marker opens every contract directive comment.
const Marker = "//hoare:"

// DebugPrefix marks the build-gated variant of a contract keyword.
const DebugPrefix = "debug_"

// RawEntry is a contract metadata entry as written in a directive comment:
// a name and the raw value expression text after the "=" sign.
type RawEntry struct {
	Name  string
	Value string
	Pos   token.Pos
}

// Debug reports whether the entry uses the debug_-prefixed keyword form.
func (e RawEntry) Debug() bool {
	return strings.HasPrefix(e.Name, DebugPrefix)
}

// ParseComment splits a comment into its metadata name/value pair.
// ok is false when the comment is not a hoare directive at all; such
// comments are simply not this tool's business. A comment that does carry
// the marker is always an entry, possibly a malformed one: shape problems
// are detected later by Extract, which sees the raw name and value.
func ParseComment(text string, pos token.Pos) (entry RawEntry, ok bool) {
	if !strings.HasPrefix(text, Marker) {
		return RawEntry{}, false
	}

	rest := strings.TrimSpace(text[len(Marker):])
	entry.Pos = pos

	idx := strings.IndexByte(rest, '=')
	if idx < 0 {
		// No value at all. Keep whatever the name part is so that the
		// diagnostic can show it.
		entry.Name = strings.TrimSpace(rest)
		return entry, true
	}

	entry.Name = strings.TrimSpace(rest[:idx])
	entry.Value = strings.TrimSpace(rest[idx+1:])
	return entry, true
}

// Resolve determines which contract kind the entry triggers and whether it
// is the debug-gated variant. An unknown keyword is a MalformedContract
// condition.
func Resolve(entry RawEntry) (kind Kind, debug bool, err error) {
	name := entry.Name
	if strings.HasPrefix(name, DebugPrefix) {
		debug = true
		name = name[len(DebugPrefix):]
	}

	for k, keyword := range kindKeywordMap {
		if keyword == name {
			return k, debug, nil
		}
	}

	return KindInvalid, false, unexpectedName(entry)
}
