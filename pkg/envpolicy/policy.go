// pkg/envpolicy/policy.go

// Package envpolicy derives discovery and linkage decisions from the
// process environment. Absent variables are a normal state, never an
// error, so nothing in this package can fail.
package envpolicy

import (
	"os"
	"strings"
)

// LookupFunc reports an environment variable and whether it is present.
type LookupFunc func(key string) (string, bool)

// Policy answers environment-derived questions for one resolution.
type Policy struct {
	lookup LookupFunc
}

// New creates a Policy backed by the real process environment.
func New() *Policy {
	return &Policy{lookup: os.LookupEnv}
}

// NewWithLookup creates a Policy backed by a custom lookup function.
// Tests use this to run against a fixed variable map.
func NewWithLookup(lookup LookupFunc) *Policy {
	if lookup == nil {
		return New()
	}
	return &Policy{lookup: lookup}
}

// Envify derives the environment-variable stem for a library name:
// uppercase with every '-' replaced by '_'. Idempotent.
func Envify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, c := range name {
		if c == '-' {
			b.WriteRune('_')
			continue
		}
		b.WriteRune(asciiUpper(c))
	}
	return b.String()
}

func asciiUpper(c rune) rune {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// CrossCompileAllowed reports whether discovery may run at all. It is
// allowed when HOST and TARGET agree (presence counts: both unset is
// agreement, one set and one unset is not) or when the explicit
// override variable is present.
func (p *Policy) CrossCompileAllowed() bool {
	host, hostSet := p.lookup(EnvHost)
	target, targetSet := p.lookup(EnvTarget)
	if hostSet == targetSet && host == target {
		return true
	}
	return p.isSet(EnvAllowCross)
}

// Disabled reports whether discovery has been opted out for the given
// library via its <LIB>_NO_PKG_CONFIG variable.
func (p *Policy) Disabled(library string) bool {
	return p.isSet(Envify(library) + SuffixDisable)
}

// staticRule maps a variable's presence to a link-mode verdict.
type staticRule struct {
	key    string
	statik bool
}

// InferStatic resolves the link mode for a library from the
// environment. Rules are consulted in order and the first variable
// found wins; nothing set means dynamic. The default is dynamic because
// most probed libraries are base system libraries that must not be
// embedded into the output binary.
func (p *Policy) InferStatic(library string) bool {
	stem := Envify(library)
	rules := []staticRule{
		{stem + SuffixStatic, true},
		{stem + SuffixDynamic, false},
		{EnvAllStatic, true},
		{EnvAllDynamic, false},
	}
	for _, r := range rules {
		if p.isSet(r.key) {
			return r.statik
		}
	}
	return false
}

func (p *Policy) isSet(key string) bool {
	_, ok := p.lookup(key)
	return ok
}
