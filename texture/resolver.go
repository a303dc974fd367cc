package texture

import (
	"path/filepath"
	"strings"
)

// Resolver assigns exactly one role to every image asset. Resolution is
// pure: it depends only on the hint mapping and suffix rules captured at
// construction, so resolving the same path twice yields the same role.
type Resolver struct {
	hints   Hints
	matcher *Matcher
}

// NewResolver builds a resolver from an optional hint mapping and a
// compiled suffix matcher. Both tables are injected so tests can
// substitute custom tables without shared state.
func NewResolver(hints Hints, matcher *Matcher) *Resolver {
	if matcher == nil {
		matcher = NewMatcher(DefaultSuffixRules())
	}
	return &Resolver{hints: hints, matcher: matcher}
}

// Resolve returns the role for the image at path. Precedence:
// authoritative scene metadata, then naming convention, then the
// permissive albedo default. Resolve is total; it never fails.
func (r *Resolver) Resolve(path string) Role {
	base := filepath.Base(path)
	if len(r.hints) > 0 {
		if role, ok := r.hints.Lookup(base); ok {
			return role
		}
	}
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if role, ok := r.matcher.Match(stem); ok {
		return role
	}
	return RoleAlbedo
}
