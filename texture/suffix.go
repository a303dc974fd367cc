package texture

import (
	"regexp"
	"strings"
)

// SuffixRules maps each role to the ordered token list that identifies
// it by filename convention. Tokens match case-insensitively at the end
// of a stem, preceded by start-of-string or one of `_`, `-`, `.`.
type SuffixRules map[Role][]string

// DefaultSuffixRules returns the built-in per-role token lists.
// The returned map is a fresh copy; callers may modify it.
func DefaultSuffixRules() SuffixRules {
	return SuffixRules{
		RoleAlbedo:            {"_albedo", "_basecolor", "_base_colour", "_base_color", "_base", "baseColor", "BaseColor"},
		RoleMetallicRoughness: {"_mr", "_orm", "_metalrough", "_metallicroughness", "metallicRoughness", "Metallic", "Metalness"},
		RoleNormal:            {"_normal", "_norm", "_nrm", "_normalgl", "Normal"},
		RoleOcclusion:         {"_occlusion", "_occ", "_ao"},
		RoleEmissive:          {"_emissive", "_emission", "_emit"},
	}
}

// Matcher answers which role, if any, a filename stem names by its
// trailing token. Roles are tried in declaration order (albedo,
// metallic_roughness, normal, occlusion, emissive) and the first match
// wins, so overlapping token sets resolve deterministically.
type Matcher struct {
	// patterns holds one compiled pattern per role; nil entries mean the
	// role has no configured tokens.
	patterns [roleCount]*regexp.Regexp
}

// NewMatcher compiles a matcher from the given rules. Tokens are
// regex-escaped so literal punctuation in a token matches literally.
func NewMatcher(rules SuffixRules) *Matcher {
	m := &Matcher{}
	for role := Role(0); role < roleCount; role++ {
		tokens := rules[role]
		if len(tokens) == 0 {
			continue
		}
		alts := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			alts = append(alts, regexp.QuoteMeta(strings.ToLower(tok)))
		}
		if len(alts) == 0 {
			continue
		}
		// Anchored to the end of the stem: mid-string tokens do not match.
		m.patterns[role] = regexp.MustCompile(`(?i)(^|[_\-.])(` + strings.Join(alts, "|") + `)$`)
	}
	return m
}

// Match returns the first role whose pattern matches the stem.
// The stem is the filename without its extension.
func (m *Matcher) Match(stem string) (Role, bool) {
	s := strings.ToLower(stem)
	for role := Role(0); role < roleCount; role++ {
		if rx := m.patterns[role]; rx != nil && rx.MatchString(s) {
			return role, true
		}
	}
	return 0, false
}

// ParseTokenCSV splits a comma-separated token list, trimming
// whitespace and dropping empty entries. An all-empty result means
// "no tokens for this role".
func ParseTokenCSV(csv string) []string {
	var tokens []string
	for _, tok := range strings.Split(csv, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
