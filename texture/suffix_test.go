package texture

import "testing"

func TestMatcher_DefaultRules(t *testing.T) {
	m := NewMatcher(DefaultSuffixRules())

	tests := []struct {
		name   string
		stem   string
		want   Role
		wantOk bool
	}{
		{name: "basecolor camel case insensitive", stem: "rock_BaseColor", want: RoleAlbedo, wantOk: true},
		{name: "basecolor all lower", stem: "rock_basecolor", want: RoleAlbedo, wantOk: true},
		{name: "metallic camel token", stem: "crate_Metallic", want: RoleMetallicRoughness, wantOk: true},
		{name: "metallicroughness token", stem: "crate_metallicRoughness", want: RoleMetallicRoughness, wantOk: true},
		{name: "metalness needs a separator", stem: "crateMetalness", wantOk: false},
		{name: "metalness after separator", stem: "crate_Metalness", want: RoleMetallicRoughness, wantOk: true},
		// Underscore-prefixed tokens carry their separator inside the
		// token, so they need a boundary of their own before it.
		{name: "underscore token without extra separator", stem: "crate_mr", wantOk: false},
		{name: "underscore token with its own separator", stem: "crate__mr", want: RoleMetallicRoughness, wantOk: true},
		{name: "normal token", stem: "wall_normal", want: RoleNormal, wantOk: true},
		{name: "nrm without extra separator", stem: "wall_nrm", wantOk: false},
		{name: "ao token at stem start", stem: "_ao", want: RoleOcclusion, wantOk: true},
		{name: "ao without extra separator", stem: "floor_ao", wantOk: false},
		{name: "emit without extra separator", stem: "lamp_emit", wantOk: false},
		{name: "emit with its own separator", stem: "lamp__emit", want: RoleEmissive, wantOk: true},
		{name: "dot separator", stem: "wall.normal", want: RoleNormal, wantOk: true},
		{name: "dash separator", stem: "wall-normal", want: RoleNormal, wantOk: true},
		{name: "token mid-string does not match", stem: "normal_wall", wantOk: false},
		{name: "token not at end does not match", stem: "wall_normal_v2", wantOk: false},
		{name: "uppercase stem", stem: "WALL_NORMAL", want: RoleNormal, wantOk: true},
		{name: "no recognized suffix", stem: "weird_name_123", wantOk: false},
		{name: "empty stem", stem: "", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Match(tt.stem)
			if ok != tt.wantOk {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.stem, ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.stem, got, tt.want)
			}
		})
	}
}

func TestMatcher_DeclarationOrderWins(t *testing.T) {
	// Both albedo and normal claim the same token; albedo is declared
	// first and must win.
	rules := SuffixRules{
		RoleAlbedo: {"tex"},
		RoleNormal: {"tex"},
	}
	m := NewMatcher(rules)

	got, ok := m.Match("wall_tex")
	if !ok || got != RoleAlbedo {
		t.Errorf("Match(wall_tex) = %v, %v; want albedo, true", got, ok)
	}
}

func TestMatcher_TokensAreEscaped(t *testing.T) {
	// A dot in a configured token must match a literal dot only.
	m := NewMatcher(SuffixRules{RoleNormal: {"n.rm"}})

	if _, ok := m.Match("wall_nXrm"); ok {
		t.Error("token dot matched as a wildcard")
	}
	if got, ok := m.Match("wall_n.rm"); !ok || got != RoleNormal {
		t.Errorf("literal dot did not match: got %v, %v", got, ok)
	}
}

func TestMatcher_WholeStemToken(t *testing.T) {
	// Start-of-string counts as a boundary, so a stem that is exactly a
	// token matches.
	m := NewMatcher(DefaultSuffixRules())

	// "_albedo" prefixed stems: boundary is the leading underscore.
	if got, ok := m.Match("_albedo"); !ok || got != RoleAlbedo {
		t.Errorf("Match(_albedo) = %v, %v; want albedo, true", got, ok)
	}
}

func TestMatcher_EmptyRules(t *testing.T) {
	m := NewMatcher(SuffixRules{})
	if _, ok := m.Match("rock_albedo"); ok {
		t.Error("empty rules matched")
	}
}

func TestParseTokenCSV(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		want []string
	}{
		{name: "simple", csv: "_a,_b", want: []string{"_a", "_b"}},
		{name: "whitespace trimmed", csv: " _a , _b ", want: []string{"_a", "_b"}},
		{name: "empty entries dropped", csv: "_a,,_b,", want: []string{"_a", "_b"}},
		{name: "empty string", csv: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTokenCSV(tt.csv)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseTokenCSV(%q) = %v, want %v", tt.csv, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseTokenCSV(%q)[%d] = %q, want %q", tt.csv, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	for r := Role(0); r < roleCount; r++ {
		got, err := ParseRole(r.String())
		if err != nil {
			t.Fatalf("ParseRole(%q) error = %v", r.String(), err)
		}
		if got != r {
			t.Errorf("ParseRole(%q) = %v, want %v", r.String(), got, r)
		}
	}

	if _, err := ParseRole("specular"); err == nil {
		t.Error("ParseRole(specular) should reject unknown role")
	}
}
