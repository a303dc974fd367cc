package texture

import "testing"

func TestSelectTarget(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		policy   AlbedoPolicy
		hasAlpha bool
		want     Target
	}{
		{name: "normal ignores policy and alpha", role: RoleNormal, policy: AlbedoAuto, hasAlpha: true,
			want: Target{Format: BC5, Transfer: TransferLinear}},
		{name: "normal explicit policy still bc5", role: RoleNormal, policy: AlbedoBC1, hasAlpha: false,
			want: Target{Format: BC5, Transfer: TransferLinear}},
		{name: "metallic roughness", role: RoleMetallicRoughness, policy: AlbedoAuto, hasAlpha: true,
			want: Target{Format: BC7, Transfer: TransferLinear}},
		{name: "occlusion", role: RoleOcclusion, policy: AlbedoBC3, hasAlpha: true,
			want: Target{Format: BC7, Transfer: TransferLinear}},
		{name: "albedo auto with alpha", role: RoleAlbedo, policy: AlbedoAuto, hasAlpha: true,
			want: Target{Format: BC3, Transfer: TransferSRGB}},
		{name: "albedo auto without alpha", role: RoleAlbedo, policy: AlbedoAuto, hasAlpha: false,
			want: Target{Format: BC1, Transfer: TransferSRGB}},
		{name: "albedo explicit bc1", role: RoleAlbedo, policy: AlbedoBC1, hasAlpha: true,
			want: Target{Format: BC1, Transfer: TransferSRGB}},
		{name: "albedo explicit bc3", role: RoleAlbedo, policy: AlbedoBC3, hasAlpha: false,
			want: Target{Format: BC3, Transfer: TransferSRGB}},
		{name: "albedo explicit bc7", role: RoleAlbedo, policy: AlbedoBC7, hasAlpha: false,
			want: Target{Format: BC7, Transfer: TransferSRGB}},
		{name: "albedo unknown policy falls back to bc7", role: RoleAlbedo, policy: AlbedoPolicy(99), hasAlpha: false,
			want: Target{Format: BC7, Transfer: TransferSRGB}},
		{name: "emissive treated as albedo auto alpha", role: RoleEmissive, policy: AlbedoAuto, hasAlpha: true,
			want: Target{Format: BC3, Transfer: TransferSRGB}},
		{name: "emissive treated as albedo explicit", role: RoleEmissive, policy: AlbedoBC7, hasAlpha: false,
			want: Target{Format: BC7, Transfer: TransferSRGB}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectTarget(tt.role, tt.policy, tt.hasAlpha)
			if got != tt.want {
				t.Errorf("SelectTarget(%v, %v, %v) = %v/%v, want %v/%v",
					tt.role, tt.policy, tt.hasAlpha,
					got.Format, got.Transfer, tt.want.Format, tt.want.Transfer)
			}
		})
	}
}

func TestSelectTarget_Pure(t *testing.T) {
	a := SelectTarget(RoleAlbedo, AlbedoAuto, true)
	b := SelectTarget(RoleAlbedo, AlbedoAuto, true)
	if a != b {
		t.Errorf("SelectTarget not deterministic: %v vs %v", a, b)
	}
}

func TestParseAlbedoPolicy(t *testing.T) {
	tests := []struct {
		s       string
		want    AlbedoPolicy
		wantErr bool
	}{
		{s: "auto", want: AlbedoAuto},
		{s: "bc1", want: AlbedoBC1},
		{s: "bc3", want: AlbedoBC3},
		{s: "bc7", want: AlbedoBC7},
		{s: "bc5", wantErr: true},
		{s: "", wantErr: true},
		{s: "BC7", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			got, err := ParseAlbedoPolicy(tt.s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAlbedoPolicy(%q) error = %v, wantErr %v", tt.s, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseAlbedoPolicy(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestBlockFormatString(t *testing.T) {
	tests := []struct {
		f    BlockFormat
		want string
	}{
		{BC1, "bc1"}, {BC3, "bc3"}, {BC5, "bc5"}, {BC7, "bc7"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("%v.String() = %q, want %q", uint8(tt.f), got, tt.want)
		}
	}
}

func TestTransferFunctionString(t *testing.T) {
	if got := TransferSRGB.String(); got != "srgb" {
		t.Errorf("TransferSRGB.String() = %q, want srgb", got)
	}
	if got := TransferLinear.String(); got != "linear" {
		t.Errorf("TransferLinear.String() = %q, want linear", got)
	}
}
