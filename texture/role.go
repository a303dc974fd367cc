// Package texture implements the texture batch-compression pipeline:
// semantic role inference for source images, the BCn/transfer-function
// target policy, and the parallel two-stage toktx/ktx transcode batch.
package texture

import "fmt"

// Role is the semantic purpose of a texture image within a material.
type Role uint8

const (
	// RoleAlbedo is display-referred base color. It is the default when
	// neither scene metadata nor naming convention identifies an image.
	RoleAlbedo Role = iota

	// RoleMetallicRoughness packs metalness and roughness scalars into
	// unrelated color channels.
	RoleMetallicRoughness

	// RoleNormal stores tangent-space surface normals.
	RoleNormal

	// RoleOcclusion stores a scalar ambient-occlusion term.
	RoleOcclusion

	// RoleEmissive is display-referred emitted color.
	RoleEmissive

	// roleCount is the number of roles (for internal use).
	roleCount
)

// roleNames indexes Role to its configuration/reporting name.
var roleNames = [roleCount]string{
	RoleAlbedo:            "albedo",
	RoleMetallicRoughness: "metallic_roughness",
	RoleNormal:            "normal",
	RoleOcclusion:         "occlusion",
	RoleEmissive:          "emissive",
}

// String returns the role's configuration name.
func (r Role) String() string {
	if r >= roleCount {
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
	return roleNames[r]
}

// ParseRole converts a configuration string to a Role. Unrecognized
// values are rejected here so raw strings never flow past the
// configuration boundary.
func ParseRole(s string) (Role, error) {
	for r, name := range roleNames {
		if s == name {
			return Role(r), nil
		}
	}
	return 0, fmt.Errorf("texture: unknown role %q", s)
}

// rolePriority orders roles for material-graph hint merging. When one
// image is referenced from multiple material slots, the strictly higher
// priority wins; ties keep the earlier proposal.
var rolePriority = [roleCount]int{
	RoleNormal:            4,
	RoleAlbedo:            3,
	RoleEmissive:          3,
	RoleMetallicRoughness: 2,
	RoleOcclusion:         2,
}
