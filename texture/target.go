package texture

import "fmt"

// BlockFormat is a BCn block-compression scheme, named as the ktx
// transcoder expects it.
type BlockFormat uint8

const (
	// BC1 is 4bpp RGB, no alpha.
	BC1 BlockFormat = iota

	// BC3 is 8bpp RGBA with an interpolated alpha block.
	BC3

	// BC5 is two independent high-precision channels; used for
	// tangent-space normals with a reconstructed third component.
	BC5

	// BC7 is 8bpp high-quality RGBA.
	BC7

	blockFormatCount
)

var blockFormatNames = [blockFormatCount]string{
	BC1: "bc1",
	BC3: "bc3",
	BC5: "bc5",
	BC7: "bc7",
}

// String returns the transcoder's name for the format.
func (f BlockFormat) String() string {
	if f >= blockFormatCount {
		return fmt.Sprintf("BlockFormat(%d)", uint8(f))
	}
	return blockFormatNames[f]
}

// TransferFunction is the color encoding assigned to a stored texture.
type TransferFunction uint8

const (
	// TransferSRGB marks display-referred color.
	TransferSRGB TransferFunction = iota

	// TransferLinear marks non-color data channels.
	TransferLinear
)

// String returns the encoder's name for the transfer function.
func (tf TransferFunction) String() string {
	if tf == TransferLinear {
		return "linear"
	}
	return "srgb"
}

// AlbedoPolicy selects the block format for albedo (and emissive)
// images.
type AlbedoPolicy uint8

const (
	// AlbedoAuto picks BC3 when the image carries meaningful alpha and
	// BC1 otherwise.
	AlbedoAuto AlbedoPolicy = iota

	// AlbedoBC1, AlbedoBC3 and AlbedoBC7 force the named format.
	AlbedoBC1
	AlbedoBC3
	AlbedoBC7
)

// String returns the policy's configuration name.
func (p AlbedoPolicy) String() string {
	switch p {
	case AlbedoAuto:
		return "auto"
	case AlbedoBC1:
		return "bc1"
	case AlbedoBC3:
		return "bc3"
	default:
		return "bc7"
	}
}

// ParseAlbedoPolicy converts a configuration string to an AlbedoPolicy.
// Unrecognized values are rejected at this boundary.
func ParseAlbedoPolicy(s string) (AlbedoPolicy, error) {
	switch s {
	case "auto":
		return AlbedoAuto, nil
	case "bc1":
		return AlbedoBC1, nil
	case "bc3":
		return AlbedoBC3, nil
	case "bc7":
		return AlbedoBC7, nil
	}
	return 0, fmt.Errorf("texture: unknown albedo policy %q", s)
}

// Target is the (block format, transfer function) pair chosen for one
// image.
type Target struct {
	Format   BlockFormat
	Transfer TransferFunction
}

// SelectTarget maps a role to its compression target. It is a pure
// total function of its arguments:
//
//	normal                      -> (bc5, linear)
//	metallic_roughness          -> (bc7, linear)
//	occlusion                   -> (bc7, linear)
//	albedo/emissive, auto+alpha -> (bc3, srgb)
//	albedo/emissive, auto       -> (bc1, srgb)
//	albedo/emissive, explicit   -> (policy, srgb)
//
// Normal maps store two independent per-texel components and are not
// color, so no sRGB transform may ever apply. Metallic-roughness and
// occlusion are data channels. Albedo is the only role whose encoding
// reacts to alpha presence; emissive is treated identically to albedo.
func SelectTarget(role Role, policy AlbedoPolicy, hasAlpha bool) Target {
	switch role {
	case RoleNormal:
		return Target{Format: BC5, Transfer: TransferLinear}
	case RoleMetallicRoughness:
		return Target{Format: BC7, Transfer: TransferLinear}
	case RoleOcclusion:
		// AO is data, not color.
		return Target{Format: BC7, Transfer: TransferLinear}
	}

	// Albedo and emissive: always display-referred color.
	switch policy {
	case AlbedoAuto:
		if hasAlpha {
			return Target{Format: BC3, Transfer: TransferSRGB}
		}
		return Target{Format: BC1, Transfer: TransferSRGB}
	case AlbedoBC1:
		return Target{Format: BC1, Transfer: TransferSRGB}
	case AlbedoBC3:
		return Target{Format: BC3, Transfer: TransferSRGB}
	case AlbedoBC7:
		return Target{Format: BC7, Transfer: TransferSRGB}
	default:
		return Target{Format: BC7, Transfer: TransferSRGB}
	}
}
