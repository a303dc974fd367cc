package texture

import (
	"image"
	"os"
	"path/filepath"

	"github.com/gogpu/assetc"

	// Decoders for the supported source formats. PNG and JPEG come from
	// the standard library; TIFF and TGA register themselves with
	// image.Decode on import.
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/tiff"
)

// AlphaProber reports whether an image carries meaningful transparency:
// an alpha channel that is not uniformly fully opaque. The answer is
// advisory, feeding only the auto albedo-policy branch, so
// implementations must answer false on any failure rather than
// returning an error.
type AlphaProber interface {
	HasAlpha(path string) bool
}

// DecodeProber answers by decoding the image and inspecting its alpha
// channel.
type DecodeProber struct{}

// HasAlpha implements AlphaProber. Decode failures answer false.
func (DecodeProber) HasAlpha(path string) bool {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		assetc.Logger().Warn("alpha probe decode failed", "path", path, "error", err)
		return false
	}
	return !isOpaque(img)
}

// isOpaque reports whether every pixel is fully opaque. Standard image
// types answer through their Opaque method without a pixel scan for
// alpha-free formats.
func isOpaque(img image.Image) bool {
	if op, ok := img.(interface{ Opaque() bool }); ok {
		return op.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

// NullProber always answers false. It stands in for DecodeProber when
// decoding should not run at all, such as name-only dry runs.
type NullProber struct{}

// HasAlpha implements AlphaProber.
func (NullProber) HasAlpha(string) bool { return false }
