package texture

import (
	"io"

	"github.com/gogpu/assetc/internal/tool"
)

// Option configures a Compressor during creation.
type Option func(*Compressor)

// WithResolver sets the role resolver. Use this to supply material-graph
// hints or custom suffix rules:
//
//	hints, _ := texture.ParseHints("scene.gltf")
//	c := texture.NewCompressor(
//	    texture.WithResolver(texture.NewResolver(hints, nil)),
//	)
func WithResolver(r *Resolver) Option {
	return func(c *Compressor) { c.resolver = r }
}

// WithAlphaProber sets the alpha-significance probe. NullProber skips
// decoding entirely.
func WithAlphaProber(p AlphaProber) Option {
	return func(c *Compressor) { c.prober = p }
}

// WithRunner sets the external-tool runner. Tests inject fakes here.
func WithRunner(r tool.Runner) Option {
	return func(c *Compressor) { c.runner = r }
}

// WithTools sets the toktx and ktx invocation prefixes. Each prefix may
// carry a launcher and arguments, as parsed by tool.Split.
func WithTools(toktx, ktx []string) Option {
	return func(c *Compressor) {
		if len(toktx) > 0 {
			c.toktx = toktx
		}
		if len(ktx) > 0 {
			c.ktx = ktx
		}
	}
}

// WithAlbedoPolicy sets the block-format policy for albedo and emissive
// images.
func WithAlbedoPolicy(p AlbedoPolicy) Option {
	return func(c *Compressor) { c.policy = p }
}

// WithQuality sets the UASTC encode quality (0-4).
func WithQuality(q int) Option {
	return func(c *Compressor) { c.quality = q }
}

// WithMipmaps enables mipmap generation during encoding.
func WithMipmaps(on bool) Option {
	return func(c *Compressor) { c.mipmaps = on }
}

// WithFlipY maps the lower-left corner to s0t0 during encoding.
func WithFlipY(on bool) Option {
	return func(c *Compressor) { c.flipY = on }
}

// WithKeepIntermediate retains the stage-1 UASTC containers after a
// successful transcode.
func WithKeepIntermediate(on bool) Option {
	return func(c *Compressor) { c.keep = on }
}

// WithWorkers sets the worker-pool size. Zero or negative means one
// worker per available CPU.
func WithWorkers(n int) Option {
	return func(c *Compressor) { c.workers = n }
}

// WithDryRun prints intended tool invocations instead of executing
// them. Dry runs always report success and leave the filesystem's
// outputs untouched.
func WithDryRun(on bool) Option {
	return func(c *Compressor) { c.dryRun = on }
}

// WithReportWriter sets the destination for per-file OK/ERR lines and
// dry-run command echoes. Defaults to stdout.
func WithReportWriter(w io.Writer) Option {
	return func(c *Compressor) { c.report = w }
}
