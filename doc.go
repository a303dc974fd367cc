// Package assetc provides batch asset-pipeline tooling for Go.
//
// # Overview
//
// assetc is a pair of offline asset compilers for the GoGPU ecosystem:
// a GLSL/WGSL to SPIR-V shader batch compiler and a PNG/JPEG/TGA/TIFF to
// KTX2 texture batch compressor. Both discover input files, derive per-file
// parameters from naming and metadata conventions, drive external encoders,
// and aggregate pass/fail results.
//
// # Packages
//
//   - shader: shader source discovery, glslc flag assembly, and the
//     sequential compile driver (WGSL sources compile in-process via
//     github.com/gogpu/naga).
//   - texture: texture role inference, BCn/transfer-function target policy,
//     and the parallel two-stage toktx/ktx transcode batch.
//   - cmd/shaderc, cmd/texturec: the command-line front ends.
//
// # Logging
//
// assetc produces no log output by default. Call [SetLogger] to enable
// structured logging for all subpackages:
//
//	assetc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
package assetc
