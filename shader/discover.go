// Package shader implements the shader batch-compilation pipeline:
// source discovery, compiler flag assembly, and the sequential compile
// driver. GLSL stages compile through an external glslc; WGSL sources
// compile in-process via github.com/gogpu/naga.
package shader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrDirNotFound is returned when the shader source directory does not
// exist.
var ErrDirNotFound = errors.New("shader: shader directory not found")

// stageExts are the recognized shader source extensions: the glslc
// stage set plus WGSL.
var stageExts = map[string]bool{
	".frag":  true,
	".vert":  true,
	".comp":  true,
	".geom":  true,
	".tesc":  true,
	".tese":  true,
	".mesh":  true,
	".task":  true,
	".rgen":  true,
	".rint":  true,
	".rahit": true,
	".rchit": true,
	".rmiss": true,
	".rcall": true,
	".wgsl":  true,
}

// stageFlags maps extensions glslc cannot infer a stage from to the
// explicit stage flag.
var stageFlags = map[string][]string{
	".mesh": {"-fshader-stage=mesh"},
	".task": {"-fshader-stage=task"},
}

// IsWGSL reports whether src compiles through the in-process WGSL path.
func IsWGSL(src string) bool {
	return strings.ToLower(filepath.Ext(src)) == ".wgsl"
}

// Discover returns every shader source under dir, walked recursively
// and sorted by path. An empty result is not an error; a missing dir is
// ErrDirNotFound.
func Discover(dir string) ([]string, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
	}

	var sources []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && stageExts[strings.ToLower(filepath.Ext(path))] {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("shader: walk %s: %w", dir, err)
	}
	sort.Strings(sources)
	return sources, nil
}
