package shader

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/gogpu/assetc/internal/tool"
)

// FindGlslc locates the external GLSL compiler as an argv prefix.
// Precedence: explicit override, the GLSLC environment variable, the
// Vulkan SDK bin directories, then PATH. Overrides and the environment
// variable may carry a launcher and arguments.
func FindGlslc(override string) ([]string, error) {
	if override != "" {
		return tool.Split(override)
	}
	if env := os.Getenv("GLSLC"); env != "" {
		return tool.Split(env)
	}
	if sdk := os.Getenv("VULKAN_SDK"); sdk != "" {
		candidates := []string{
			filepath.Join(sdk, "Bin", "glslc.exe"),
			filepath.Join(sdk, "Bin", "glslc"),
			filepath.Join(sdk, "bin", "glslc.exe"),
			filepath.Join(sdk, "bin", "glslc"),
		}
		for _, c := range candidates {
			if _, err := os.Stat(c); err == nil {
				return []string{c}, nil
			}
		}
	}
	for _, name := range []string{"glslc", "glslc.exe"} {
		if p, err := exec.LookPath(name); err == nil {
			return []string{p}, nil
		}
	}
	return nil, fmt.Errorf("shader: glslc: %w", tool.ErrNotFound)
}
