package assetc

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the optional on-disk configuration shared by the assetc
// command-line tools. Values act as defaults; flags that are explicitly
// set always win.
type Config struct {
	Shader  ShaderConfig  `toml:"shader"`
	Texture TextureConfig `toml:"texture"`
}

// ShaderConfig carries shader-tool defaults.
type ShaderConfig struct {
	// Glslc overrides the compiler location. It may carry a launcher
	// prefix and arguments ("wine C:/VulkanSDK/Bin/glslc.exe").
	Glslc string `toml:"glslc"`

	// TargetEnv is the target environment string, e.g. "vulkan1.3".
	TargetEnv string `toml:"target_env"`

	// Profile is Debug, Release or RelWithDebInfo.
	Profile string `toml:"profile"`
}

// TextureConfig carries texture-tool defaults.
type TextureConfig struct {
	// Toktx and Ktx override the encoder and transcoder locations.
	Toktx string `toml:"toktx"`
	Ktx   string `toml:"ktx"`

	// AlbedoPolicy is auto, bc1, bc3 or bc7.
	AlbedoPolicy string `toml:"albedo_policy"`

	// Quality is the UASTC encode quality (0-4). A pointer so that an
	// absent key is distinguishable from an explicit zero.
	Quality *int `toml:"quality"`

	// Suffixes maps role names to replacement suffix-token lists.
	Suffixes map[string][]string `toml:"suffixes"`
}

// LoadConfig reads and parses a TOML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assetc: read config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("assetc: parse config %s: %w", path, err)
	}
	return &cfg, nil
}
