// Command texturec batch-compresses source images (PNG, JPEG, TGA,
// TIFF) into KTX2 containers with block-compressed payloads, via toktx
// (UASTC intermediate) and ktx transcode (BCn target).
//
// Usage:
//
//	texturec -i <file-or-dir> -o <dir> [options]
//
// Examples:
//
//	texturec -i assets/textures -o build/textures
//	texturec -i rock_basecolor.png -o out -albedo-target auto
//	texturec -i assets -o out -gltf scene.gltf -mipmaps -j 8
//	texturec -i assets -o out -dry-run
//
// Exit status: 0 on full success, 2 when one or more jobs failed, 1 on
// setup errors (no qualifying inputs, missing external tools, malformed
// scene description).
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/assetc"
	"github.com/gogpu/assetc/internal/tool"
	"github.com/gogpu/assetc/texture"
)

var (
	input        = flag.String("i", "", "input image file or directory (recursive)")
	output       = flag.String("o", "", "output directory")
	gltfPath     = flag.String("gltf", "", "optional .gltf scene description; its hints beat suffix matching")
	sufAlbedo    = flag.String("suffix-albedo", "", "albedo suffix tokens, CSV (default: built-in list)")
	sufMR        = flag.String("suffix-mr", "", "metallic-roughness suffix tokens, CSV")
	sufNormal    = flag.String("suffix-normal", "", "normal suffix tokens, CSV")
	sufOcclusion = flag.String("suffix-occlusion", "", "occlusion suffix tokens, CSV")
	sufEmissive  = flag.String("suffix-emissive", "", "emissive suffix tokens, CSV")
	albedoTarget = flag.String("albedo-target", "bc7", "albedo block format (auto|bc1|bc3|bc7; auto = BC3 with alpha, BC1 without)")
	quality      = flag.Int("uastc-quality", 2, "UASTC encode quality (0-4)")
	mipmaps      = flag.Bool("mipmaps", false, "generate mipmaps")
	flipY        = flag.Bool("flip-y", false, "map the lower-left corner to s0t0")
	keepTemp     = flag.Bool("keep-temp", false, "retain intermediate UASTC containers")
	jobs         = flag.Int("j", 0, "concurrent jobs (default: all CPUs)")
	dryRun       = flag.Bool("dry-run", false, "print intended tool invocations without executing")
	configFile   = flag.String("config-file", "", "optional TOML configuration file")
	verbose      = flag.Bool("v", false, "enable structured logging to stderr")
)

func main() {
	flag.Usage = usage
	flag.Parse()
	os.Exit(run())
}

func run() int {
	if *verbose {
		assetc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Error: -i and -o are required")
		usage()
		return 2
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var cfg *assetc.Config
	if *configFile != "" {
		var err error
		cfg, err = assetc.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if !set["albedo-target"] && cfg.Texture.AlbedoPolicy != "" {
			*albedoTarget = cfg.Texture.AlbedoPolicy
		}
		if !set["uastc-quality"] && cfg.Texture.Quality != nil {
			*quality = *cfg.Texture.Quality
		}
	}

	rules, err := suffixRules(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	policy, err := texture.ParseAlbedoPolicy(*albedoTarget)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	hints, err := texture.ParseHints(*gltfPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	toktx, ktx, err := locateTools(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}

	compressor := texture.NewCompressor(
		texture.WithResolver(texture.NewResolver(hints, texture.NewMatcher(rules))),
		texture.WithTools(toktx, ktx),
		texture.WithAlbedoPolicy(policy),
		texture.WithQuality(*quality),
		texture.WithMipmaps(*mipmaps),
		texture.WithFlipY(*flipY),
		texture.WithKeepIntermediate(*keepTemp),
		texture.WithWorkers(*jobs),
		texture.WithDryRun(*dryRun),
	)

	switch err := compressor.Run(*input, *output); {
	case err == nil:
		return 0
	case errors.Is(err, texture.ErrJobsFailed):
		return 2
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}

// suffixRules layers the configuration file and CSV flag overrides on
// top of the built-in token lists.
func suffixRules(cfg *assetc.Config) (texture.SuffixRules, error) {
	rules := texture.DefaultSuffixRules()

	if cfg != nil {
		for name, tokens := range cfg.Texture.Suffixes {
			role, err := texture.ParseRole(name)
			if err != nil {
				return nil, err
			}
			rules[role] = tokens
		}
	}

	flagOverrides := map[texture.Role]string{
		texture.RoleAlbedo:            *sufAlbedo,
		texture.RoleMetallicRoughness: *sufMR,
		texture.RoleNormal:            *sufNormal,
		texture.RoleOcclusion:         *sufOcclusion,
		texture.RoleEmissive:          *sufEmissive,
	}
	for role, csv := range flagOverrides {
		if csv != "" {
			rules[role] = texture.ParseTokenCSV(csv)
		}
	}
	return rules, nil
}

// locateTools resolves the toktx and ktx invocation prefixes. Dry runs
// skip the PATH check so intended invocations can print on machines
// without the KTX tools installed.
func locateTools(cfg *assetc.Config) (toktx, ktx []string, err error) {
	var toktxOverride, ktxOverride string
	if cfg != nil {
		toktxOverride = cfg.Texture.Toktx
		ktxOverride = cfg.Texture.Ktx
	}

	resolve := func(name, override string) ([]string, error) {
		if override != "" {
			return tool.Split(override)
		}
		if *dryRun {
			return []string{name}, nil
		}
		if _, err := tool.Require(name); err != nil {
			return nil, fmt.Errorf("`%s` not found in PATH", name)
		}
		return []string{name}, nil
	}

	if toktx, err = resolve("toktx", toktxOverride); err != nil {
		return nil, nil, err
	}
	if ktx, err = resolve("ktx", ktxOverride); err != nil {
		return nil, nil, err
	}
	return toktx, ktx, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: texturec -i <file-or-dir> -o <dir> [options]\n\n")
	fmt.Fprintf(os.Stderr, "Batch-compress images to KTX2(BCn) via toktx + ktx transcode.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
