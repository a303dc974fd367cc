// Command shaderc compiles every GLSL/WGSL shader under a source tree
// to SPIR-V, writing one .spv next to each source.
//
// Usage:
//
//	shaderc [options]
//
// Examples:
//
//	shaderc                                  # RelWithDebInfo over ./shaders
//	shaderc -release -quiet
//	shaderc -shader-dir assets/shaders -target-env vulkan1.2
//
// Exit status: 0 on success or when no shaders are found, 1 when one or
// more shaders failed to compile, 2 when the shader directory is
// missing.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/assetc"
	"github.com/gogpu/assetc/shader"
)

var (
	debug      = flag.Bool("debug", false, "Debug profile (adds -g, no -O)")
	release    = flag.Bool("release", false, "Release profile (adds -O, no -g)")
	config     = flag.String("config", "RelWithDebInfo", "compilation profile (Debug|Release|RelWithDebInfo)")
	shaderDir  = flag.String("shader-dir", "shaders", "shader source directory")
	glslcPath  = flag.String("glslc", "", "glslc location (default: auto-detect; may carry arguments)")
	targetEnv  = flag.String("target-env", "vulkan1.3", "Vulkan target environment for glslc")
	noWerror   = flag.Bool("no-werror", false, "do not pass -Werror")
	quiet      = flag.Bool("quiet", false, "only print errors")
	configFile = flag.String("config-file", "", "optional TOML configuration file")
	verbose    = flag.Bool("v", false, "enable structured logging to stderr")
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

	if *debug && *release {
		fmt.Fprintln(os.Stderr, "Error: -debug and -release are mutually exclusive")
		return 2
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if *configFile != "" {
		cfg, err := assetc.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if !set["glslc"] && cfg.Shader.Glslc != "" {
			*glslcPath = cfg.Shader.Glslc
		}
		if !set["target-env"] && cfg.Shader.TargetEnv != "" {
			*targetEnv = cfg.Shader.TargetEnv
		}
		if !set["config"] && cfg.Shader.Profile != "" {
			*config = cfg.Shader.Profile
		}
	}

	profileName := *config
	if *debug {
		profileName = "Debug"
	} else if *release {
		profileName = "Release"
	}
	profile, err := shader.ParseProfile(profileName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	sources, err := shader.Discover(*shaderDir)
	if errors.Is(err, shader.ErrDirNotFound) {
		fmt.Fprintf(os.Stderr, "ERROR: shader dir not found: %s\n", *shaderDir)
		return 2
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if len(sources) == 0 {
		if !*quiet {
			fmt.Printf("No shaders found under %s\n", *shaderDir)
		}
		return 0
	}

	var glslc []string
	if shader.NeedsGlslc(sources) {
		glslc, err = shader.FindGlslc(*glslcPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ERROR: `glslc` not found. Install the Vulkan SDK and ensure `glslc` is on PATH,")
			fmt.Fprintln(os.Stderr, "       or set `VULKAN_SDK`, `GLSLC`, or pass `-glslc /path/to/glslc`.")
			return 1
		}
	}

	compiler := shader.NewCompiler(glslc,
		shader.WithProfile(profile),
		shader.WithTargetEnv(*targetEnv),
		shader.WithWerror(!*noWerror),
		shader.WithQuiet(*quiet),
	)

	if failed := compiler.CompileSources(sources, *shaderDir); failed > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d shader(s) failed to compile.\n", failed)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: shaderc [options]\n\n")
	fmt.Fprintf(os.Stderr, "Compile GLSL/WGSL shaders under the shader directory to .spv next to sources.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
