package shader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/naga"

	"github.com/gogpu/assetc"
	"github.com/gogpu/assetc/internal/tool"
)

// Profile selects the optimization/debug flag set passed to the
// compiler.
type Profile uint8

const (
	// ProfileDebug compiles with debug info, no optimization.
	ProfileDebug Profile = iota

	// ProfileRelease compiles optimized, no debug info.
	ProfileRelease

	// ProfileRelWithDebInfo compiles optimized with debug info. This is
	// the default profile.
	ProfileRelWithDebInfo

	profileCount
)

var profileNames = [profileCount]string{
	ProfileDebug:          "Debug",
	ProfileRelease:        "Release",
	ProfileRelWithDebInfo: "RelWithDebInfo",
}

// profileFlags maps each profile to its glslc flags.
var profileFlags = [profileCount][]string{
	ProfileDebug:          {"-g"},
	ProfileRelease:        {"-O"},
	ProfileRelWithDebInfo: {"-O", "-g"},
}

// String returns the profile's configuration name.
func (p Profile) String() string {
	if p >= profileCount {
		return fmt.Sprintf("Profile(%d)", uint8(p))
	}
	return profileNames[p]
}

// ParseProfile converts a configuration string to a Profile.
// Unrecognized values are rejected at this boundary.
func ParseProfile(s string) (Profile, error) {
	for p, name := range profileNames {
		if s == name {
			return Profile(p), nil
		}
	}
	return 0, fmt.Errorf("shader: unknown profile %q", s)
}

// debugInfo reports whether the profile carries debug info.
func (p Profile) debugInfo() bool {
	return p == ProfileDebug || p == ProfileRelWithDebInfo
}

// OutputPath returns the SPIR-V path for src: the full source filename
// with ".spv" appended, in the same directory.
func OutputPath(src string) string { return src + ".spv" }

// Compiler drives shader compilation over a source tree, one file at a
// time, strictly sequential. Construct with NewCompiler.
type Compiler struct {
	glslc     []string
	targetEnv string
	profile   Profile
	werror    bool
	quiet     bool
	runner    tool.Runner
	out       io.Writer
	errw      io.Writer
}

// Option configures a Compiler during creation.
type Option func(*Compiler)

// WithTargetEnv sets the target environment string passed to glslc.
func WithTargetEnv(env string) Option {
	return func(c *Compiler) { c.targetEnv = env }
}

// WithProfile sets the compilation profile.
func WithProfile(p Profile) Option {
	return func(c *Compiler) { c.profile = p }
}

// WithWerror controls whether warnings are treated as errors.
func WithWerror(on bool) Option {
	return func(c *Compiler) { c.werror = on }
}

// WithQuiet suppresses everything except errors.
func WithQuiet(on bool) Option {
	return func(c *Compiler) { c.quiet = on }
}

// WithRunner sets the external-tool runner. Tests inject fakes here.
func WithRunner(r tool.Runner) Option {
	return func(c *Compiler) { c.runner = r }
}

// WithOutput sets the writers for command echo and error messages.
func WithOutput(out, errw io.Writer) Option {
	return func(c *Compiler) { c.out, c.errw = out, errw }
}

// NewCompiler creates a compile driver invoking glslc with the given
// argv prefix. Defaults: vulkan1.3 target, RelWithDebInfo profile,
// warnings as errors.
func NewCompiler(glslc []string, opts ...Option) *Compiler {
	c := &Compiler{
		glslc:     glslc,
		targetEnv: "vulkan1.3",
		profile:   ProfileRelWithDebInfo,
		werror:    true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.errw == nil {
		c.errw = os.Stderr
	}
	if c.runner == nil {
		stdout := io.Writer(os.Stdout)
		if c.quiet {
			stdout = io.Discard
		}
		c.runner = tool.Exec{Stdout: stdout}
	}
	return c
}

// Command returns the glslc argv for one source, with include searches
// rooted at includeDir.
func (c *Compiler) Command(src, includeDir string) []string {
	argv := append([]string{}, c.glslc...)
	argv = append(argv, src, "--target-env="+c.targetEnv, "-I", includeDir)
	argv = append(argv, profileFlags[c.profile]...)
	argv = append(argv, stageFlags[strings.ToLower(filepath.Ext(src))]...)
	if c.werror {
		argv = append(argv, "-Werror")
	}
	argv = append(argv, "-o", OutputPath(src))
	return argv
}

// CompileOne compiles a single source and returns its exit status.
func (c *Compiler) CompileOne(src, includeDir string) int {
	if IsWGSL(src) {
		return c.compileWGSL(src)
	}

	argv := c.Command(src, includeDir)
	if !c.quiet {
		fmt.Fprintln(c.out, tool.QuoteCommand(argv))
	}
	return tool.ExitCode(c.runner.Run(argv))
}

// compileWGSL compiles a WGSL source in-process. glslc has no WGSL
// front end; naga does.
func (c *Compiler) compileWGSL(src string) int {
	source, err := os.ReadFile(src)
	if err != nil {
		fmt.Fprintf(c.errw, "%s: %v\n", src, err)
		return 1
	}

	spv, err := naga.CompileWithOptions(string(source), naga.CompileOptions{
		Debug:    c.profile.debugInfo(),
		Validate: true,
	})
	if err != nil {
		fmt.Fprintf(c.errw, "%s: %v\n", src, err)
		return 1
	}

	out := OutputPath(src)
	if err := os.WriteFile(out, spv, 0o644); err != nil {
		fmt.Fprintf(c.errw, "%s: %v\n", out, err)
		return 1
	}
	if !c.quiet {
		fmt.Fprintf(c.out, "naga %s -o %s\n", src, out)
	}
	return 0
}

// CompileSources compiles the given sources sequentially, include
// searches rooted at includeDir, and returns the number of failures.
// Failures do not stop later files.
func (c *Compiler) CompileSources(sources []string, includeDir string) int {
	failed := 0
	for _, src := range sources {
		if rc := c.CompileOne(src, includeDir); rc != 0 {
			assetc.Logger().Debug("compile failed", "source", src, "status", rc)
			failed++
		}
	}
	assetc.Logger().Info("shader batch finished", "sources", len(sources), "failed", failed)
	return failed
}

// CompileAll discovers and compiles every source under dir.
func (c *Compiler) CompileAll(dir string) (int, error) {
	sources, err := Discover(dir)
	if err != nil {
		return 0, err
	}
	return c.CompileSources(sources, dir), nil
}

// NeedsGlslc reports whether any of the sources require the external
// compiler (everything but WGSL).
func NeedsGlslc(sources []string) bool {
	for _, src := range sources {
		if !IsWGSL(src) {
			return true
		}
	}
	return false
}
