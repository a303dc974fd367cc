package texture

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gogpu/assetc"
	"github.com/gogpu/assetc/internal/parallel"
	"github.com/gogpu/assetc/internal/tool"
)

// Batch errors.
var (
	// ErrNoInputs is returned when discovery finds no qualifying images.
	ErrNoInputs = errors.New("texture: no input images (supported: .png .jpg .jpeg .tga .tif .tiff)")

	// ErrJobsFailed is returned when one or more jobs reported a
	// non-zero exit status. Successful jobs are not rolled back.
	ErrJobsFailed = errors.New("texture: one or more jobs failed")
)

// supportedExts are the recognized source image extensions.
var supportedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tga":  true,
	".tif":  true,
	".tiff": true,
}

// IsSupported reports whether ext (including the dot) names a supported
// source image format.
func IsSupported(ext string) bool {
	return supportedExts[strings.ToLower(ext)]
}

// Discover returns the images to process: input itself when it is a
// qualifying file, otherwise every qualifying file under it, walked
// recursively and sorted by path. An empty result is ErrNoInputs.
func Discover(input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("texture: stat input: %w", err)
	}

	if !info.IsDir() {
		if !IsSupported(filepath.Ext(input)) {
			return nil, ErrNoInputs
		}
		return []string{input}, nil
	}

	var images []string
	err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsSupported(filepath.Ext(path)) {
			images = append(images, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("texture: walk input: %w", err)
	}
	if len(images) == 0 {
		return nil, ErrNoInputs
	}
	sort.Strings(images)
	return images, nil
}

// Result is one job's outcome.
type Result struct {
	Source string
	Role   Role
	Code   int
}

// Ok reports whether the job succeeded.
func (r Result) Ok() bool { return r.Code == 0 }

// Compressor runs the texture batch: discovery, role resolution, target
// selection, and the parallel two-stage transcode. Construct with
// NewCompressor; the zero value is not usable.
type Compressor struct {
	resolver *Resolver
	prober   AlphaProber
	runner   tool.Runner
	toktx    []string
	ktx      []string
	policy   AlbedoPolicy
	quality  int
	mipmaps  bool
	flipY    bool
	keep     bool
	dryRun   bool
	workers  int
	report   io.Writer
}

// NewCompressor creates a batch compressor with the given options.
// Defaults: default suffix rules and no hints, decoding alpha probe,
// real process execution, bc7 albedo policy, quality 2, one worker per
// available CPU, reporting to stdout.
func NewCompressor(opts ...Option) *Compressor {
	c := &Compressor{
		prober:  DecodeProber{},
		toktx:   []string{"toktx"},
		ktx:     []string{"ktx"},
		policy:  AlbedoBC7,
		quality: 2,
		report:  os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.resolver == nil {
		c.resolver = NewResolver(nil, nil)
	}
	if c.dryRun {
		c.runner = tool.DryRunner{W: c.report}
	}
	if c.runner == nil {
		c.runner = tool.Exec{}
	}
	return c
}

// Plan resolves a role and compression target for every discovered
// image. The alpha probe only runs where its answer matters: albedo or
// emissive images under the auto policy.
func (c *Compressor) Plan(input, outDir string) ([]Job, error) {
	images, err := Discover(input)
	if err != nil {
		return nil, err
	}

	jobs := make([]Job, 0, len(images))
	for _, img := range images {
		role := c.resolver.Resolve(img)
		hasAlpha := false
		if c.policy == AlbedoAuto && (role == RoleAlbedo || role == RoleEmissive) {
			hasAlpha = c.prober.HasAlpha(img)
		}
		target := SelectTarget(role, c.policy, hasAlpha)
		assetc.Logger().Debug("planned job",
			"source", img, "role", role,
			"format", target.Format, "transfer", target.Transfer)
		jobs = append(jobs, Job{Source: img, Role: role, Target: target, OutDir: outDir})
	}
	return jobs, nil
}

// Run compresses every image under input into outDir. Jobs fan out
// across the worker pool and report in completion order, one line per
// file. Run returns ErrNoInputs when discovery finds nothing and
// ErrJobsFailed when any job failed; in-flight jobs are never cancelled
// on another job's failure.
func (c *Compressor) Run(input, outDir string) error {
	jobs, err := c.Plan(input, outDir)
	if err != nil {
		return err
	}

	pool := parallel.NewWorkerPool(c.workers)
	defer pool.Close()

	results := make(chan Result, len(jobs))
	for _, j := range jobs {
		pool.Submit(func() {
			results <- Result{Source: j.Source, Role: j.Role, Code: c.runJob(j)}
		})
	}

	failed := 0
	for range jobs {
		res := <-results
		status := "OK"
		if !res.Ok() {
			status = fmt.Sprintf("ERR(%d)", res.Code)
			failed++
		}
		fmt.Fprintf(c.report, "[%s] %s -> role=%s\n", status, filepath.Base(res.Source), res.Role)
	}

	assetc.Logger().Info("batch finished", "jobs", len(jobs), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrJobsFailed, failed, len(jobs))
	}
	return nil
}
