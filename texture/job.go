package texture

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/assetc"
	"github.com/gogpu/assetc/internal/tool"
)

// Job is one image's two-stage transcode: source image to a UASTC KTX2
// intermediate via toktx, then intermediate to the final BCn container
// via ktx transcode. Jobs are independent; they share no mutable state
// and may run in any order.
type Job struct {
	Source string
	Role   Role
	Target Target
	OutDir string
}

// intermediateDirName holds stage-1 UASTC containers under the output
// directory.
const intermediateDirName = ".intermediate"

// stem returns the source filename without its extension.
func (j Job) stem() string {
	base := filepath.Base(j.Source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// encodeArgs assembles the stage-1 toktx invocation.
func (c *Compressor) encodeArgs(j Job, intermediate string) []string {
	argv := append([]string{}, c.toktx...)
	argv = append(argv,
		"--t2",
		"--encode", "uastc",
		"--uastc_quality", strconv.Itoa(c.quality),
	)
	if j.Role == RoleNormal {
		argv = append(argv, "--normal_mode", "--normalize")
	}
	if c.mipmaps {
		argv = append(argv, "--genmipmap")
	}
	if c.flipY {
		argv = append(argv, "--lower_left_maps_to_s0t0")
	}
	argv = append(argv, "--assign_oetf", j.Target.Transfer.String())
	argv = append(argv, intermediate, j.Source)
	return argv
}

// transcodeArgs assembles the stage-2 ktx invocation.
func (c *Compressor) transcodeArgs(j Job, intermediate, out string) []string {
	argv := append([]string{}, c.ktx...)
	argv = append(argv, "transcode", "--target", j.Target.Format.String(), intermediate, out)
	return argv
}

// runJob executes one job and returns its exit status: 0 on success,
// the failing stage's status otherwise. Stage 2 never runs when stage 1
// failed.
func (c *Compressor) runJob(j Job) int {
	stem := j.stem()
	tmpDir := filepath.Join(j.OutDir, intermediateDirName)
	if !c.dryRun {
		if err := os.MkdirAll(tmpDir, 0o755); err != nil {
			assetc.Logger().Warn("create output directory failed", "dir", tmpDir, "error", err)
			return -1
		}
	}
	intermediate := filepath.Join(tmpDir, stem+".uastc.ktx2")

	if rc := tool.ExitCode(c.runner.Run(c.encodeArgs(j, intermediate))); rc != 0 {
		return rc
	}

	out := filepath.Join(j.OutDir, stem+".ktx2")
	if rc := tool.ExitCode(c.runner.Run(c.transcodeArgs(j, intermediate, out))); rc != 0 {
		return rc
	}

	if !c.keep && !c.dryRun {
		if err := os.Remove(intermediate); err != nil {
			// Cleanup only; the transcode already succeeded.
			assetc.Logger().Warn("intermediate cleanup failed", "path", intermediate, "error", err)
		}
	}
	return 0
}
