// Package tool locates and runs the external command-line tools the
// asset pipelines drive.
package tool

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/google/shlex"
)

// ErrNotFound is returned when a required external tool cannot be
// located.
var ErrNotFound = errors.New("tool: not found")

// Runner executes external tool invocations. Implementations report a
// process failure through the returned error; use ExitCode to recover
// the exit status.
type Runner interface {
	Run(argv []string) error
}

// Exec runs real processes with os/exec. Output writers default to the
// calling process's stdout and stderr when nil.
type Exec struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (e Exec) Run(argv []string) error {
	if len(argv) == 0 {
		return errors.New("tool: empty command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	return cmd.Run()
}

// DryRunner prints each command line instead of executing it, and
// reports every invocation as successful.
type DryRunner struct {
	W io.Writer
}

// Run implements Runner.
func (d DryRunner) Run(argv []string) error {
	w := d.W
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, "[DRY] %s\n", QuoteCommand(argv))
	return nil
}

// ExitStatus is a synthetic exit status carried as an error, for
// runners that do not launch real processes.
type ExitStatus int

// Error implements error.
func (e ExitStatus) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

// ExitCode extracts a process exit status from a Runner error: 0 for
// nil, the child's status for process failures, -1 for everything else
// (tool could not start, empty command).
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	var status ExitStatus
	if errors.As(err, &status) {
		return int(status)
	}
	return -1
}

// Require verifies that an external tool resolves on PATH and returns
// its location.
func Require(name string) (string, error) {
	p, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("tool: %s: %w", name, ErrNotFound)
	}
	return p, nil
}

// Split parses a tool override string into argv form using shell word
// rules, so overrides may carry a launcher prefix or embedded arguments
// ("wine C:/VulkanSDK/Bin/glslc.exe").
func Split(override string) ([]string, error) {
	argv, err := shlex.Split(override)
	if err != nil {
		return nil, fmt.Errorf("tool: parse override %q: %w", override, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("tool: empty override %q", override)
	}
	return argv, nil
}

// QuoteCommand renders argv as a copy-pasteable shell command line,
// single-quoting arguments that need it.
func QuoteCommand(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = quoteArg(a)
	}
	return strings.Join(quoted, " ")
}

// safeArgChars are the characters that never need quoting.
const safeArgChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789@%+=:,./-_"

func quoteArg(a string) string {
	if a == "" {
		return "''"
	}
	safe := true
	for _, r := range a {
		if !strings.ContainsRune(safeArgChars, r) {
			safe = false
			break
		}
	}
	if safe {
		return a
	}
	return "'" + strings.ReplaceAll(a, "'", `'"'"'`) + "'"
}
