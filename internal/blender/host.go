package blender

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"stl-render/internal/logger"
)

// Host builds and renders a scene. Failures inside the host (bad mesh, missing features)
// are returned as-is; there is no retry.
type Host interface {
	Render(ctx context.Context, s *Scene) error
}

// Runner renders by running Blender in background mode on a generated script.
type Runner struct {
	// Path is the Blender executable, looked up on PATH if it has no separator.
	Path   string
	Stdout io.Writer
	Stderr io.Writer
	Log    *logger.Logger
}

// NewRunner returns a Runner for the Blender executable at path, wired to the given output streams.
func NewRunner(path string, stdout, stderr io.Writer, log *logger.Logger) *Runner {
	return &Runner{Path: path, Stdout: stdout, Stderr: stderr, Log: log}
}

// Render writes the scene script to a temporary file and runs Blender on it.
// A Python exception in the script makes Blender exit non-zero, which is reported as an error.
func (r *Runner) Render(ctx context.Context, s *Scene) error {
	script, err := s.Script()
	if err != nil {
		return err
	}
	f, err := os.CreateTemp("", "stl-render-*.py")
	if err != nil {
		return fmt.Errorf("blender: %w", err)
	}
	scriptPath := f.Name()
	defer os.Remove(scriptPath)
	_, err = f.Write(script)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("blender: %w", err)
	}

	args := []string{"-b", "--python-exit-code", "1", "-P", scriptPath}
	r.Log.Logf("blender: %s %s", r.Path, strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, r.Path, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("blender: rendering %s failed: %w", s.MeshPath, err)
		}
		return fmt.Errorf("blender: %w", err)
	}
	return nil
}

// DryRun is a Host that writes the scene script to Out instead of running Blender.
type DryRun struct {
	Out io.Writer
}

// Render writes the script for s.
func (d DryRun) Render(_ context.Context, s *Scene) error {
	script, err := s.Script()
	if err != nil {
		return err
	}
	if _, err := d.Out.Write(script); err != nil {
		return fmt.Errorf("blender: %w", err)
	}
	return nil
}
