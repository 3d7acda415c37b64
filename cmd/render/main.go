// Command render turns an STL mesh into a PNG by driving Blender headless from a fixed camera preset.
//
//	render [--blender PATH] [--dry-run] <input.stl> <output.png> <camera_preset>
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"stl-render/internal/blender"
	"stl-render/internal/camera"
	"stl-render/internal/logger"
	"stl-render/internal/renderconfig"
)

const usage = "Usage: render <input.stl> <output.png> <camera_preset>"

var errUsage = errors.New("missing arguments")

type app struct {
	stdout      io.Writer
	stderr      io.Writer
	log         *logger.Logger
	blenderPath string
	// newHost picks the host once flags are known; tests swap it for a fake.
	newHost func(blenderPath string, dryRun bool) blender.Host
}

func main() {
	a := newApp(os.Stdout, os.Stderr, os.LookupEnv)
	os.Exit(a.run(context.Background(), os.Args[1:]))
}

// newApp configures the command from the working directory and lookup.
// A broken config file falls back to the defaults with a warning, so argument errors are still
// reported as usage.
func newApp(stdout, stderr io.Writer, lookup func(string) (string, bool)) *app {
	cfg, err := renderconfig.Resolve(renderconfig.ConfigPath, renderconfig.EnvPath, lookup)
	if err != nil {
		cfg = renderconfig.Default()
	}
	a := &app{
		stdout:      stdout,
		stderr:      stderr,
		log:         logger.New(cfg.LogPath),
		blenderPath: cfg.BlenderPath,
	}
	if err != nil {
		fmt.Fprintf(stderr, "render: using default config: %v\n", err)
		a.log.Logf("render: using default config: %v", err)
	}
	a.newHost = a.host
	return a
}

func (a *app) host(blenderPath string, dryRun bool) blender.Host {
	if dryRun {
		return blender.DryRun{Out: a.stdout}
	}
	return blender.NewRunner(blenderPath, a.stdout, a.stderr, a.log)
}

// run executes the command line and returns the process exit status.
func (a *app) run(ctx context.Context, args []string) int {
	var (
		blenderPath string
		dryRun      bool
		presetName  string
	)
	cmd := &cobra.Command{
		Use:   "render <input.stl> <output.png> <camera_preset>",
		Short: "Render an STL mesh to PNG with Blender",
		Long: "Render an STL mesh to a 1920x1080 transparent PNG with Blender, from one of the camera presets: " +
			strings.Join(camera.Names(), ", ") + ".",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, pos []string) error {
			if len(pos) < 3 {
				return errUsage
			}
			meshPath, outputPath := pos[0], pos[1]
			presetName = pos[2]
			preset, err := camera.Lookup(presetName)
			if err != nil {
				return err
			}
			location, target := preset.Location()
			a.log.Logf("render: %s -> %s, preset %s, camera %v looking at %v", meshPath, outputPath, preset.Name, location, target)

			scene, err := blender.NewScene(meshPath, outputPath, location, target)
			if err != nil {
				return err
			}
			return a.newHost(blenderPath, dryRun).Render(cmd.Context(), scene)
		},
	}
	cmd.Flags().StringVar(&blenderPath, "blender", a.blenderPath, "Blender executable")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the generated Blender script instead of rendering")
	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(a.stdout, usage)
	case errors.Is(err, camera.ErrUnknownPreset):
		fmt.Fprintf(a.stdout, "Unknown camera preset: %s\n", presetName)
	default:
		a.log.Logf("render: %v", err)
		fmt.Fprintln(a.stderr, err)
	}
	return 1
}
