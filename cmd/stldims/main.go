// Command stldims prints the bounding-box dimensions of ASCII STL files.
//
// With file arguments it reports those files; without, it scans stl/metal and stl/plastic-cf.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"stl-render/internal/logger"
	"stl-render/internal/renderconfig"
	"stl-render/internal/stl"
)

type app struct {
	stderr   io.Writer
	reporter *stl.Reporter
}

func main() {
	os.Exit(newApp(os.Stdout, os.Stderr, os.LookupEnv).run(os.Args[1:]))
}

// newApp configures the reporter from the working directory and lookup.
// A broken config file falls back to the defaults with a warning.
func newApp(stdout, stderr io.Writer, lookup func(string) (string, bool)) *app {
	cfg, err := renderconfig.Resolve(renderconfig.ConfigPath, renderconfig.EnvPath, lookup)
	if err != nil {
		cfg = renderconfig.Default()
	}
	log := logger.New(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(stderr, "stldims: using default config: %v\n", err)
		log.Logf("stldims: using default config: %v", err)
	}
	return &app{
		stderr:   stderr,
		reporter: stl.NewReporter(stdout, log),
	}
}

func (a *app) run(args []string) int {
	cmd := &cobra.Command{
		Use:           "stldims [file.stl ...]",
		Short:         "Print bounding-box dimensions of ASCII STL files in mm",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, paths []string) error {
			if len(paths) > 0 {
				return a.reporter.ReportFiles(paths)
			}
			return a.reporter.ReportDirs()
		},
	}
	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}
	cmd.SetArgs(args)
	cmd.SetOut(a.reporter.Out)
	cmd.SetErr(a.stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(a.stderr, err)
		return 1
	}
	return 0
}
