package stl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"stl-render/internal/logger"
)

// Suffix is the mesh file extension the reporter looks for.
const Suffix = ".stl"

// DefaultRoot holds the mesh directories scanned when no files are named.
const DefaultRoot = "stl"

// DefaultSubdirs are the directories under DefaultRoot that get scanned, in output order.
var DefaultSubdirs = []string{"metal", "plastic-cf"}

// FormatLine renders one report line: name padded to 22 columns, then width x depth x height in mm.
func FormatLine(name string, size [3]float64) string {
	return fmt.Sprintf("%-22s %7.1f x %7.1f x %6.1f mm", name, size[0], size[1], size[2])
}

// Reporter prints bounding-box dimensions of STL files to Out.
// Files that are missing, unreadable or have no vertices produce no output; the reason goes to Log.
type Reporter struct {
	Root    string
	Subdirs []string
	Out     io.Writer
	Log     *logger.Logger
}

// NewReporter returns a Reporter over the default directories.
func NewReporter(out io.Writer, log *logger.Logger) *Reporter {
	return &Reporter{
		Root:    DefaultRoot,
		Subdirs: DefaultSubdirs,
		Out:     out,
		Log:     log,
	}
}

// measure returns the size of the STL at path, or false if it should be left out of the report.
func (r *Reporter) measure(path string) ([3]float64, bool) {
	box, ok, err := FileBounds(path)
	if err != nil {
		r.Log.Logf("stldims: skip %s: %v", path, err)
		return [3]float64{}, false
	}
	if !ok {
		r.Log.Logf("stldims: skip %s: no vertex lines (binary or empty STL)", path)
		return [3]float64{}, false
	}
	return box.Size(), true
}

// ReportFiles prints one line per path that exists and has vertices.
// The name column is the base name with ".stl" removed.
func (r *Reporter) ReportFiles(paths []string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			r.Log.Logf("stldims: skip %s: %v", path, err)
			continue
		}
		size, ok := r.measure(path)
		if !ok {
			continue
		}
		name := strings.ReplaceAll(filepath.Base(path), Suffix, "")
		if _, err := fmt.Fprintln(r.Out, FormatLine(name, size)); err != nil {
			return err
		}
	}
	return nil
}

// ReportDirs prints, for each existing subdirectory of Root, a "<dir>:" header, an indented line
// per .stl file in name order, and a blank line.
func (r *Reporter) ReportDirs() error {
	for _, sub := range r.Subdirs {
		dir := filepath.Join(r.Root, sub)
		entries, err := os.ReadDir(dir)
		if err != nil {
			r.Log.Logf("stldims: skip %s: %v", dir, err)
			continue
		}
		if _, err := fmt.Fprintf(r.Out, "%s:\n", dir); err != nil {
			return err
		}
		for _, e := range entries {
			if !strings.HasSuffix(e.Name(), Suffix) {
				continue
			}
			size, ok := r.measure(filepath.Join(dir, e.Name()))
			if !ok {
				continue
			}
			name := strings.TrimSuffix(e.Name(), Suffix)
			if _, err := fmt.Fprintf(r.Out, "  %s\n", FormatLine(name, size)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(r.Out); err != nil {
			return err
		}
	}
	return nil
}
