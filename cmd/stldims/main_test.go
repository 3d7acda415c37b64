package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"stl-render/internal/logger"
	"stl-render/internal/stl"
)

const threeVertices = `solid tri
facet normal 0 0 1
outer loop
vertex 0 0 0
vertex 10 0 0
vertex 0 5 0
endloop
endfacet
endsolid tri
`

func newTestApp(root string) (*app, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	r := stl.NewReporter(&stdout, logger.New(""))
	r.Root = root
	return &app{stderr: &stderr, reporter: r}, &stdout, &stderr
}

func write(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExplicitFiles(t *testing.T) {
	dir := t.TempDir()
	tri := write(t, filepath.Join(dir, "tri.stl"), threeVertices)
	empty := write(t, filepath.Join(dir, "empty.stl"), "solid e\nendsolid e\n")

	a, stdout, _ := newTestApp(dir)
	if code := a.run([]string{tri, empty, filepath.Join(dir, "gone.stl")}); code != 0 {
		t.Fatalf("exit = %d", code)
	}
	want := stl.FormatLine("tri", [3]float64{10, 5, 0}) + "\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestScanDirs(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "plastic-cf", "clip.stl"), threeVertices)

	a, stdout, _ := newTestApp(root)
	if code := a.run(nil); code != 0 {
		t.Fatalf("exit = %d", code)
	}
	want := filepath.Join(root, "plastic-cf") + ":\n" +
		"  " + stl.FormatLine("clip", [3]float64{10, 5, 0}) + "\n\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
}

func TestBadFlag(t *testing.T) {
	a, stdout, stderr := newTestApp(t.TempDir())
	if code := a.run([]string{"--nope"}); code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if stdout.Len() != 0 || stderr.Len() == 0 {
		t.Errorf("stdout = %q, stderr = %q", stdout.String(), stderr.String())
	}
}

func noEnv(string) (string, bool) { return "", false }

func TestDefaultsLeaveNoFiles(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	var stdout, stderr bytes.Buffer
	a := newApp(&stdout, &stderr, noEnv)
	if code := a.run([]string{"missing.stl"}); code != 0 {
		t.Fatalf("exit = %d, stderr %q", code, stderr.String())
	}
	if code := a.run(nil); code != 0 {
		t.Fatalf("exit = %d, stderr %q", code, stderr.String())
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("working directory has %d entries after run, want none (first %q)", len(entries), entries[0].Name())
	}
	if len(a.reporter.Log.Lines()) == 0 {
		t.Error("skips were not logged in memory")
	}
}

func TestBrokenConfigFallsBack(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	write(t, filepath.Join(dir, "config", "render.yaml"), "log_path: [broken\n")
	tri := write(t, filepath.Join(dir, "tri.stl"), threeVertices)

	var stdout, stderr bytes.Buffer
	if code := newApp(&stdout, &stderr, noEnv).run([]string{tri}); code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if want := stl.FormatLine("tri", [3]float64{10, 5, 0}) + "\n"; stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
	if stderr.Len() == 0 {
		t.Error("no warning about the broken config")
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
