package stl

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const triangle = `solid part
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 10 0 0
      vertex 0 5 0
    endloop
  endfacet
endsolid part
`

func TestReadBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCount int
		wantSize  mgl64.Vec3
	}{
		{"single triangle", triangle, 3, mgl64.Vec3{10, 5, 0}},
		{
			"negative and scientific",
			"vertex -1.5e1 2 3\nvertex 5 -2 3.5E0\n",
			2,
			mgl64.Vec3{20, 4, 0.5},
		},
		{"tabs and indentation", "\t\tvertex\t1\t2\t3\n   vertex 4 6 8\n", 2, mgl64.Vec3{3, 4, 5}},
		{"short vertex line ignored", "vertex 1 2\nvertex 0 0 0\n", 1, mgl64.Vec3{0, 0, 0}},
		{"no vertices", "solid empty\nendsolid empty\n", 0, mgl64.Vec3{}},
		{"nan coordinate leaves axis alone", "vertex 0 0 0\nvertex nan 5 NaN\nvertex 4 1 2\n", 3, mgl64.Vec3{4, 5, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, n, err := ReadBounds(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadBounds: %v", err)
			}
			if n != tt.wantCount {
				t.Fatalf("count = %d, want %d", n, tt.wantCount)
			}
			if n == 0 {
				return
			}
			if got := box.Size(); !got.ApproxEqual(tt.wantSize) {
				t.Errorf("Size() = %v, want %v", got, tt.wantSize)
			}
		})
	}
}

func TestExtendIgnoresNaN(t *testing.T) {
	box := emptyBox()
	box.Extend(mgl64.Vec3{1, 2, 3})
	box.Extend(mgl64.Vec3{math.NaN(), 7, math.NaN()})
	want := Box{Min: mgl64.Vec3{1, 2, 3}, Max: mgl64.Vec3{1, 7, 3}}
	if box != want {
		t.Errorf("box = %+v, want %+v", box, want)
	}
}

func TestReadBoundsBadNumber(t *testing.T) {
	_, _, err := ReadBounds(strings.NewReader("solid x\nvertex 1 two 3\n"))
	if err == nil {
		t.Fatal("ReadBounds returned nil error for non-numeric coordinate")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %q, want it to name line 2", err)
	}
}

func TestReadBoundsBinary(t *testing.T) {
	// 80-byte header, triangle count 1, one 50-byte facet of zeros.
	data := make([]byte, 84+50)
	copy(data, "binary stl header")
	data[80] = 1
	_, n, err := ReadBounds(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("ReadBounds: %v", err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0 for binary STL", n)
	}
}

func TestFileBounds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part.stl")
	if err := os.WriteFile(path, []byte(triangle), 0644); err != nil {
		t.Fatal(err)
	}
	box, ok, err := FileBounds(path)
	if err != nil || !ok {
		t.Fatalf("FileBounds = %v, %v, %v", box, ok, err)
	}
	if want := (Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{10, 5, 0}}); box != want {
		t.Errorf("box = %+v, want %+v", box, want)
	}

	if _, _, err := FileBounds(filepath.Join(dir, "missing.stl")); err == nil {
		t.Error("FileBounds of missing file returned nil error")
	}
}
