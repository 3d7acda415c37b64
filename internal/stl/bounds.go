// Package stl measures ASCII STL files.
//
// Only the text format is understood. A binary STL has no "vertex" lines, so it reads as a
// file with no vertices rather than as an error.
package stl

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// maxLineSize bounds a single line; ASCII STL lines are short but solid names are not limited.
const maxLineSize = 1024 * 1024

// Box is an axis-aligned bounding box.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

func emptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// Extend grows b to contain v. A NaN coordinate never compares smaller or larger, so it leaves
// that axis unchanged.
func (b *Box) Extend(v mgl64.Vec3) {
	for i := range v {
		if v[i] < b.Min[i] {
			b.Min[i] = v[i]
		}
		if v[i] > b.Max[i] {
			b.Max[i] = v[i]
		}
	}
}

// Size returns the extents along X, Y and Z (width, depth, height).
func (b Box) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

// ReadBounds folds every vertex line of an ASCII STL into a bounding box and returns it with
// the number of vertices seen. Any line containing "vertex" with at least four fields counts;
// fields 1 to 3 are the coordinates. With zero vertices the box is meaningless.
func ReadBounds(r io.Reader) (Box, int, error) {
	box := emptyBox()
	count := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if !strings.Contains(line, "vertex") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		var v mgl64.Vec3
		for i := range v {
			f, err := strconv.ParseFloat(fields[i+1], 64)
			if err != nil {
				return box, count, fmt.Errorf("stl: line %d: %w", lineNo, err)
			}
			v[i] = f
		}
		box.Extend(v)
		count++
	}
	if err := scanner.Err(); err != nil {
		return box, count, fmt.Errorf("stl: %w", err)
	}
	return box, count, nil
}

// FileBounds reads the bounding box of the STL at path. ok is false when the file has no vertices.
func FileBounds(path string) (box Box, ok bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return Box{}, false, fmt.Errorf("stl: %w", err)
	}
	defer f.Close()
	box, n, err := ReadBounds(f)
	if err != nil {
		return Box{}, false, fmt.Errorf("%s: %w", path, err)
	}
	return box, n > 0, nil
}
