package blender

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"

	"github.com/go-gl/mathgl/mgl64"
)

//go:embed render.py.tmpl
var scriptSource string

var scriptTemplate = template.Must(template.New("render.py").Funcs(template.FuncMap{
	"num":  pyFloat,
	"vec3": pyVec3,
	"rgba": pyRGBA,
	"str":  pyString,
	"bool": pyBool,
}).Parse(scriptSource))

// Script returns the Python program that builds and renders s inside Blender.
func (s *Scene) Script() ([]byte, error) {
	var buf bytes.Buffer
	if err := scriptTemplate.Execute(&buf, s); err != nil {
		return nil, fmt.Errorf("blender: script: %w", err)
	}
	return buf.Bytes(), nil
}

func pyFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "float('nan')"
	case math.IsInf(f, 1):
		return "float('inf')"
	case math.IsInf(f, -1):
		return "float('-inf')"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func pyTuple(fs ...float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = pyFloat(f)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func pyVec3(v mgl64.Vec3) string { return pyTuple(v[:]...) }

func pyRGBA(c [4]float64) string { return pyTuple(c[:]...) }

// pyString quotes s as a Python string literal; JSON string syntax is a subset of Python's.
func pyString(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
