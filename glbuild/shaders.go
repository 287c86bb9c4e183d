// Package glbuild loads the vertex and fragment shader sources used to draw
// vecfont line geometry.
package glbuild

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"regexp"

	"github.com/npillmayer/schuko/tracing"
)

// Names of the default shader files.
const (
	VertexShaderFile   = "files/vert_shader.shader"
	FragmentShaderFile = "files/frag_shader.shader"
)

// PositionAttrib is the name of the vertex shader input fed with line vertices.
const PositionAttrib = "position"

var (
	// ErrEmptyShader is returned when a shader file has no source text.
	ErrEmptyShader = errors.New("empty shader source")
	// ErrMissingAttribute is returned when a vertex shader does not declare the
	// [PositionAttrib] input.
	ErrMissingAttribute = errors.New("vertex shader does not declare input " + PositionAttrib)
)

//go:embed files/*.shader
var defaultFS embed.FS

// tracer traces with key 'vecfont.gl'.
func tracer() tracing.Trace {
	return tracing.Select("vecfont.gl")
}

// ShaderPair holds NUL terminated vertex and fragment shader sources ready to be
// handed to the GL API.
type ShaderPair struct {
	Vertex   string
	Fragment string
}

// DefaultShaders returns the embedded shader pair.
func DefaultShaders() (ShaderPair, error) {
	return LoadShaderPair(defaultFS, VertexShaderFile, FragmentShaderFile)
}

// DefaultFS returns the file system holding the embedded shader files.
func DefaultFS() fs.FS { return defaultFS }

// LoadShaderPair reads the vertex and fragment shader sources by name from fsys.
// The vertex shader must declare the [PositionAttrib] input.
func LoadShaderPair(fsys fs.FS, vertName, fragName string) (ShaderPair, error) {
	vert, err := readShader(fsys, vertName)
	if err != nil {
		return ShaderPair{}, err
	}
	if !declaresPosition(vert) {
		return ShaderPair{}, fmt.Errorf("%s: %w", vertName, ErrMissingAttribute)
	}
	frag, err := readShader(fsys, fragName)
	if err != nil {
		return ShaderPair{}, err
	}
	return ShaderPair{Vertex: nulTerminate(vert), Fragment: nulTerminate(frag)}, nil
}

func readShader(fsys fs.FS, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("empty shader filename")
	}
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading shader: %w", err)
	}
	tracer().Debugf("shader %s is %d bytes", name, len(src))
	if len(bytes.TrimSpace(bytes.TrimRight(src, "\x00"))) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyShader)
	}
	return src, nil
}

var (
	lineComment  = regexp.MustCompile(`//[^\n]*`)
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	positionDecl = regexp.MustCompile(`(?m)^\s*(?:layout\s*\([^)]*\)\s*)?(?:in|attribute)\s+(?:(?:lowp|mediump|highp)\s+)?\w+\s+` + PositionAttrib + `\s*;`)
)

func declaresPosition(src []byte) bool {
	src = blockComment.ReplaceAll(src, nil)
	src = lineComment.ReplaceAll(src, nil)
	return positionDecl.Match(src)
}

func nulTerminate(src []byte) string {
	src = bytes.TrimRight(src, "\x00")
	return string(src) + "\x00"
}
