package glw

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// ShaderKind is the pipeline stage a shader is compiled for
type ShaderKind uint32

const (
	FragmentShader       ShaderKind = 0x8B30
	VertexShader         ShaderKind = 0x8B31
	GeometryShader       ShaderKind = 0x8DD9
	TessEvaluationShader ShaderKind = 0x8E87
	TessControlShader    ShaderKind = 0x8E88
	ComputeShader        ShaderKind = 0x91B9
)

func (k ShaderKind) String() string {
	switch k {
	case FragmentShader:
		return "fragment"
	case VertexShader:
		return "vertex"
	case GeometryShader:
		return "geometry"
	case TessEvaluationShader:
		return "tess-evaluation"
	case TessControlShader:
		return "tess-control"
	case ComputeShader:
		return "compute"
	}
	return fmt.Sprintf("Unknown(0x%04X)", uint32(k))
}

// ShaderProp is a parameter which can be queried with GetShaderiv
type ShaderProp uint32

const (
	ShaderType          ShaderProp = 0x8B4F
	ShaderDeleteStatus  ShaderProp = 0x8B80
	ShaderCompileStatus ShaderProp = 0x8B81
	ShaderInfoLogLength ShaderProp = 0x8B84
	ShaderSourceLength  ShaderProp = 0x8B88
)

// Shader is the name of an OpenGL shader object
type Shader uint32

func (c *Context) CreateShader(kind ShaderKind) Shader {
	return Shader(c.Driver.CreateShader(uint32(kind)))
}

func (c *Context) ShaderSource(shader Shader, src string) {
	c.Driver.ShaderSource(uint32(shader), src)
}

func (c *Context) CompileShader(shader Shader) {
	c.Driver.CompileShader(uint32(shader))
}

func (c *Context) DeleteShader(shader Shader) {
	c.Driver.DeleteShader(uint32(shader))
}

// GetShaderiv is the raw query, prefer the typed accessors such as ShaderCompiled
func (c *Context) GetShaderiv(shader Shader, prop ShaderProp) int32 {
	return c.Driver.GetShaderiv(uint32(shader), uint32(prop))
}

func (c *Context) ShaderKindOf(shader Shader) ShaderKind {
	return ShaderKind(c.GetShaderiv(shader, ShaderType))
}

func (c *Context) ShaderCompiled(shader Shader) bool {
	return c.GetShaderiv(shader, ShaderCompileStatus) == glTrue
}

func (c *Context) ShaderInfoLogLen(shader Shader) int {
	return int(c.GetShaderiv(shader, ShaderInfoLogLength))
}

// ShaderInfoLog returns the compiler output for shader, or an empty string if there is none
func (c *Context) ShaderInfoLog(shader Shader) string {
	n := c.ShaderInfoLogLen(shader)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	written := c.Driver.GetShaderInfoLog(uint32(shader), buf)
	if written >= 0 && int(written) < n {
		buf = buf[:written]
	}
	return goString(buf)
}

// CompileError is returned when a shader fails to compile
type CompileError struct {
	Kind ShaderKind
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("error compiling %s shader: %s", e.Kind, e.Log)
}

// BuildShader creates and compiles a shader from src. On failure the shader is deleted and
// a *CompileError holding the info log is returned.
func (c *Context) BuildShader(kind ShaderKind, src string) (Shader, error) {
	shader := c.CreateShader(kind)
	if shader == 0 {
		return 0, fmt.Errorf("unable to create %s shader: %w", kind, c.creationError())
	}
	c.ShaderSource(shader, src)
	c.CompileShader(shader)

	if !c.ShaderCompiled(shader) {
		log := c.ShaderInfoLog(shader)
		c.DeleteShader(shader)
		return 0, &CompileError{Kind: kind, Log: log}
	}

	if log := c.ShaderInfoLog(shader); log != "" {
		c.log.Debug("shader compiled with warnings", zap.Stringer("kind", kind), zap.String("log", log))
	}
	return shader, nil
}

// LoadShader reads GLSL source from file and builds it
func (c *Context) LoadShader(kind ShaderKind, file string) (Shader, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return 0, err
	}
	shader, err := c.BuildShader(kind, string(data))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", file, err)
	}
	return shader, nil
}
