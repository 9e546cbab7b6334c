package glw

import (
	"fmt"

	"go.uber.org/zap"
)

// ProgramProp is a parameter which can be queried with GetProgramiv
type ProgramProp uint32

const (
	ProgramDeleteStatus                      ProgramProp = 0x8B80
	ProgramLinkStatus                        ProgramProp = 0x8B82
	ProgramValidateStatus                    ProgramProp = 0x8B83
	ProgramInfoLogLength                     ProgramProp = 0x8B84
	ProgramAttachedShaders                   ProgramProp = 0x8B85
	ProgramActiveUniforms                    ProgramProp = 0x8B86
	ProgramActiveUniformMaxLength            ProgramProp = 0x8B87
	ProgramActiveAttributes                  ProgramProp = 0x8B89
	ProgramActiveAttributeMaxLength          ProgramProp = 0x8B8A
	ProgramActiveUniformBlockMaxNameLength   ProgramProp = 0x8A35
	ProgramActiveUniformBlocks               ProgramProp = 0x8A36
	ProgramBinaryLength                      ProgramProp = 0x8741
	ProgramComputeWorkGroupSize              ProgramProp = 0x8267
	ProgramTransformFeedbackVaryingMaxLength ProgramProp = 0x8C76
	ProgramTransformFeedbackBufferMode       ProgramProp = 0x8C7F
	ProgramTransformFeedbackVaryings         ProgramProp = 0x8C83
	ProgramGeometryVerticesOut               ProgramProp = 0x8916
	ProgramGeometryInputType                 ProgramProp = 0x8917
	ProgramGeometryOutputType                ProgramProp = 0x8918
	ProgramActiveAtomicCounterBuffers        ProgramProp = 0x92D9
)

// Program is the name of an OpenGL program object
type Program uint32

// NoProgram unbinds the current program
const NoProgram Program = 0

// UniformLocation is the location of a uniform within a linked program
type UniformLocation int32

// NoUniform is returned by GetUniformLocation when the name is not an active uniform.
// Setting it is silently ignored by the driver.
const NoUniform UniformLocation = -1

func (c *Context) CreateProgram() Program {
	return Program(c.Driver.CreateProgram())
}

func (c *Context) AttachShader(program Program, shader Shader) {
	c.Driver.AttachShader(uint32(program), uint32(shader))
}

func (c *Context) DetachShader(program Program, shader Shader) {
	c.Driver.DetachShader(uint32(program), uint32(shader))
}

func (c *Context) LinkProgram(program Program) {
	c.Driver.LinkProgram(uint32(program))
}

func (c *Context) UseProgram(program Program) {
	c.Driver.UseProgram(uint32(program))
}

func (c *Context) DeleteProgram(program Program) {
	c.Driver.DeleteProgram(uint32(program))
}

// GetProgramiv is the raw query, prefer the typed accessors such as ProgramLinked
func (c *Context) GetProgramiv(program Program, prop ProgramProp) int32 {
	return c.Driver.GetProgramiv(uint32(program), uint32(prop))
}

func (c *Context) ProgramLinked(program Program) bool {
	return c.GetProgramiv(program, ProgramLinkStatus) == glTrue
}

func (c *Context) ProgramInfoLogLen(program Program) int {
	return int(c.GetProgramiv(program, ProgramInfoLogLength))
}

// ProgramInfoLog returns the linker output for program, or an empty string if there is none
func (c *Context) ProgramInfoLog(program Program) string {
	n := c.ProgramInfoLogLen(program)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	written := c.Driver.GetProgramInfoLog(uint32(program), buf)
	if written >= 0 && int(written) < n {
		buf = buf[:written]
	}
	return goString(buf)
}

func (c *Context) GetUniformLocation(program Program, name string) UniformLocation {
	return UniformLocation(c.Driver.GetUniformLocation(uint32(program), name))
}

func (c *Context) Uniform1f(location UniformLocation, v0 float32) {
	c.Driver.Uniform1f(int32(location), v0)
}

func (c *Context) Uniform1i(location UniformLocation, v0 int32) {
	c.Driver.Uniform1i(int32(location), v0)
}

func (c *Context) Uniform4f(location UniformLocation, v0, v1, v2, v3 float32) {
	c.Driver.Uniform4f(int32(location), v0, v1, v2, v3)
}

func (c *Context) Uniform4fv(location UniformLocation, v [4]float32) {
	c.Uniform4f(location, v[0], v[1], v[2], v[3])
}

// LinkError is returned when a program fails to link
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "error linking program: " + e.Log
}

// BuildProgram links shaders into a new program. The shaders are detached afterwards so
// the caller may delete them. On failure the program is deleted and a *LinkError holding
// the info log is returned.
func (c *Context) BuildProgram(shaders ...Shader) (Program, error) {
	program := c.CreateProgram()
	if program == 0 {
		return 0, fmt.Errorf("unable to create program: %w", c.creationError())
	}
	for _, s := range shaders {
		c.AttachShader(program, s)
	}
	c.LinkProgram(program)
	for _, s := range shaders {
		c.DetachShader(program, s)
	}

	if !c.ProgramLinked(program) {
		log := c.ProgramInfoLog(program)
		c.DeleteProgram(program)
		return 0, &LinkError{Log: log}
	}

	if log := c.ProgramInfoLog(program); log != "" {
		c.log.Debug("program linked with warnings", zap.Uint32("program", uint32(program)), zap.String("log", log))
	}
	return program, nil
}

// BuildProgramFromSource compiles a vertex and fragment shader and links them, the
// shaders are deleted once linked.
func (c *Context) BuildProgramFromSource(vertexSrc, fragmentSrc string) (Program, error) {
	vs, err := c.BuildShader(VertexShader, vertexSrc)
	if err != nil {
		return 0, err
	}
	defer c.DeleteShader(vs)

	fs, err := c.BuildShader(FragmentShader, fragmentSrc)
	if err != nil {
		return 0, err
	}
	defer c.DeleteShader(fs)

	return c.BuildProgram(vs, fs)
}
