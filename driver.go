package glw

import (
	"unsafe"
)

// Driver is the set of OpenGL entry points used by this package. Values are passed exactly as
// OpenGL expects them, the only translation being go strings and slices in place of C strings
// and pointer/length pairs.
//
// See the glcore package for the implementation backed by the native driver.
type Driver interface {
	ClearColor(red, green, blue, alpha float32)
	Clear(mask uint32)
	DrawArrays(mode uint32, first, count int32)
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)
	GetString(name uint32) string
	GetStringi(name, index uint32) string
	GetIntegerv(pname uint32, data []int32)
	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)
	GetError() uint32

	GenBuffers(buffers []uint32)
	DeleteBuffers(buffers []uint32)
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)
	GenVertexArrays(arrays []uint32)
	DeleteVertexArrays(arrays []uint32)
	BindVertexArray(array uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	VertexAttribIPointer(index uint32, size int32, xtype uint32, stride int32, offset uintptr)
	VertexAttribLPointer(index uint32, size int32, xtype uint32, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)

	Enable(capability uint32)
	Disable(capability uint32)
	IsEnabled(capability uint32) bool
	Enablei(capability, index uint32)
	Disablei(capability, index uint32)
	BlendFunc(sfactor, dfactor uint32)

	// DebugMessageCallback installs fn as the debug output handler, a nil fn removes it.
	DebugMessageCallback(fn func(source, xtype, id, severity uint32, message string))

	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	DeleteShader(shader uint32)
	GetShaderiv(shader, pname uint32) int32
	// GetShaderInfoLog fills buf and returns the number of bytes written, excluding the terminator
	GetShaderInfoLog(shader uint32, buf []byte) int32

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	UseProgram(program uint32)
	DeleteProgram(program uint32)
	GetProgramiv(program, pname uint32) int32
	GetProgramInfoLog(program uint32, buf []byte) int32
	GetUniformLocation(program uint32, name string) int32
	Uniform1f(location int32, v0 float32)
	Uniform1i(location int32, v0 int32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)

	GenTextures(textures []uint32)
	DeleteTextures(textures []uint32)
	BindTexture(target, texture uint32)
	ActiveTexture(unit uint32)
	TexParameteri(target, pname uint32, param int32)
	TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels unsafe.Pointer)
	GenerateMipmap(target uint32)
}
