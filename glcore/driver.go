// Package glcore implements glw.Driver on top of the native OpenGL 4.6 core profile
// bindings from github.com/go-gl/gl.
package glcore

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/celer/glw"
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Driver forwards every call to the function pointers loaded by gl.Init
type Driver struct{}

var _ glw.Driver = (*Driver)(nil)

// New loads the OpenGL function pointers. An OpenGL context must be current on the
// calling thread.
func New() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("error initializing OpenGL: %w", err)
	}
	return &Driver{}, nil
}

var end = "\x00"

func safeString(s string) string {
	if strings.HasSuffix(s, end) {
		return s
	}
	return s + end
}

func (*Driver) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (*Driver) Clear(mask uint32) {
	gl.Clear(mask)
}

func (*Driver) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}

func (*Driver) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElements(mode, count, xtype, gl.PtrOffset(int(offset)))
}

func (*Driver) GetString(name uint32) string {
	p := gl.GetString(name)
	if p == nil {
		return ""
	}
	return gl.GoStr(p)
}

func (*Driver) GetStringi(name, index uint32) string {
	p := gl.GetStringi(name, index)
	if p == nil {
		return ""
	}
	return gl.GoStr(p)
}

func (*Driver) GetIntegerv(pname uint32, data []int32) {
	if len(data) == 0 {
		return
	}
	gl.GetIntegerv(pname, &data[0])
}

func (*Driver) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (*Driver) Scissor(x, y, width, height int32) {
	gl.Scissor(x, y, width, height)
}

func (*Driver) GetError() uint32 {
	return gl.GetError()
}

func (*Driver) GenBuffers(buffers []uint32) {
	if len(buffers) == 0 {
		return
	}
	gl.GenBuffers(int32(len(buffers)), &buffers[0])
}

func (*Driver) DeleteBuffers(buffers []uint32) {
	if len(buffers) == 0 {
		return
	}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
}

func (*Driver) BindBuffer(target, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (*Driver) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, data, usage)
}

func (*Driver) GenVertexArrays(arrays []uint32) {
	if len(arrays) == 0 {
		return
	}
	gl.GenVertexArrays(int32(len(arrays)), &arrays[0])
}

func (*Driver) DeleteVertexArrays(arrays []uint32) {
	if len(arrays) == 0 {
		return
	}
	gl.DeleteVertexArrays(int32(len(arrays)), &arrays[0])
}

func (*Driver) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (*Driver) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(int(offset)))
}

func (*Driver) VertexAttribIPointer(index uint32, size int32, xtype uint32, stride int32, offset uintptr) {
	gl.VertexAttribIPointer(index, size, xtype, stride, gl.PtrOffset(int(offset)))
}

func (*Driver) VertexAttribLPointer(index uint32, size int32, xtype uint32, stride int32, offset uintptr) {
	gl.VertexAttribLPointer(index, size, xtype, stride, gl.PtrOffset(int(offset)))
}

func (*Driver) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (*Driver) DisableVertexAttribArray(index uint32) {
	gl.DisableVertexAttribArray(index)
}

func (*Driver) Enable(capability uint32) {
	gl.Enable(capability)
}

func (*Driver) Disable(capability uint32) {
	gl.Disable(capability)
}

func (*Driver) IsEnabled(capability uint32) bool {
	return gl.IsEnabled(capability)
}

func (*Driver) Enablei(capability, index uint32) {
	gl.Enablei(capability, index)
}

func (*Driver) Disablei(capability, index uint32) {
	gl.Disablei(capability, index)
}

func (*Driver) BlendFunc(sfactor, dfactor uint32) {
	gl.BlendFunc(sfactor, dfactor)
}

// DebugMessageCallback installs fn through go-gl's trampoline, which converts the C message
// pointer into a go string before it reaches us.
func (*Driver) DebugMessageCallback(fn func(source, xtype, id, severity uint32, message string)) {
	if fn == nil {
		gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {}, nil)
		return
	}
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		fn(source, gltype, id, severity, message)
	}, nil)
}

func (*Driver) CreateShader(xtype uint32) uint32 {
	return gl.CreateShader(xtype)
}

func (*Driver) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(safeString(source))
	defer free()
	gl.ShaderSource(shader, 1, csources, nil)
}

func (*Driver) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (*Driver) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (*Driver) GetShaderiv(shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (*Driver) GetShaderInfoLog(shader uint32, buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	var n int32
	gl.GetShaderInfoLog(shader, int32(len(buf)), &n, &buf[0])
	return n
}

func (*Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (*Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (*Driver) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (*Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (*Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (*Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (*Driver) GetProgramiv(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (*Driver) GetProgramInfoLog(program uint32, buf []byte) int32 {
	if len(buf) == 0 {
		return 0
	}
	var n int32
	gl.GetProgramInfoLog(program, int32(len(buf)), &n, &buf[0])
	return n
}

func (*Driver) GetUniformLocation(program uint32, name string) int32 {
	cname, free := gl.Strs(safeString(name))
	defer free()
	return gl.GetUniformLocation(program, *cname)
}

func (*Driver) Uniform1f(location int32, v0 float32) {
	gl.Uniform1f(location, v0)
}

func (*Driver) Uniform1i(location int32, v0 int32) {
	gl.Uniform1i(location, v0)
}

func (*Driver) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	gl.Uniform4f(location, v0, v1, v2, v3)
}

func (*Driver) GenTextures(textures []uint32) {
	if len(textures) == 0 {
		return
	}
	gl.GenTextures(int32(len(textures)), &textures[0])
}

func (*Driver) DeleteTextures(textures []uint32) {
	if len(textures) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(textures)), &textures[0])
}

func (*Driver) BindTexture(target, texture uint32) {
	gl.BindTexture(target, texture)
}

func (*Driver) ActiveTexture(unit uint32) {
	gl.ActiveTexture(unit)
}

func (*Driver) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (*Driver) TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, pixels)
}

func (*Driver) GenerateMipmap(target uint32) {
	gl.GenerateMipmap(target)
}
