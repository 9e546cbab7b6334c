package glw

import (
	"fmt"
	"unsafe"
)

// recordingDriver is a Driver which records every call as a string and answers queries
// from its fields.
type recordingDriver struct {
	calls []string

	nextName uint32
	errors   []uint32
	strings  map[uint32]string
	stringsi map[uint32][]string
	integers map[uint32]int32
	enabled  map[uint32]bool

	shaderiv   map[uint32]int32
	programiv  map[uint32]int32
	infoLog    string
	uniforms   map[string]int32
	bufferData []byte

	debug func(source, xtype, id, severity uint32, message string)
}

func newRecordingDriver() *recordingDriver {
	return &recordingDriver{
		nextName:  1,
		strings:   map[uint32]string{},
		stringsi:  map[uint32][]string{},
		integers:  map[uint32]int32{},
		enabled:   map[uint32]bool{},
		shaderiv:  map[uint32]int32{},
		programiv: map[uint32]int32{},
		uniforms:  map[string]int32{},
	}
}

func (d *recordingDriver) record(format string, args ...interface{}) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *recordingDriver) gen(names []uint32) {
	for i := range names {
		names[i] = d.nextName
		d.nextName++
	}
}

func (d *recordingDriver) ClearColor(r, g, b, a float32) { d.record("ClearColor(%g,%g,%g,%g)", r, g, b, a) }
func (d *recordingDriver) Clear(mask uint32) { d.record("Clear(0x%X)", mask) }
func (d *recordingDriver) DrawArrays(mode uint32, first, count int32) {
	d.record("DrawArrays(0x%X,%d,%d)", mode, first, count)
}
func (d *recordingDriver) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	d.record("DrawElements(0x%X,%d,0x%X,%d)", mode, count, xtype, offset)
}
func (d *recordingDriver) GetString(name uint32) string { return d.strings[name] }
func (d *recordingDriver) GetStringi(name, index uint32) string {
	d.record("GetStringi(0x%X,%d)", name, index)
	return d.stringsi[name][index]
}
func (d *recordingDriver) GetIntegerv(pname uint32, data []int32) { data[0] = d.integers[pname] }
func (d *recordingDriver) Viewport(x, y, w, h int32) { d.record("Viewport(%d,%d,%d,%d)", x, y, w, h) }
func (d *recordingDriver) Scissor(x, y, w, h int32) { d.record("Scissor(%d,%d,%d,%d)", x, y, w, h) }
func (d *recordingDriver) GetError() uint32 {
	if len(d.errors) == 0 {
		return 0
	}
	e := d.errors[0]
	d.errors = d.errors[1:]
	return e
}

func (d *recordingDriver) GenBuffers(b []uint32) {
	d.gen(b)
	d.record("GenBuffers(%d)", len(b))
}
func (d *recordingDriver) DeleteBuffers(b []uint32) { d.record("DeleteBuffers(%v)", b) }
func (d *recordingDriver) BindBuffer(target, buffer uint32) {
	d.record("BindBuffer(0x%X,%d)", target, buffer)
}
func (d *recordingDriver) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	d.bufferData = nil
	if data != nil {
		d.bufferData = append([]byte(nil), unsafe.Slice((*byte)(data), size)...)
	}
	d.record("BufferData(0x%X,%d,0x%X)", target, size, usage)
}
func (d *recordingDriver) GenVertexArrays(a []uint32) {
	d.gen(a)
	d.record("GenVertexArrays(%d)", len(a))
}
func (d *recordingDriver) DeleteVertexArrays(a []uint32) { d.record("DeleteVertexArrays(%v)", a) }
func (d *recordingDriver) BindVertexArray(a uint32) { d.record("BindVertexArray(%d)", a) }
func (d *recordingDriver) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	d.record("VertexAttribPointer(%d,%d,0x%X,%v,%d,%d)", index, size, xtype, normalized, stride, offset)
}
func (d *recordingDriver) VertexAttribIPointer(index uint32, size int32, xtype uint32, stride int32, offset uintptr) {
	d.record("VertexAttribIPointer(%d,%d,0x%X,%d,%d)", index, size, xtype, stride, offset)
}
func (d *recordingDriver) VertexAttribLPointer(index uint32, size int32, xtype uint32, stride int32, offset uintptr) {
	d.record("VertexAttribLPointer(%d,%d,0x%X,%d,%d)", index, size, xtype, stride, offset)
}
func (d *recordingDriver) EnableVertexAttribArray(i uint32) { d.record("EnableVertexAttribArray(%d)", i) }
func (d *recordingDriver) DisableVertexAttribArray(i uint32) { d.record("DisableVertexAttribArray(%d)", i) }

func (d *recordingDriver) Enable(c uint32) {
	d.enabled[c] = true
	d.record("Enable(0x%X)", c)
}
func (d *recordingDriver) Disable(c uint32) {
	d.enabled[c] = false
	d.record("Disable(0x%X)", c)
}
func (d *recordingDriver) IsEnabled(c uint32) bool { return d.enabled[c] }
func (d *recordingDriver) Enablei(c, index uint32) { d.record("Enablei(0x%X,%d)", c, index) }
func (d *recordingDriver) Disablei(c, index uint32) { d.record("Disablei(0x%X,%d)", c, index) }
func (d *recordingDriver) BlendFunc(s, dst uint32) { d.record("BlendFunc(0x%X,0x%X)", s, dst) }

func (d *recordingDriver) DebugMessageCallback(fn func(source, xtype, id, severity uint32, message string)) {
	d.debug = fn
	d.record("DebugMessageCallback(%v)", fn != nil)
}

func (d *recordingDriver) CreateShader(xtype uint32) uint32 {
	d.record("CreateShader(0x%X)", xtype)
	n := d.nextName
	d.nextName++
	return n
}
func (d *recordingDriver) ShaderSource(shader uint32, src string) {
	d.record("ShaderSource(%d,%q)", shader, src)
}
func (d *recordingDriver) CompileShader(shader uint32) { d.record("CompileShader(%d)", shader) }
func (d *recordingDriver) DeleteShader(shader uint32) { d.record("DeleteShader(%d)", shader) }
func (d *recordingDriver) GetShaderiv(shader, pname uint32) int32 {
	return d.shaderiv[pname]
}
func (d *recordingDriver) GetShaderInfoLog(shader uint32, buf []byte) int32 {
	return int32(copyLog(buf, d.infoLog))
}

func (d *recordingDriver) CreateProgram() uint32 {
	d.record("CreateProgram()")
	n := d.nextName
	d.nextName++
	return n
}
func (d *recordingDriver) AttachShader(p, s uint32) { d.record("AttachShader(%d,%d)", p, s) }
func (d *recordingDriver) DetachShader(p, s uint32) { d.record("DetachShader(%d,%d)", p, s) }
func (d *recordingDriver) LinkProgram(p uint32) { d.record("LinkProgram(%d)", p) }
func (d *recordingDriver) UseProgram(p uint32) { d.record("UseProgram(%d)", p) }
func (d *recordingDriver) DeleteProgram(p uint32) { d.record("DeleteProgram(%d)", p) }
func (d *recordingDriver) GetProgramiv(program, pname uint32) int32 {
	return d.programiv[pname]
}
func (d *recordingDriver) GetProgramInfoLog(program uint32, buf []byte) int32 {
	return int32(copyLog(buf, d.infoLog))
}
func (d *recordingDriver) GetUniformLocation(program uint32, name string) int32 {
	if loc, ok := d.uniforms[name]; ok {
		return loc
	}
	return -1
}
func (d *recordingDriver) Uniform1f(l int32, v0 float32) { d.record("Uniform1f(%d,%g)", l, v0) }
func (d *recordingDriver) Uniform1i(l int32, v0 int32) { d.record("Uniform1i(%d,%d)", l, v0) }
func (d *recordingDriver) Uniform4f(l int32, v0, v1, v2, v3 float32) {
	d.record("Uniform4f(%d,%g,%g,%g,%g)", l, v0, v1, v2, v3)
}

func (d *recordingDriver) GenTextures(t []uint32) {
	d.gen(t)
	d.record("GenTextures(%d)", len(t))
}
func (d *recordingDriver) DeleteTextures(t []uint32) { d.record("DeleteTextures(%v)", t) }
func (d *recordingDriver) BindTexture(target, texture uint32) {
	d.record("BindTexture(0x%X,%d)", target, texture)
}
func (d *recordingDriver) ActiveTexture(unit uint32) { d.record("ActiveTexture(0x%X)", unit) }
func (d *recordingDriver) TexParameteri(target, pname uint32, param int32) {
	d.record("TexParameteri(0x%X,0x%X,0x%X)", target, pname, param)
}
func (d *recordingDriver) TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels unsafe.Pointer) {
	d.bufferData = append([]byte(nil), unsafe.Slice((*byte)(pixels), int(width*height*4))...)
	d.record("TexImage2D(0x%X,%d,0x%X,%d,%d,0x%X,0x%X)", target, level, internalFormat, width, height, format, xtype)
}
func (d *recordingDriver) GenerateMipmap(target uint32) { d.record("GenerateMipmap(0x%X)", target) }

// copyLog behaves like glGet*InfoLog: it writes at most len(buf)-1 bytes plus a
// terminator and returns the count excluding the terminator.
func copyLog(buf []byte, log string) int {
	if len(buf) == 0 {
		return 0
	}
	n := copy(buf[:len(buf)-1], log)
	buf[n] = 0
	return n
}

var _ Driver = (*recordingDriver)(nil)
