/*
Package glw implements a thin, typed layer atop OpenGL for go. OpenGL speaks in raw integers: every
object is an unsigned handle and every parameter is a GLenum, so nothing stops an application from
binding a texture name as a buffer or passing a blend factor where a primitive mode was expected.

This package does not try to hide OpenGL. Every call maps one-to-one onto a driver entry point, the
only additions being:

	1. closed enumerations (Usage, DrawMode, Capability, TextureProp, ...) in place of raw GLenums
	2. distinct handle types (Buffer, VertexArray, Shader, Program, Texture) which cannot be mixed
	   up without an explicit conversion
	3. info logs, driver strings and debug output delivered as go strings and closures rather
	   than C strings and C callbacks

About the driver

All calls go through the Driver interface which is held by a Context. The glcore package provides
the real driver on top of github.com/go-gl/gl, and must be initialized after an OpenGL context has
been made current on the calling thread:

	window.MakeContextCurrent()
	driver, err := glcore.New()
	if err != nil {
		...
	}
	ctx := glw.NewContext(driver, glw.WithLogger(logger))

OpenGL contexts are bound to a single OS thread, so the same rules apply to a Context: call
runtime.LockOSThread before creating one and use it from that goroutine only. The one exception is
the debug callback, which drivers may deliver from their own threads when DebugOutputSynchronous is
disabled.

Native OpenGL terms
	Buffer		a hunk of driver memory holding vertex, index or other data
	VertexArray	a record of which buffers feed which vertex attributes
	Shader		a single compiled stage (vertex, fragment, ...)
	Program		a set of linked shaders which can be used for drawing
	Texture		image data which can be sampled by shaders
	Capability	a piece of fixed function state toggled with Enable/Disable

Nothing in this package tracks object lifetimes, it is up to the application to delete what it
creates.
*/
package glw
