package glw

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotIntegerType   = errors.New("type is not an integer type")
	ErrNotIndexable     = errors.New("capability cannot be enabled per index")
	ErrInvalidIndexType = errors.New("invalid index type")
)

// ErrorCode is a value returned by glGetError
type ErrorCode uint32

const (
	NoError                     ErrorCode = 0
	InvalidEnum                 ErrorCode = 0x0500
	InvalidValue                ErrorCode = 0x0501
	InvalidOperation            ErrorCode = 0x0502
	StackOverflow               ErrorCode = 0x0503
	StackUnderflow              ErrorCode = 0x0504
	OutOfMemory                 ErrorCode = 0x0505
	InvalidFramebufferOperation ErrorCode = 0x0506
)

func (e ErrorCode) String() string {
	switch e {
	case NoError:
		return "NO_ERROR"
	case InvalidEnum:
		return "INVALID_ENUM"
	case InvalidValue:
		return "INVALID_VALUE"
	case InvalidOperation:
		return "INVALID_OPERATION"
	case StackOverflow:
		return "STACK_OVERFLOW"
	case StackUnderflow:
		return "STACK_UNDERFLOW"
	case OutOfMemory:
		return "OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("Unknown(0x%04X)", uint32(e))
}

// Error holds every error flag which was set when CheckError was called
type Error struct {
	Codes []ErrorCode
}

func (e *Error) Error() string {
	s := make([]string, len(e.Codes))
	for i, c := range e.Codes {
		s[i] = c.String()
	}
	return "gl error: " + strings.Join(s, ", ")
}

// Is matches a bare ErrorCode, so errors.Is(err, glw.OutOfMemory) works
func (e *Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	if !ok {
		return false
	}
	for _, c := range e.Codes {
		if c == code {
			return true
		}
	}
	return false
}

func (e ErrorCode) Error() string {
	return e.String()
}

func (c *Context) GetError() ErrorCode {
	return ErrorCode(c.Driver.GetError())
}

// maxErrorFlags bounds CheckError in case the driver keeps reporting the same flag,
// which some do when there is no current context.
const maxErrorFlags = 16

// CheckError drains the driver's error flags and returns them as an *Error, or nil if
// none were set.
func (c *Context) CheckError() error {
	var codes []ErrorCode
	for i := 0; i < maxErrorFlags; i++ {
		code := c.GetError()
		if code == NoError {
			break
		}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil
	}
	return &Error{Codes: codes}
}

var errNoName = errors.New("driver returned no name")

// creationError explains why a Create* call returned 0
func (c *Context) creationError() error {
	if err := c.CheckError(); err != nil {
		return err
	}
	return errNoName
}
