package glw

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Context forwards typed calls to a Driver. A Context must only be used from the thread
// which owns the underlying OpenGL context.
type Context struct {
	Driver Driver

	log *zap.Logger

	debugMu       sync.RWMutex
	debugCallback DebugCallback
}

type Option func(*Context)

// WithLogger sets the logger used for diagnostics, the default discards everything
func WithLogger(log *zap.Logger) Option {
	return func(c *Context) {
		if log != nil {
			c.log = log
		}
	}
}

func NewContext(driver Driver, opts ...Option) *Context {
	c := &Context{
		Driver: driver,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Logger returns the logger the context was created with
func (c *Context) Logger() *zap.Logger {
	return c.log
}

func (c *Context) String() string {
	return fmt.Sprintf("{ Driver: %T }", c.Driver)
}
