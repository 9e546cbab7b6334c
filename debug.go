package glw

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugSource is where a debug message was generated
type DebugSource uint32

const (
	DebugSourceAPI            DebugSource = 0x8246
	DebugSourceWindowSystem   DebugSource = 0x8247
	DebugSourceShaderCompiler DebugSource = 0x8248
	DebugSourceThirdParty     DebugSource = 0x8249
	DebugSourceApplication    DebugSource = 0x824A
	DebugSourceOther          DebugSource = 0x824B
)

func (s DebugSource) String() string {
	switch s {
	case DebugSourceAPI:
		return "API"
	case DebugSourceWindowSystem:
		return "WindowSystem"
	case DebugSourceShaderCompiler:
		return "ShaderCompiler"
	case DebugSourceThirdParty:
		return "ThirdParty"
	case DebugSourceApplication:
		return "Application"
	case DebugSourceOther:
		return "Other"
	}
	return fmt.Sprintf("Unknown(0x%04X)", uint32(s))
}

// DebugType is the kind of event a debug message reports
type DebugType uint32

const (
	DebugTypeError              DebugType = 0x824C
	DebugTypeDeprecatedBehavior DebugType = 0x824D
	DebugTypeUndefinedBehavior  DebugType = 0x824E
	DebugTypePortability        DebugType = 0x824F
	DebugTypePerformance        DebugType = 0x8250
	DebugTypeOther              DebugType = 0x8251
	DebugTypeMarker             DebugType = 0x8268
	DebugTypePushGroup          DebugType = 0x8269
	DebugTypePopGroup           DebugType = 0x826A
)

func (t DebugType) String() string {
	switch t {
	case DebugTypeError:
		return "Error"
	case DebugTypeDeprecatedBehavior:
		return "DeprecatedBehavior"
	case DebugTypeUndefinedBehavior:
		return "UndefinedBehavior"
	case DebugTypePortability:
		return "Portability"
	case DebugTypePerformance:
		return "Performance"
	case DebugTypeOther:
		return "Other"
	case DebugTypeMarker:
		return "Marker"
	case DebugTypePushGroup:
		return "PushGroup"
	case DebugTypePopGroup:
		return "PopGroup"
	}
	return fmt.Sprintf("Unknown(0x%04X)", uint32(t))
}

// DebugSeverity is how important a debug message is
type DebugSeverity uint32

const (
	DebugSeverityHigh         DebugSeverity = 0x9146
	DebugSeverityMedium       DebugSeverity = 0x9147
	DebugSeverityLow          DebugSeverity = 0x9148
	DebugSeverityNotification DebugSeverity = 0x826B
)

func (s DebugSeverity) String() string {
	switch s {
	case DebugSeverityHigh:
		return "High"
	case DebugSeverityMedium:
		return "Medium"
	case DebugSeverityLow:
		return "Low"
	case DebugSeverityNotification:
		return "Notification"
	}
	return fmt.Sprintf("Unknown(0x%04X)", uint32(s))
}

// rank orders severities from Notification (0) to High (3). The enum values themselves
// are not ordered. Unknown severities rank above High so they are never filtered out.
func (s DebugSeverity) rank() int {
	switch s {
	case DebugSeverityNotification:
		return 0
	case DebugSeverityLow:
		return 1
	case DebugSeverityMedium:
		return 2
	case DebugSeverityHigh:
		return 3
	}
	return 4
}

// AtLeast reports whether s is as severe as threshold or more
func (s DebugSeverity) AtLeast(threshold DebugSeverity) bool {
	return s.rank() >= threshold.rank()
}

// DebugMessage is a single message delivered by the driver's debug output
type DebugMessage struct {
	Source   DebugSource
	Type     DebugType
	Severity DebugSeverity
	ID       uint32
	Message  string
}

func (m DebugMessage) String() string {
	return fmt.Sprintf("[%s/%s/%s] %d: %s", m.Source, m.Type, m.Severity, m.ID, m.Message)
}

type DebugCallback func(msg DebugMessage)

// SetDebugCallback routes the driver's debug output to fn, a nil fn removes the current
// callback. DebugOutput must also be enabled for the driver to produce any messages.
func (c *Context) SetDebugCallback(fn DebugCallback) {
	c.debugMu.Lock()
	c.debugCallback = fn
	c.debugMu.Unlock()

	if fn == nil {
		c.Driver.DebugMessageCallback(nil)
		return
	}
	c.Driver.DebugMessageCallback(c.dispatchDebugMessage)
}

// dispatchDebugMessage is handed to the driver. Raw values are carried over verbatim, the
// enum types render values they do not know as Unknown rather than failing.
func (c *Context) dispatchDebugMessage(source, xtype, id, severity uint32, message string) {
	c.debugMu.RLock()
	fn := c.debugCallback
	c.debugMu.RUnlock()
	if fn == nil {
		return
	}
	fn(DebugMessage{
		Source:   DebugSource(source),
		Type:     DebugType(xtype),
		Severity: DebugSeverity(severity),
		ID:       id,
		Message:  message,
	})
}

// EnableDebugOutput turns on synchronous debug output and routes it to fn
func (c *Context) EnableDebugOutput(fn DebugCallback) {
	c.Enable(DebugOutput)
	c.Enable(DebugOutputSynchronous)
	c.SetDebugCallback(fn)
}

// FilterSeverity wraps fn so it only sees messages at least as severe as threshold
func FilterSeverity(threshold DebugSeverity, fn DebugCallback) DebugCallback {
	return func(msg DebugMessage) {
		if msg.Severity.AtLeast(threshold) {
			fn(msg)
		}
	}
}

// LogDebugMessages returns a callback which writes messages to log, choosing the level
// from the message severity.
func LogDebugMessages(log *zap.Logger) DebugCallback {
	return func(msg DebugMessage) {
		if ce := log.Check(severityLevel(msg.Severity), msg.Message); ce != nil {
			ce.Write(
				zap.Stringer("source", msg.Source),
				zap.Stringer("type", msg.Type),
				zap.Stringer("severity", msg.Severity),
				zap.Uint32("id", msg.ID),
			)
		}
	}
}

func severityLevel(s DebugSeverity) zapcore.Level {
	switch s {
	case DebugSeverityHigh:
		return zapcore.ErrorLevel
	case DebugSeverityMedium:
		return zapcore.WarnLevel
	case DebugSeverityLow:
		return zapcore.InfoLevel
	case DebugSeverityNotification:
		return zapcore.DebugLevel
	}
	return zapcore.WarnLevel
}

// UseDefaultDebugCallback enables debug output and logs every message with the
// context's logger.
func (c *Context) UseDefaultDebugCallback() {
	c.EnableDebugOutput(LogDebugMessages(c.log.Named("gl")))
}
