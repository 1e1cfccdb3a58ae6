// This module implements functions which construct errors that carry the
// stack trace of their creation site.
//
// NOTE: This package intentionally mirrors the standard "errors" module.
// All code in this repository should use this.
package errors

import (
	"bytes"
	"fmt"
	"runtime"
	"sync"
)

// This interface exposes additional information about the error.
type DumpError interface {
	// This returns the error message without the stack trace.
	GetMessage() string

	// This returns the wrapped error.  This returns nil if this does not
	// wrap another error.
	GetInner() error

	// Implements the built-in error interface.
	Error() string

	// Returns a string representation of the stack captured when the
	// error was constructed, one frame per line.
	GetStack() string
}

// Standard struct for general types of errors.
type baseError struct {
	msg   string
	inner error

	stack      []uintptr
	framesOnce sync.Once
	frames     []runtime.Frame
}

// This returns a string with all available error information, including
// inner errors that are wrapped by this error.
func (e *baseError) Error() string {
	return extractFullErrorMessage(e, true)
}

// Implements DumpError interface.
func (e *baseError) GetMessage() string {
	return e.msg
}

// Implements DumpError interface.
func (e *baseError) GetInner() error {
	return e.inner
}

// Implements DumpError interface.
func (e *baseError) GetStack() string {
	e.framesOnce.Do(func() {
		iter := runtime.CallersFrames(e.stack)
		for {
			frame, more := iter.Next()
			e.frames = append(e.frames, frame)
			if !more {
				break
			}
		}
	})

	buf := bytes.NewBuffer(make([]byte, 0, 256))
	for _, frame := range e.frames {
		_, _ = buf.WriteString(frame.Function)
		_, _ = buf.WriteString("\n")
		fmt.Fprintf(buf, "\t%s:%d +0x%x\n", frame.File, frame.Line, frame.PC)
	}
	return buf.String()
}

// This returns a new baseError initialized with the given message and
// the current stack trace.
func New(msg string) DumpError {
	return newBaseError(nil, msg)
}

// Same as New, but with fmt.Printf-style parameters.
func Newf(format string, args ...interface{}) DumpError {
	return newBaseError(nil, fmt.Sprintf(format, args...))
}

// Wraps another error in a new baseError.
func Wrap(err error, msg string) DumpError {
	return newBaseError(err, msg)
}

// Same as Wrap, but with fmt.Printf-style parameters.
func Wrapf(err error, format string, args ...interface{}) DumpError {
	return newBaseError(err, fmt.Sprintf(format, args...))
}

// Note that if there is more than one level of redirection to call this
// function, stack frame information will include that level too.
func newBaseError(err error, msg string) *baseError {
	stack := make([]uintptr, 64)
	stackLength := runtime.Callers(3, stack)
	return &baseError{
		msg:   msg,
		stack: stack[:stackLength],
		inner: err,
	}
}

// Constructs the full error message for a given DumpError by traversing
// all of its inner errors. If includeStack is true it will also include
// the stack trace from the deepest DumpError in the chain.
func extractFullErrorMessage(e DumpError, includeStack bool) string {
	var lastDumpErr DumpError
	errMsg := bytes.NewBuffer(make([]byte, 0, 1024))

	dumpErr := e
	for {
		lastDumpErr = dumpErr
		errMsg.WriteString(dumpErr.GetMessage())

		innerErr := dumpErr.GetInner()
		if innerErr == nil {
			break
		}
		inner, ok := innerErr.(DumpError)
		if !ok {
			// We have reached the innermost non-DumpError.  Add its
			// message and exit the loop.
			errMsg.WriteString("\n")
			errMsg.WriteString(innerErr.Error())
			break
		}
		errMsg.WriteString("\n")
		dumpErr = inner
	}
	if includeStack {
		errMsg.WriteString("\nORIGINAL STACK TRACE:\n")
		errMsg.WriteString(lastDumpErr.GetStack())
	}
	return errMsg.String()
}
