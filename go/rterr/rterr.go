// Package rterr augments errors with call stacks so that the point of
// failure is recorded without the caller having to thread context
// strings through every return. Use Wrap when passing an error up the
// stack, Wrapf to add context, and Fmt to create a new error.
//
//	if err := doSomething(); err != nil {
//		return rterr.Wrapf(err, "doing something with %q", name)
//	}
package rterr

import (
	"fmt"
	"runtime"
	"strings"
)

// ErrorWithStack is an error plus the call stack at the point where it
// was created or first wrapped.
type ErrorWithStack struct {
	// Wrapped is the underlying error, or nil if this error was created
	// by Fmt.
	Wrapped error

	// CallStack captures the callers of the rterr function that made
	// this error, innermost first.
	CallStack []StackFrame

	// Message is the formatted context string, empty for plain Wrap.
	Message string
}

// StackFrame is one level of a call stack.
type StackFrame struct {
	File string
	Line int
}

// String returns the frame as "file:line", with the file trimmed to its
// last path component.
func (f StackFrame) String() string {
	file := f.File
	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		file = file[i+1:]
	}
	return fmt.Sprintf("%s:%d", file, f.Line)
}

// Error implements the error interface.
func (e *ErrorWithStack) Error() string {
	var sb strings.Builder
	if e.Message != "" {
		sb.WriteString(e.Message)
		if e.Wrapped != nil {
			sb.WriteString(": ")
		}
	}
	if e.Wrapped != nil {
		sb.WriteString(e.Wrapped.Error())
	}
	sb.WriteString(" At")
	for _, f := range e.CallStack {
		sb.WriteString(" ")
		sb.WriteString(f.String())
	}
	return sb.String()
}

// Unwrap returns the wrapped error, making errors.Is and errors.As see
// through rterr wrapping.
func (e *ErrorWithStack) Unwrap() error {
	return e.Wrapped
}

// CallStack returns up to height frames of the caller's stack, skipping
// the given number of levels; skip=0 reports the caller of CallStack.
func CallStack(height, skip int) []StackFrame {
	frames := make([]StackFrame, 0, height)
	for i := 0; i < height; i++ {
		_, file, line, ok := runtime.Caller(skip + i + 1)
		if !ok {
			break
		}
		frames = append(frames, StackFrame{File: file, Line: line})
	}
	return frames
}

// Wrap returns an error that records the caller's stack. Returns nil if
// err is nil so that it can be applied to any return value. If err is
// already an *ErrorWithStack it is returned unchanged; the first wrap
// site is the interesting one.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*ErrorWithStack); ok {
		return err
	}
	return &ErrorWithStack{
		Wrapped:   err,
		CallStack: CallStack(stackHeight, 1),
	}
}

// Wrapf is Wrap with printf-style context prepended to the message.
// Unlike Wrap it always adds a layer, since the context is new
// information. Returns nil if err is nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ErrorWithStack{
		Wrapped:   err,
		CallStack: CallStack(stackHeight, 1),
		Message:   fmt.Sprintf(format, args...),
	}
}

// Fmt creates a new error with a call stack, analogous to fmt.Errorf.
func Fmt(format string, args ...interface{}) error {
	return &ErrorWithStack{
		CallStack: CallStack(stackHeight, 1),
		Message:   fmt.Sprintf(format, args...),
	}
}

// Unwrap returns the innermost non-rterr error, for callers that need
// the original value rather than one Unwrap level.
func Unwrap(err error) error {
	for {
		e, ok := err.(*ErrorWithStack)
		if !ok || e.Wrapped == nil {
			return err
		}
		err = e.Wrapped
	}
}

// stackHeight limits how many frames each error carries. Deep stacks
// add noise without aiding diagnosis.
const stackHeight = 6
