// Package rtlogimpl defines the interface for logging backends and holds
// the currently installed one.
package rtlogimpl

// Severity identifies the sort of log: debug, info, warning etc.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
	Fatal
)

// Logger is the interface all logging backends must implement.
//
// depth is the number of stack frames to skip over when reporting the
// calling function, where 0 means the caller of Log. If format is the empty
// string then args are formatted as fmt.Sprint would, otherwise as
// fmt.Sprintf would.
type Logger interface {
	Log(depth int, severity Severity, format string, args ...interface{})

	// Flush any buffered log lines.
	Flush()
}

var impl Logger

// SetLogger changes the backend the rtlog package functions write to. It
// returns the previously installed Logger so tests can restore it.
func SetLogger(l Logger) Logger {
	prev := impl
	impl = l
	return prev
}

// Log dispatches to the installed backend.
func Log(depth int, severity Severity, format string, args ...interface{}) {
	impl.Log(depth, severity, format, args...)
}

// Flush flushes any buffered log lines on the installed backend.
func Flush() {
	impl.Flush()
}
