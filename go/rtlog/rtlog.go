// Package rtlog defines the logging functions (e.g. Info, Errorf, etc.) used
// throughout retree. By default logs are written to stderr; tests and
// applications can install a different backend via rtlogimpl.SetLogger.
package rtlog

import (
	"os"

	logger "github.com/jcgregorio/logger"

	"github.com/rcedgar/retree/go/rtlog/rtlogimpl"
)

// WE MUST CALL SetLogger in an init function; otherwise there's a very good
// chance of getting a nil pointer panic.
func init() {
	rtlogimpl.SetLogger(NewStdLogger(os.Stderr))
}

type stdlog struct {
	logger *logger.Logger
}

// NewStdLogger returns a rtlogimpl.Logger that writes to a SyncWriter, such
// as os.Stdout or os.Stderr.
func NewStdLogger(dst logger.SyncWriter) rtlogimpl.Logger {
	l := logger.NewFromOptions(&logger.Options{
		SyncWriter:   dst,
		DepthDelta:   3,
		IncludeDebug: true,
	})
	return &stdlog{
		logger: l,
	}
}

// Log implements rtlogimpl.Logger.
func (s *stdlog) Log(_ int, severity rtlogimpl.Severity, fmt string, args ...interface{}) {
	switch severity {
	case rtlogimpl.Debug:
		if fmt == "" {
			s.logger.Debug(args...)
		} else {
			s.logger.Debugf(fmt, args...)
		}
	case rtlogimpl.Info:
		if fmt == "" {
			s.logger.Info(args...)
		} else {
			s.logger.Infof(fmt, args...)
		}
	case rtlogimpl.Warning:
		if fmt == "" {
			s.logger.Warning(args...)
		} else {
			s.logger.Warningf(fmt, args...)
		}
	case rtlogimpl.Error:
		if fmt == "" {
			s.logger.Error(args...)
		} else {
			s.logger.Errorf(fmt, args...)
		}
	case rtlogimpl.Fatal:
		if fmt == "" {
			s.logger.Fatal(args...)
		} else {
			s.logger.Fatalf(fmt, args...)
		}
	default:
		s.logger.Errorf(fmt, args...)
	}
}

// Flush implements rtlogimpl.Logger.
func (s *stdlog) Flush() {
	// noop
}

// Functions to log at various levels.
// Debug, Info, Warning, Error, and Fatal use fmt.Sprint to format the
// arguments.
// Functions ending in f use fmt.Sprintf to format the arguments.
// Functions ending in WithDepth allow the caller to change where the
// stacktrace starts. 0 (the default in all other calls) means to report
// starting at the caller. 1 would mean one level above, the caller's caller.
func Debug(msg ...interface{}) {
	rtlogimpl.Log(1, rtlogimpl.Debug, "", msg...)
}

func Debugf(format string, v ...interface{}) {
	rtlogimpl.Log(1, rtlogimpl.Debug, format, v...)
}

func DebugfWithDepth(depth int, format string, v ...interface{}) {
	rtlogimpl.Log(1+depth, rtlogimpl.Debug, format, v...)
}

func Info(msg ...interface{}) {
	rtlogimpl.Log(1, rtlogimpl.Info, "", msg...)
}

func Infof(format string, v ...interface{}) {
	rtlogimpl.Log(1, rtlogimpl.Info, format, v...)
}

func InfofWithDepth(depth int, format string, v ...interface{}) {
	rtlogimpl.Log(1+depth, rtlogimpl.Info, format, v...)
}

func Warning(msg ...interface{}) {
	rtlogimpl.Log(1, rtlogimpl.Warning, "", msg...)
}

func Warningf(format string, v ...interface{}) {
	rtlogimpl.Log(1, rtlogimpl.Warning, format, v...)
}

func WarningfWithDepth(depth int, format string, v ...interface{}) {
	rtlogimpl.Log(1+depth, rtlogimpl.Warning, format, v...)
}

func Error(msg ...interface{}) {
	rtlogimpl.Log(1, rtlogimpl.Error, "", msg...)
}

func Errorf(format string, v ...interface{}) {
	rtlogimpl.Log(1, rtlogimpl.Error, format, v...)
}

func ErrorfWithDepth(depth int, format string, v ...interface{}) {
	rtlogimpl.Log(1+depth, rtlogimpl.Error, format, v...)
}

// Fatal* exits the program after logging.
func Fatal(msg ...interface{}) {
	rtlogimpl.Log(1, rtlogimpl.Fatal, "", msg...)
}

func Fatalf(format string, v ...interface{}) {
	rtlogimpl.Log(1, rtlogimpl.Fatal, format, v...)
}

func FatalfWithDepth(depth int, format string, v ...interface{}) {
	rtlogimpl.Log(1+depth, rtlogimpl.Fatal, format, v...)
}

func Flush() {
	rtlogimpl.Flush()
}
