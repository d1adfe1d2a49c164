package log

import (
	"fmt"
)

// InitializeConsoleLogger sets up a stdout-only logger. Used when no Google
// Cloud project is configured and in tests.
func InitializeConsoleLogger() Log {
	if logger != nil {
		return logger
	}

	logger = &consoleLogger{}
	return logger
}

type consoleLogger struct{}

var severityMarkers = map[Severity]string{
	Default:  "-",
	Debug:    "D",
	Info:     "I",
	Notice:   "N",
	Warning:  "W",
	Error:    "E",
	Critical: "X",
}

func (cl *consoleLogger) Close() error {
	return nil
}

func (cl *consoleLogger) Log(l Labeler, message string, severity Severity) {
	fmt.Printf("%s [%s] %s\n", timestamp(), severityMarkers[severity], message)
}

func (cl *consoleLogger) Rawf(severity Severity, format string, args ...any) {
	cl.Log(nil, fmt.Sprintf(format, args...), severity)
}

func (cl *consoleLogger) Default(l Labeler, message any) {
	cl.Defaultf(l, "%s", message)
}

func (cl *consoleLogger) Defaultf(l Labeler, format string, args ...any) {
	cl.Log(l, fmt.Sprintf(format, args...), Default)
}

func (cl *consoleLogger) Debug(l Labeler, message any) {
	cl.Debugf(l, "%s", message)
}

func (cl *consoleLogger) Debugf(l Labeler, format string, args ...any) {
	cl.Log(l, fmt.Sprintf(format, args...), Debug)
}

func (cl *consoleLogger) Info(l Labeler, message any) {
	cl.Infof(l, "%s", message)
}

func (cl *consoleLogger) Infof(l Labeler, format string, args ...any) {
	cl.Log(l, fmt.Sprintf(format, args...), Info)
}

func (cl *consoleLogger) Notice(l Labeler, message any) {
	cl.Noticef(l, "%s", message)
}

func (cl *consoleLogger) Noticef(l Labeler, format string, args ...any) {
	cl.Log(l, fmt.Sprintf(format, args...), Notice)
}

func (cl *consoleLogger) Warning(l Labeler, message any) {
	cl.Warningf(l, "%s", message)
}

func (cl *consoleLogger) Warningf(l Labeler, format string, args ...any) {
	cl.Log(l, fmt.Sprintf(format, args...), Warning)
}

func (cl *consoleLogger) Error(l Labeler, message any) {
	cl.Errorf(l, "%s", message)
}

func (cl *consoleLogger) Errorf(l Labeler, format string, args ...any) {
	cl.Log(l, fmt.Sprintf(format, args...), Error)
}

func (cl *consoleLogger) Critical(l Labeler, message any) {
	cl.Criticalf(l, "%s", message)
}

func (cl *consoleLogger) Criticalf(l Labeler, format string, args ...any) {
	cl.Log(l, fmt.Sprintf(format, args...), Critical)
}
