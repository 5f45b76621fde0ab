package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	cblog "github.com/charmbracelet/log"
)

// Logger writes styled records to stderr and plain timestamped records to
// the session log file. The file path is fixed for the process lifetime.
type Logger struct {
	console *cblog.Logger
	file    *cblog.Logger
	path    string
}

var (
	logger     *Logger
	initLogger sync.Once
)

// GetLogger returns a logger instance, creating the session log file on
// first use.
func GetLogger() *Logger {
	initLogger.Do(func() {
		styles := cblog.DefaultStyles()
		styles.Levels[cblog.FatalLevel] = lipgloss.NewStyle().
			SetString(" FATAL").
			Foreground(lipgloss.Color("1"))
		styles.Levels[cblog.ErrorLevel] = lipgloss.NewStyle().
			SetString(" ERROR").
			Foreground(lipgloss.Color("9"))
		styles.Levels[cblog.WarnLevel] = lipgloss.NewStyle().
			SetString("  WARN").
			Foreground(lipgloss.Color("3"))
		styles.Levels[cblog.InfoLevel] = lipgloss.NewStyle().
			SetString("  INFO").
			Foreground(lipgloss.Color("2"))
		styles.Levels[cblog.DebugLevel] = lipgloss.NewStyle().
			SetString(" DEBUG").
			Foreground(lipgloss.Color("4"))

		console := cblog.New(os.Stderr)
		console.SetStyles(styles)
		console.SetReportTimestamp(false)
		console.SetLevel(cblog.DebugLevel)

		path := filepath.Join(os.TempDir(),
			fmt.Sprintf("capsesc_%s.log", time.Now().Format("20060102_150405")))

		logger = &Logger{console: console, path: path}

		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			console.Warnf("could not open session log %s: %v", path, err)
			return
		}
		file := cblog.New(f)
		file.SetReportTimestamp(true)
		file.SetTimeFormat(time.RFC3339)
		file.SetLevel(cblog.DebugLevel)
		logger.file = file
	})
	return logger
}

// Path returns the session log file location.
func (l *Logger) Path() string { return l.path }

func (l *Logger) Debug(msg interface{}, keyvals ...interface{}) {
	if l.file != nil {
		l.file.Debug(msg, keyvals...)
	}
	l.console.Debug(msg, keyvals...)
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.file != nil {
		l.file.Debugf(format, v...)
	}
	l.console.Debugf(format, v...)
}

func (l *Logger) Info(msg interface{}, keyvals ...interface{}) {
	if l.file != nil {
		l.file.Info(msg, keyvals...)
	}
	l.console.Info(msg, keyvals...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	if l.file != nil {
		l.file.Infof(format, v...)
	}
	l.console.Infof(format, v...)
}

func (l *Logger) Warn(msg interface{}, keyvals ...interface{}) {
	if l.file != nil {
		l.file.Warn(msg, keyvals...)
	}
	l.console.Warn(msg, keyvals...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	if l.file != nil {
		l.file.Warnf(format, v...)
	}
	l.console.Warnf(format, v...)
}

func (l *Logger) Error(msg interface{}, keyvals ...interface{}) {
	if l.file != nil {
		l.file.Error(msg, keyvals...)
	}
	l.console.Error(msg, keyvals...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	if l.file != nil {
		l.file.Errorf(format, v...)
	}
	l.console.Errorf(format, v...)
}

// Fatal logs to both sinks and exits with status 1.
func (l *Logger) Fatal(msg interface{}, keyvals ...interface{}) {
	if l.file != nil {
		l.file.Error(msg, keyvals...)
	}
	l.console.Fatal(msg, keyvals...)
}

func (l *Logger) Fatalf(format string, v ...interface{}) {
	if l.file != nil {
		l.file.Errorf(format, v...)
	}
	l.console.Fatalf(format, v...)
}

// * Convenience wrappers

func Debug(msg interface{}, keyvals ...interface{}) { GetLogger().Debug(msg, keyvals...) }
func Debugf(format string, v ...interface{})        { GetLogger().Debugf(format, v...) }
func Info(msg interface{}, keyvals ...interface{})  { GetLogger().Info(msg, keyvals...) }
func Infof(format string, v ...interface{})         { GetLogger().Infof(format, v...) }
func Warn(msg interface{}, keyvals ...interface{})  { GetLogger().Warn(msg, keyvals...) }
func Warnf(format string, v ...interface{})         { GetLogger().Warnf(format, v...) }
func Error(msg interface{}, keyvals ...interface{}) { GetLogger().Error(msg, keyvals...) }
func Errorf(format string, v ...interface{})        { GetLogger().Errorf(format, v...) }
func Fatal(msg interface{}, keyvals ...interface{}) { GetLogger().Fatal(msg, keyvals...) }
func Fatalf(format string, v ...interface{})        { GetLogger().Fatalf(format, v...) }
