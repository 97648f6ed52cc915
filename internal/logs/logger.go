package logs

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var (
	logger     *log.Logger
	fileLogger *log.Logger
	fileWriter *RotatingWriter
)

// NewLogger builds a logger with murmur's defaults. If w is nil, logs to
// stderr. Core packages receive one of these via their constructors; they
// never reach for the package-level logger.
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	l := log.NewWithOptions(w, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: false,
		ReportCaller:    false,
	})

	if verbose {
		l.SetLevel(log.DebugLevel)
	}

	return l
}

// InitLogger initializes the global logger used by the cmd layer.
func InitLogger(w io.Writer, verbose bool) {
	logger = NewLogger(w, verbose)
}

// Logger returns the global logger, initializing it with defaults if
// InitLogger has not run yet.
func Logger() *log.Logger {
	if logger == nil {
		InitLogger(nil, false)
	}
	return logger
}

// OpenSession starts the on-disk session log at FilePath. The file records
// at debug level with timestamps regardless of the console verbosity, so a
// failed run can be inspected after the fact. The previous session rotates
// out.
func OpenSession() error {
	w, err := NewRotatingWriter(FilePath())
	if err != nil {
		return err
	}
	fileWriter = w
	fileLogger = log.NewWithOptions(w, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
	})
	return nil
}

// CloseSession closes the session log file. Safe to call when no session is
// open.
func CloseSession() {
	if fileWriter != nil {
		fileWriter.Close()
		fileWriter = nil
		fileLogger = nil
	}
}

// Debug logs through the console logger and, when a session is open, the
// session file.
func Debug(msg string, args ...any) {
	if logger != nil {
		logger.Debug(msg, args...)
	}
	if fileLogger != nil {
		fileLogger.Debug(msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
	if fileLogger != nil {
		fileLogger.Warn(msg, args...)
	}
}
