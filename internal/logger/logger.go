package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oaktree-lab/shytrace/internal/config"
	"github.com/rs/zerolog"
)

// keepDays is how long daily log files are retained.
const keepDays = 7

var (
	// Log is the global logger instance. It discards everything until Init
	// succeeds.
	Log = zerolog.Nop()

	logFile *os.File
)

// Init initializes the logger. level is a zerolog level name; debug forces
// the debug level and mirrors records to stderr.
func Init(level string, debug bool) error {
	if err := config.EnsureLogsDir(); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	logLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}
	if debug {
		logLevel = zerolog.DebugLevel
	}

	f, err := openLogFile(config.GetLogsDir(), time.Now())
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	Close()
	logFile = f

	writers := []io.Writer{f}
	if debug {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	Log = zerolog.New(io.MultiWriter(writers...)).
		Level(logLevel).
		With().
		Timestamp().
		Str("app", "shytrace").
		Logger()

	Log.Debug().Str("level", logLevel.String()).Msg("Logger initialized")
	return nil
}

// Close closes the current log file and resets Log to discard.
func Close() error {
	Log = zerolog.Nop()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// logFileName returns the daily log file name for t
func logFileName(t time.Time) string {
	return fmt.Sprintf("shytrace-%s.log", t.Format("2006-01-02"))
}

// openLogFile opens the log file for the day of now and prunes old ones
func openLogFile(logsDir string, now time.Time) (*os.File, error) {
	logFilePath := filepath.Join(logsDir, logFileName(now))

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}

	go cleanOldLogs(logsDir, now.AddDate(0, 0, -keepDays))

	return logFile, nil
}

// cleanOldLogs removes .log files last modified before cutoff
func cleanOldLogs(logsDir string, cutoff time.Time) {
	files, err := os.ReadDir(logsDir)
	if err != nil {
		return
	}

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".log" {
			continue
		}

		info, err := file.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(filepath.Join(logsDir, file.Name()))
		}
	}
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	if len(args) == 0 {
		Log.Debug().Msg(format)
	} else {
		Log.Debug().Msgf(format, args...)
	}
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	if len(args) == 0 {
		Log.Info().Msg(format)
	} else {
		Log.Info().Msgf(format, args...)
	}
}

// Error logs an error message
func Error(msg string, err error) {
	Log.Error().Err(err).Msg(msg)
}
