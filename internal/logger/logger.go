package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. It is usable before InitLogger runs.
var Log = logrus.New()

// logFile is the file opened by the last InitLogger call, if any.
var logFile *os.File

// InitLogger sets the level and output of Log. Output goes to stderr and,
// when filePath is set, is appended to that file as well. A file opened by a
// previous call is closed.
func InitLogger(levelStr string, filePath string) error {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	writers := []io.Writer{os.Stderr}
	if filePath != "" {
		if dir := filepath.Dir(filePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create log directory: %w", err)
			}
		}
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, file)
		Log.SetOutput(io.MultiWriter(writers...))
		closeLogFile()
		logFile = file
		return nil
	}
	Log.SetOutput(io.MultiWriter(writers...))
	closeLogFile()

	return nil
}

// Close releases the log file, if one is open, and sends output back to stderr.
func Close() error {
	Log.SetOutput(os.Stderr)
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

func closeLogFile() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
