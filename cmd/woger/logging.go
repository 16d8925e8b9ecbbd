package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const (
	logDir      = "logs"
	logFileName = "woger.log"
	maxLogSize  = 10 * 1024 * 1024
)

var renameFile = os.Rename

// setupLogging routes the logger to logs/woger.log when debug is set, rotating a file
// larger than maxLogSize aside first. The terminal belongs to the renderer, so nothing
// is ever written to stdout or stderr. An empty level logs from debug up.
// Returns the open file, nil when disabled.
func setupLogging(debug bool, level string) (*log.Logger, *os.File) {
	if !debug {
		return log.New(io.Discard), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return log.New(io.Discard), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	var rotateErr error
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("woger-%s.log", time.Now().Format("20060102-150405")))
		rotateErr = renameFile(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return log.New(io.Discard), nil
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Prefix:          "woger",
	})
	lvl := log.DebugLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			logger.Warn("unknown log level, using debug", "level", level)
		} else {
			lvl = parsed
		}
	}
	logger.SetLevel(lvl)

	if rotateErr != nil {
		logger.Error("log rotation failed, appending", "err", rotateErr)
	}
	return logger, f
}
