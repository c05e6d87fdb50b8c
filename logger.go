package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// levelWriter forwards only events at or above min to w.
type levelWriter struct {
	w   io.Writer
	min zerolog.Level
}

func (lw *levelWriter) Write(p []byte) (int, error) {
	return lw.w.Write(p)
}

func (lw *levelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < lw.min {
		return len(p), nil
	}
	return lw.w.Write(p)
}

// newLogger builds a logger writing to console and file with their own
// minimum levels.
func newLogger(console, file io.Writer, consoleLevel, fileLevel zerolog.Level) zerolog.Logger {
	multi := zerolog.MultiLevelWriter(
		&levelWriter{w: console, min: consoleLevel},
		&levelWriter{w: file, min: fileLevel},
	)

	global := min(consoleLevel, fileLevel)

	return zerolog.New(multi).Level(global).With().Timestamp().Caller().Logger()
}

// initLogger initializes the global logger with console and file outputs.
// Console outputs human-readable text at cfg.ConsoleLevel and above.
// File outputs JSON at cfg.LogLevel and above with log rotation.
// Returns a cleanup function to close the log file.
func initLogger(cfg *Config) (func(), error) {
	if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
		return nil, err
	}

	logPath := filepath.Join(cfg.LogDir, "go-service.log")

	// lumberjack handles log rotation
	lj := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10,   // 10MB
		MaxBackups: 3,    // 3 backups
		LocalTime:  true, // Use local time for backup file names
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.DateTime, NoColor: true}

	log.Logger = newLogger(console, lj, cfg.ConsoleLevel, cfg.LogLevel)

	cleanup := func() {
		if err := lj.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close log file")
		}
	}

	return cleanup, nil
}
