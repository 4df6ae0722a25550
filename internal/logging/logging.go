// Package logging configures the process-wide standard logger.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ziadkadry99/moviemood/internal/config"
)

// Setup points the standard logger at stderr and, when cfg.File is set, at a
// rotating log file as well. The returned closer flushes the file writer.
func Setup(cfg config.LogConfig, verbose bool) (io.Closer, error) {
	flags := log.LstdFlags
	if verbose {
		flags |= log.Lshortfile
	}
	log.SetFlags(flags)

	if cfg.File == "" {
		log.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	fileWriter := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	log.SetOutput(io.MultiWriter(os.Stderr, fileWriter))
	return fileWriter, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
