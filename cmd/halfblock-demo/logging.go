package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/halfblock/engine"
)

// maxLogSize triggers rotation of an existing log file at startup
const maxLogSize = 10 * 1024 * 1024

// setupLogging routes engine logs to path as slog text
// Empty path keeps the engine's nop logger; stdout is the canvas and is never used
func setupLogging(path string, level slog.Level) (*os.File, error) {
	if path == "" {
		engine.SetLogger(nil)
		return nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("log dir: %w", err)
		}
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		ext := filepath.Ext(path)
		rotated := fmt.Sprintf("%s_%s%s", strings.TrimSuffix(path, ext), time.Now().Format("20060102_150405"), ext)
		if err := os.Rename(path, rotated); err != nil {
			return nil, fmt.Errorf("log rotate: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("log open: %w", err)
	}

	engine.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return f, nil
}
