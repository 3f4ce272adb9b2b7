package logging

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Environment variables inherited by child processes and SSH sessions
const (
	EnvDebug       = "STOPLIGHT_DEBUG"
	EnvDebugFile   = "STOPLIGHT_DEBUG_FILE"
	EnvMaxLogFiles = "STOPLIGHT_MAX_LOG_FILES"
)

// DefaultMaxLogFiles is the rotation limit when none is configured
const DefaultMaxLogFiles = 1000

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize enables debug output.
var Logger = slog.New(slog.DiscardHandler)

// Initialize sets up the logger based on the debug flag and configuration
func Initialize(debug bool, debugFile string, maxLogFiles int) error {
	if os.Getenv(EnvDebug) == "1" {
		debug = true
	}
	if envDebugFile := os.Getenv(EnvDebugFile); envDebugFile != "" && debugFile == "" {
		debugFile = envDebugFile
	}
	if envMaxLogFiles := os.Getenv(EnvMaxLogFiles); envMaxLogFiles != "" && maxLogFiles == DefaultMaxLogFiles {
		if parsed, err := strconv.Atoi(envMaxLogFiles); err == nil {
			maxLogFiles = parsed
		}
	}

	if !debug && debugFile == "" {
		Logger = slog.New(slog.DiscardHandler)
		return nil
	}

	logFilePath, err := resolveLogFile(debugFile, maxLogFiles)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// Inherited debug (SSH sessions, play-sound) stays quiet on stdout
	if os.Getenv(EnvDebug) == "" {
		Logger.Info("Debug logging initialized", "log_file", logFilePath)
		fmt.Printf("Debug mode enabled. Logs: %s\n", logFilePath)
	}

	return nil
}

// resolveLogFile returns the file to log to, creating its directory.
// Without an explicit file, a fresh <uuid>.log is used in the OS log directory.
func resolveLogFile(debugFile string, maxLogFiles int) (string, error) {
	if debugFile != "" {
		if err := os.MkdirAll(filepath.Dir(debugFile), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return debugFile, nil
	}

	logDir, err := LogDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if maxLogFiles > 0 {
		if err := rotateLogs(logDir, maxLogFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(logDir, fmt.Sprintf("%s.log", uuid.New().String())), nil
}

// rotateLogs removes the oldest .log files so that one more fits under maxLogFiles
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFileInfo struct {
		path    string
		modTime time.Time
	}
	var logFiles []logFileInfo

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logFiles = append(logFiles, logFileInfo{
			path:    filepath.Join(logDir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	if len(logFiles) < maxLogFiles {
		return nil
	}

	sort.Slice(logFiles, func(i, j int) bool {
		return logFiles[i].modTime.Before(logFiles[j].modTime)
	})

	numToDelete := len(logFiles) - maxLogFiles + 1
	for i := 0; i < numToDelete && i < len(logFiles); i++ {
		if err := os.Remove(logFiles[i].path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", logFiles[i].path, err)
		}
	}

	return nil
}

// LogDir returns the OS-specific log directory
func LogDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "stoplight"), nil
	case "linux":
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			stateHome = filepath.Join(homeDir, ".local", "state")
		}
		return filepath.Join(stateHome, "stoplight"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, "stoplight", "logs"), nil
	default:
		return filepath.Join(homeDir, ".stoplight", "logs"), nil
	}
}
