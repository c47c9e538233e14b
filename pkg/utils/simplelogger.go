// Package utils provides a small keyval file logger for the CLI.
//
// The logger is a no-op until InitLogger is called (the -debug flag),
// so normal runs never touch the filesystem. Thread-safe via sync.Mutex.
package utils

import (
	"fmt"
	"os"
	"sync"
	"time"
)

var (
	logFile     *os.File
	logMutex    sync.Mutex
	initialized bool
)

// InitLogger creates an askgpt-YYYY-MM-DD-HH-MM.log file in the current
// directory and routes subsequent Info/Debug/Warn/Error calls into it.
func InitLogger() error {
	logMutex.Lock()
	defer logMutex.Unlock()

	if initialized {
		return nil
	}

	filename := fmt.Sprintf("askgpt-%s.log", time.Now().Format("2006-01-02-15-04"))

	var err error
	logFile, err = os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	initialized = true
	// Write directly, the mutex is already held.
	line := fmt.Sprintf("[%s] INFO: logger initialized file=%s\n",
		time.Now().Format("2006-01-02 15:04:05"), filename)
	if _, err := logFile.WriteString(line); err != nil {
		fmt.Fprintf(os.Stderr, "%s", line)
	}

	return nil
}

// Info logs an informational message.
func Info(msg string, keyvals ...any) {
	log("INFO", msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...any) {
	log("ERROR", msg, keyvals...)
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...any) {
	log("DEBUG", msg, keyvals...)
}

// Warn logs a warning.
func Warn(msg string, keyvals ...any) {
	log("WARN", msg, keyvals...)
}

// log writes one line: [timestamp] LEVEL: message key1=value1 key2=value2.
// Falls back to stderr when the file becomes unwritable.
func log(level, msg string, keyvals ...any) {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logFile == nil {
		return
	}

	line := fmt.Sprintf("[%s] %s: %s", time.Now().Format("2006-01-02 15:04:05"), level, msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		line += fmt.Sprintf(" %v=%v", keyvals[i], keyvals[i+1])
	}
	line += "\n"

	if _, err := logFile.WriteString(line); err != nil {
		fmt.Fprintf(os.Stderr, "%s", line)
	}
}

// Close closes the log file. Called via defer in main().
func Close() {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logFile != nil {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "[logger close failed: %v]\n", err)
		}
		logFile = nil
		initialized = false
	}
}
