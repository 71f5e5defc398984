// Copyright (c) 2026 Framecut Authors.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// InitLogger sets up Apex with a custom handler and a log level from the
// FRAMECUT_LOG env variable.
func InitLogger() {
	SetVerbosity(os.Getenv("FRAMECUT_LOG"))
	log.SetHandler(&CustomHandler{})
}

// SetVerbosity maps a verbosity label onto the Apex log level. The label
// set matches the config schema's global verbosity choices; "none" disables
// everything below Fatal. An empty or unknown label selects Error.
func SetVerbosity(level string) {
	var apexLevel log.Level
	switch strings.ToLower(level) {
	case "debug":
		apexLevel = log.DebugLevel
	case "info":
		apexLevel = log.InfoLevel
	case "warn", "warning":
		apexLevel = log.WarnLevel
	case "error":
		apexLevel = log.ErrorLevel
	case "none":
		apexLevel = log.FatalLevel
	default:
		apexLevel = log.ErrorLevel
	}
	log.SetLevel(apexLevel)
}

// CustomHandler formats log messages and writes to stdout
type CustomHandler struct{}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := "?"
	switch e.Level {
	case log.DebugLevel:
		level = "D"
	case log.InfoLevel:
		level = "I"
	case log.WarnLevel:
		level = "W"
	case log.ErrorLevel:
		level = "E"
	case log.FatalLevel:
		level = "F"
	}
	fmt.Fprintf(os.Stdout, "%s %s %s\n", timestamp, level, e.Message)
	return nil
}

// Logf logs at the given Apex level. Used to replay messages that were
// accumulated with an explicit severity, like the config init log.
func Logf(level log.Level, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	switch level {
	case log.DebugLevel:
		log.Debug(msg)
	case log.InfoLevel:
		log.Info(msg)
	case log.WarnLevel:
		log.Warn(msg)
	case log.FatalLevel:
		log.Fatal(msg)
	default:
		log.Error(msg)
	}
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs at Info level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// Debug logs at Debug level.
func Debug(msg string) {
	log.Debug(msg)
}

// Warnf logs at Warn level.
func Warnf(format string, args ...interface{}) {
	log.Warn(fmt.Sprintf(format, args...))
}

// WithError returns an entry with error.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}
