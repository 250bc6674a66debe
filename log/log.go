// Copyright 2022 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package log provides the small leveled logger used throughout the dex
// module, in the same shape the pe package's own log subpackage is used
// at its call sites (logger.Debugf/Infof/Warnf/Errorf).
package log

import (
	"fmt"
	"log"
	"os"
)

// Level is a logging severity.
type Level int

// Severity levels, lowest to highest.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the minimal logging surface the dex package depends on.
type Logger interface {
	Log(level Level, format string, args ...interface{})
}

// Helper wraps a Logger with per-level convenience methods.
type Helper struct {
	logger Logger
}

// NewHelper returns a Helper backed by logger.
func NewHelper(logger Logger) *Helper {
	if logger == nil {
		logger = NewStdLogger(os.Stderr)
	}
	return &Helper{logger: logger}
}

// Debugf logs at LevelDebug.
func (h *Helper) Debugf(format string, args ...interface{}) { h.logger.Log(LevelDebug, format, args...) }

// Infof logs at LevelInfo.
func (h *Helper) Infof(format string, args ...interface{}) { h.logger.Log(LevelInfo, format, args...) }

// Warnf logs at LevelWarn.
func (h *Helper) Warnf(format string, args ...interface{}) { h.logger.Log(LevelWarn, format, args...) }

// Errorf logs at LevelError.
func (h *Helper) Errorf(format string, args ...interface{}) { h.logger.Log(LevelError, format, args...) }

type stdLogger struct {
	std *log.Logger
}

// NewStdLogger returns a Logger writing to w via the standard library's
// log package, one line per call, prefixed with the severity.
func NewStdLogger(w interface {
	Write(p []byte) (n int, err error)
}) Logger {
	return &stdLogger{std: log.New(w, "", log.LstdFlags)}
}

func (s *stdLogger) Log(level Level, format string, args ...interface{}) {
	s.std.Print(level.String() + ": " + fmt.Sprintf(format, args...))
}

// filter wraps a Logger and drops any record below its configured level.
type filter struct {
	next  Logger
	level Level
}

// NewFilter returns a Logger that forwards to next only records at or
// above level.
func NewFilter(next Logger, level Level) Logger {
	return &filter{next: next, level: level}
}

func (f *filter) Log(level Level, format string, args ...interface{}) {
	if level < f.level {
		return
	}
	f.next.Log(level, format, args...)
}

// FilterLevel returns level unchanged; its result can be passed as
// NewFilter's level argument.
func FilterLevel(level Level) Level { return level }
