// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging provides the shared logrus logger.
//
// Output is discarded unless DEBUG_INSTANT is set to one of debug, info,
// warn or error.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Fields is an alias for logrus.Fields.
type Fields = logrus.Fields

var (
	log  *Logger
	once sync.Once
)

// Logger wraps a logrus.Logger.
type Logger struct {
	*logrus.Logger
}

// Initialize configures the shared logger from the environment. It runs at
// most once.
func Initialize() {
	once.Do(func() {
		log = &Logger{Logger: logrus.New()}
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.PanicLevel)
		level := os.Getenv("DEBUG_INSTANT")
		if level == "" {
			return
		}
		log.SetOutput(os.Stderr)
		switch strings.ToLower(level) {
		case "info":
			log.SetLevel(logrus.InfoLevel)
		case "warn":
			log.SetLevel(logrus.WarnLevel)
		case "error":
			log.SetLevel(logrus.ErrorLevel)
		default:
			log.SetLevel(logrus.DebugLevel)
		}
		log.WithField("level", log.GetLevel()).Debug("Logging enabled.")
	})
}

// GetLogger returns the shared logger, initializing it if needed.
func GetLogger() *Logger {
	Initialize()
	return log
}

// SetOutput redirects the shared logger and sets its level. It is meant for
// command line flags and tests.
func SetOutput(w io.Writer, level logrus.Level) {
	l := GetLogger()
	l.SetOutput(w)
	l.SetLevel(level)
}
