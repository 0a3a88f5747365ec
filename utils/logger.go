/*
 * Copyright 2025 teknohq.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package utils provides the named logrus logger registry shared by the
// catalog packages.
package utils

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger is the concrete logger type handed out by the registry.
type Logger = logrus.Logger

var (
	defaultConsoleLevel = logrus.InfoLevel
	loggerRegistryMu    sync.RWMutex
	loggerRegistry      = map[string]*logrus.Logger{}
	consoleLogFormat    = EnvDefaultString("CONSOLE_LOG_FORMAT", "text")
)

// EnvDefaultString returns the environment value for key or the fallback.
func EnvDefaultString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// EnvDefaultBool returns the boolean environment value for key or the fallback.
func EnvDefaultBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

type prefixedTextFormatter struct {
	name  string
	inner logrus.Formatter
}

func (f *prefixedTextFormatter) Format(e *logrus.Entry) ([]byte, error) {
	b, err := f.inner.Format(e)
	if err != nil {
		return nil, err
	}
	prefix := fmt.Sprintf("[%s] ", f.name)
	return append([]byte(prefix), b...), nil
}

func newFormatter(name string) logrus.Formatter {
	var inner logrus.Formatter
	if strings.EqualFold(consoleLogFormat, "json") {
		inner = &logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05.000"}
	} else {
		inner = &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		}
	}
	return &prefixedTextFormatter{name: name, inner: inner}
}

// NewLogger returns the named logger, creating and registering it on first
// use. Loggers share the registry so level changes apply process-wide.
func NewLogger(name string) *Logger {
	loggerRegistryMu.RLock()
	l, ok := loggerRegistry[name]
	loggerRegistryMu.RUnlock()
	if ok {
		return l
	}

	loggerRegistryMu.Lock()
	defer loggerRegistryMu.Unlock()
	if l, ok = loggerRegistry[name]; ok {
		return l
	}

	l = logrus.New()
	l.SetOutput(os.Stdout)
	l.SetLevel(envLevel(name))
	l.SetFormatter(newFormatter(name))
	loggerRegistry[name] = l
	return l
}

// SetLoggerLevel changes the level of a registered logger. Unknown level
// strings leave the logger unchanged.
func SetLoggerLevel(name, level string) {
	loggerRegistryMu.RLock()
	l, ok := loggerRegistry[name]
	loggerRegistryMu.RUnlock()
	if !ok {
		return
	}
	if parsed, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		l.SetLevel(parsed)
	}
}

func envLevel(name string) logrus.Level {
	key := fmt.Sprintf("%s_LOG_LEVEL", strings.ToUpper(strings.ReplaceAll(name, "-", "_")))
	v := EnvDefaultString(key, EnvDefaultString("LOG_LEVEL", ""))
	if v == "" {
		return defaultConsoleLevel
	}
	if parsed, err := logrus.ParseLevel(strings.ToLower(v)); err == nil {
		return parsed
	}
	return defaultConsoleLevel
}
