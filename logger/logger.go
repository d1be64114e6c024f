// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

const defaultLogFormat = "%{time:2006-01-02 15:04:05.000} %{color}%{level:.4s}%{color:reset} %{module}: %{message}"

// LogLevelFlag defines the level of logging of the app.
var LogLevelFlag = cli.StringFlag{
	Name:    "log",
	Aliases: []string{"l"},
	Usage:   "Level of the logging of the app action (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\"; default: INFO)",
	Value:   "info",
}

// Logger is the logging surface used throughout the generator and its tools.
//
//go:generate mockgen -source logger.go -destination logger_mock.go -package logger
type Logger interface {
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Critical(args ...interface{})
	Criticalf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Notice(args ...interface{})
	Noticef(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	IsEnabledFor(level logging.Level) bool
}

// NewLogger provides a new instance of the Logger based on the given log level and module name.
// An unparsable level falls back to INFO.
func NewLogger(level string, module string) Logger {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.NewBackendFormatter(backend, logging.MustStringFormatter(defaultLogFormat))
	leveled := logging.AddModuleLevel(formatter)

	lvl, err := logging.LogLevel(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot parse log level %q; using INFO\n", level)
		lvl = logging.INFO
	}
	leveled.SetLevel(lvl, module)
	// IsEnabledFor consults the package level backend
	logging.SetLevel(lvl, module)

	log := logging.MustGetLogger(module)
	log.SetBackend(leveled)
	return log
}

// ParseTime splits an elapsed duration into hours, minutes and seconds.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	total := uint32(elapsed.Round(time.Second) / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return hours, minutes, seconds
}
