// Package xlog is a thin wrapper around gologger selecting the level and
// fields the rest of the module logs through, matching the logging idiom
// of projectdiscovery-alterx (a sibling pack repo solving a similar
// "compiled rule set operates over text" problem).
package xlog

import (
	"fmt"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// SetVerbose raises the process-wide log level to verbose; SetSilent drops
// it to silent. Both mirror the -v/-silent flag handling in
// projectdiscovery-alterx's runner package.
func SetVerbose(v bool) {
	if v {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
}

func SetSilent(s bool) {
	if s {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}

// Info logs an informational line, e.g. locale compile or server start.
func Info(msg string) { gologger.Info().Msg(msg) }

// Infof logs a formatted informational line.
func Infof(format string, args ...interface{}) { gologger.Info().Msgf(format, args...) }

// Warning logs a recoverable condition: a missing classifier file, a hit
// saturation ceiling, a best-effort fallback taken.
func Warning(msg string) { gologger.Warning().Msg(msg) }

func Warningf(format string, args ...interface{}) { gologger.Warning().Msgf(format, args...) }

// Error logs a non-fatal failure the caller will still surface as an error
// return (a rejected locale, an unparseable config file).
func Error(msg string) { gologger.Error().Msg(msg) }

func Errorf(format string, args ...interface{}) { gologger.Error().Msgf(format, args...) }

// Fatal logs at error level and returns an error instead of calling
// os.Exit: duckling is a library first, so a locale-compile failure is
// reported to the caller rather than terminating the process. cmd/duckling
// is the only place that turns this into an exit code.
func Fatal(format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)
	gologger.Error().Msg(err.Error())
	return err
}
