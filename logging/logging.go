// Package logging wraps log/slog with subsystem tagged helpers
package logging

import "log/slog"
import "os"
import "strings"

// SubSystem tags a log line with the part of nnrun that wrote it.
type SubSystem string

const (
	Config   SubSystem = "config"
	Resolver SubSystem = "resolver"
	Builder  SubSystem = "builder"
	Learning SubSystem = "learning"
	Trainer  SubSystem = "trainer"
)

var level slog.LevelVar

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: &level,
	})))
}

// SetLevel sets the level of the default logger. Unknown names leave it unchanged
// and report false.
func SetLevel(name string) bool {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return false
	}
	level.Set(l)
	return true
}

// UseJSON switches the default logger to JSON output.
func UseJSON() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: &level,
	})))
}

func WithNoopLogger(action func() (any, error)) (any, error) {
	currentLogger := slog.Default()
	defer slog.SetDefault(currentLogger)

	var noop slog.LevelVar
	// above all normal levels
	noop.Set(slog.Level(100))
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: &noop,
	})))
	return action()
}

func Warn(msg string, subSystem SubSystem, keyvals ...interface{}) {
	withSubsystem := append([]interface{}{"subsystem", subSystem}, keyvals...)
	slog.Warn(msg, withSubsystem...)
}

func Info(msg string, subSystem SubSystem, keyvals ...interface{}) {
	withSubsystem := append([]interface{}{"subsystem", subSystem}, keyvals...)
	slog.Info(msg, withSubsystem...)
}

func Error(msg string, subSystem SubSystem, keyvals ...interface{}) {
	withSubsystem := append([]interface{}{"subsystem", subSystem}, keyvals...)
	slog.Error(msg, withSubsystem...)
}

func Debug(msg string, subSystem SubSystem, keyvals ...interface{}) {
	withSubsystem := append([]interface{}{"subsystem", subSystem}, keyvals...)
	slog.Debug(msg, withSubsystem...)
}
