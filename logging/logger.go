// Package logging provides the dispatch daemon's shared logrus logger and
// hook registration, matching the teacher's thin logging wrapper so every
// package logs through one configured instance.
package logging

import (
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func AddHook(hook logrus.Hook) {
	Log.AddHook(hook)
}

func Debug(args ...interface{}) {
	Log.Debug(args...)
}

func Debugf(format string, args ...interface{}) {
	Log.Debugf(format, args...)
}

func Error(args ...interface{}) {
	Log.Error(args...)
}

func Errorf(format string, args ...interface{}) {
	Log.Errorf(format, args...)
}

func Info(args ...interface{}) {
	Log.Info(args...)
}

func Infof(format string, args ...interface{}) {
	Log.Infof(format, args...)
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return Log.WithFields(fields)
}
