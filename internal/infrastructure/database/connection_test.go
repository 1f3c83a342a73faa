package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"casedesk/internal/shared/logger"
)

type recordingLogger struct {
	debugs []string
	warns  []string
	errors []string
}

func (l *recordingLogger) Debug(msg string, args ...any) { l.debugs = append(l.debugs, msg) }
func (l *recordingLogger) Info(msg string, args ...any)  {}
func (l *recordingLogger) Warn(msg string, args ...any)  { l.warns = append(l.warns, msg) }
func (l *recordingLogger) Error(msg string, args ...any) { l.errors = append(l.errors, msg) }

func (l *recordingLogger) With(args ...any) logger.Interface    { return l }
func (l *recordingLogger) Named(name string) logger.Interface   { return l }
func (l *recordingLogger) Debugw(msg string, kv ...interface{}) {}
func (l *recordingLogger) Infow(msg string, kv ...interface{})  {}
func (l *recordingLogger) Warnw(msg string, kv ...interface{})  {}
func (l *recordingLogger) Errorw(msg string, kv ...interface{}) {}

func TestGormLogWriter_Printf(t *testing.T) {
	t.Run("slow queries are warnings", func(t *testing.T) {
		log := &recordingLogger{}
		w := &gormLogWriter{log: log}

		w.Printf("%s SLOW SQL >= 200ms [rows:1] SELECT * FROM cases", "caller.go:1")

		assert.Equal(t, []string{"slow query"}, log.warns)
		assert.Empty(t, log.errors)
	})

	t.Run("errors are surfaced as errors", func(t *testing.T) {
		log := &recordingLogger{}
		w := &gormLogWriter{log: log}

		w.Printf("%s [error] Error 1062: Duplicate entry", "caller.go:1")

		assert.Equal(t, []string{"database error"}, log.errors)
	})

	t.Run("everything else is debug", func(t *testing.T) {
		log := &recordingLogger{}
		w := &gormLogWriter{log: log}

		w.Printf("[rows:3] SELECT * FROM case_logs WHERE case_id = 1")

		assert.Equal(t, []string{"database query"}, log.debugs)
		assert.Empty(t, log.warns)
		assert.Empty(t, log.errors)
	})
}
