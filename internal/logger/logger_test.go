package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coldb/internal/config"
)

func TestCustomFormatter(t *testing.T) {
	f := &CustomFormatter{TimestampFormat: "15:04:05"}
	entry := &logrus.Entry{
		Time:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "root split",
		Data:    logrus.Fields{"table": "users", "column": "name"},
	}

	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "[03:04:05] [WARN] root split column=name table=users\n", string(out))
}

func TestSetupLevelAndFile(t *testing.T) {
	t.Cleanup(func() {
		Logger.SetOutput(os.Stderr)
		Logger.SetLevel(logrus.WarnLevel)
	})
	path := filepath.Join(t.TempDir(), "logs", "coldb.log")

	require.NoError(t, Setup(config.Log{Level: "debug", File: path}))
	assert.Equal(t, logrus.DebugLevel, Logger.GetLevel())

	Logger.WithField("table", "users").Debug("created table")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBU] created table table=users")
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	err := Setup(config.Log{Level: "loud"})
	assert.Error(t, err)
}

func TestLoggerWritesToBuffer(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, logrus.InfoLevel)

	l.Debug("hidden")
	l.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "[INFO] shown")
}
