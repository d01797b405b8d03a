// Package logger holds the process-wide logrus logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"coldb/internal/config"
)

const timestampFormat = "15:04:05 MST 2006/01/02"

// Logger is the shared logger. It writes warnings and above to stderr until
// Setup is called.
var Logger = newLogger(os.Stderr, logrus.WarnLevel)

// CustomFormatter renders "[time] [LEVL] message key=value ..." lines.
type CustomFormatter struct {
	TimestampFormat string
}

func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(f.TimestampFormat)

	level := strings.ToUpper(entry.Level.String())
	if len(level) > 4 {
		level = level[:4]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] [%s] %s", timestamp, level, entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, entry.Data[k])
	}
	sb.WriteByte('\n')

	return []byte(sb.String()), nil
}

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&CustomFormatter{TimestampFormat: timestampFormat})
	l.SetOutput(out)
	l.SetLevel(level)
	return l
}

// Setup applies the log section of the configuration to Logger.
func Setup(cfg config.Log) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	Logger.SetLevel(level)

	if cfg.File == "" {
		Logger.SetOutput(os.Stderr)
		return nil
	}
	f, err := openLogFile(cfg.File)
	if err != nil {
		return errors.Wrapf(err, "open log file %s", cfg.File)
	}
	Logger.SetOutput(f)
	return nil
}

func openLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
}
