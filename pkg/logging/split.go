package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// SplitHook directs matched levels to its configured output.
type SplitHook struct {
	output io.Writer
	levels []logrus.Level
}

// StdoutHook sends routine messages (warn and below) to w.
func StdoutHook(w io.Writer) *SplitHook {
	return &SplitHook{w, []logrus.Level{
		logrus.WarnLevel, logrus.InfoLevel, logrus.DebugLevel, logrus.TraceLevel}}
}

// StderrHook sends failures (error and above) to w.
func StderrHook(w io.Writer) *SplitHook {
	return &SplitHook{w, []logrus.Level{
		logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}}
}

// Fire is invoked when logrus tries to log any message.
func (hook *SplitHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	for _, level := range hook.levels {
		if level == entry.Level {
			_, err := hook.output.Write([]byte(line))
			return err
		}
	}
	return nil
}

// Levels returns the log levels this hook is being applied to.
func (hook *SplitHook) Levels() []logrus.Level {
	return hook.levels
}
