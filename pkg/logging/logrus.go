package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

type Setter func(*logrus.Logger) error

var root = struct {
	logger *logrus.Logger
	mutex  *sync.Mutex
}{
	logger: func() *logrus.Logger {
		l := logrus.New()

		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
		_ = Default()(l)

		return l
	}(),
	mutex: &sync.Mutex{},
}

type Logger interface {
	logrus.FieldLogger

	Writer() *io.PipeWriter
	WriterLevel(logrus.Level) *io.PipeWriter
}

// SubLogger is the narrowed logger handed to actors and other units of work.
type SubLogger = logrus.FieldLogger

func New(component string, setters ...Setter) Logger {
	for _, setter := range setters {
		// no errors handling for now
		_ = Set(setter)
	}
	return root.logger.WithField("component", component)
}

func Set(setter Setter) error {
	root.mutex.Lock()
	err := setter(root.logger)
	root.mutex.Unlock()
	return err
}

func Level(lvl string) Setter {
	l, err := logrus.ParseLevel(lvl)
	if err != nil {
		root.logger.WithError(err).Errorf("unable to parse provided level %q", lvl)
		l = logrus.DebugLevel
	}
	return func(r *logrus.Logger) error {
		r.SetLevel(l)
		return nil
	}
}

// Default dispatches entries through the split hooks instead of the logger's
// own output: errors go to stderr, everything else to stdout.
func Default() Setter {
	return func(r *logrus.Logger) error {
		hooks := make(logrus.LevelHooks)
		hooks.Add(StdoutHook(os.Stdout))
		hooks.Add(StderrHook(os.Stderr))
		r.ReplaceHooks(hooks)
		r.SetOutput(io.Discard)
		return nil
	}
}

// Output replaces the split hooks with a single writer receiving every level.
func Output(w io.Writer) Setter {
	return func(r *logrus.Logger) error {
		r.ReplaceHooks(make(logrus.LevelHooks))
		r.SetOutput(w)
		return nil
	}
}
