package logging

import (
	"fmt"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
	"github.com/sirupsen/logrus"
)

// JournalHook mirrors entries into the systemd journal.
type JournalHook struct {
	// Identifier is recorded as SYSLOG_IDENTIFIER.
	Identifier string
}

var journalPriority = map[logrus.Level]journal.Priority{
	logrus.PanicLevel: journal.PriEmerg,
	logrus.FatalLevel: journal.PriCrit,
	logrus.ErrorLevel: journal.PriErr,
	logrus.WarnLevel:  journal.PriWarning,
	logrus.InfoLevel:  journal.PriInfo,
	logrus.DebugLevel: journal.PriDebug,
	logrus.TraceLevel: journal.PriDebug,
}

// Journal adds a JournalHook when the journal socket is reachable. Hosts
// without journald are left untouched.
func Journal(identifier string) Setter {
	return func(r *logrus.Logger) error {
		if !journal.Enabled() {
			return nil
		}
		for _, hook := range r.Hooks[logrus.InfoLevel] {
			if _, ok := hook.(*JournalHook); ok {
				return nil
			}
		}
		r.AddHook(&JournalHook{Identifier: identifier})
		return nil
	}
}

func (h *JournalHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *JournalHook) Fire(entry *logrus.Entry) error {
	return journal.Send(entry.Message, journalPriority[entry.Level], journalFields(h.Identifier, entry.Data))
}

// journalFields converts logrus fields to journal variables, which must be
// upper case and may only hold letters, digits and underscores.
func journalFields(identifier string, data logrus.Fields) map[string]string {
	vars := make(map[string]string, len(data)+1)
	if identifier != "" {
		vars["SYSLOG_IDENTIFIER"] = identifier
	}
	for k, v := range data {
		key := journalKey(k)
		if key == "" {
			continue
		}
		if err, ok := v.(error); ok {
			vars[key] = err.Error()
			continue
		}
		vars[key] = fmt.Sprint(v)
	}
	return vars
}

func journalKey(k string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(k) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.TrimLeft(b.String(), "_")
}
