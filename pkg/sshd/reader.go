package sshd

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// DefaultConfigPath is where the server configuration lives on the host.
const DefaultConfigPath = "/etc/ssh/sshd_config"

// Read collects the options the upgrade cares about from sshd_config text.
// Only keyword and argument splitting plus Match tracking is done; Include
// directives are not followed.
func Read(r io.Reader) (*Config, error) {
	var (
		cfg     = &Config{PermitRootLogin: Snapshot{}}
		inMatch []string
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := splitDirective(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "match":
			inMatch = append([]string{}, fields[1:]...)
		case "permitrootlogin":
			if len(fields) < 2 {
				continue
			}
			cfg.PermitRootLogin = append(cfg.PermitRootLogin, Directive{
				Value:   fields[1],
				InMatch: inMatch,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "unable to read sshd configuration")
	}
	return cfg, nil
}

// ReadFile reads the configuration at path.
func ReadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// splitDirective splits a line into its keyword and arguments. The keyword may
// be separated from its arguments by whitespace or a single '='.
func splitDirective(line string) []string {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	if i := strings.IndexAny(line, " \t="); i > 0 && line[i] == '=' {
		line = line[:i] + " " + line[i+1:]
	} else if i > 0 {
		rest := strings.TrimLeft(line[i:], " \t")
		if strings.HasPrefix(rest, "=") {
			line = line[:i] + " " + rest[1:]
		}
	}
	fields := strings.Fields(line)
	for i, f := range fields {
		fields[i] = strings.Trim(f, `"`)
	}
	return fields
}
