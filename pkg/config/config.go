package config

import (
	"io/ioutil"
	"os"

	"github.com/cloudlinux/ipu-actors/pkg/host"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// DefaultPath is read when no configuration file is given.
const DefaultPath = "/etc/ipu-actors/config.toml"

// Config contains the settings shared by every actor run.
type Config struct {
	// Root prefixes every host path.
	Root string `toml:"root"`
	// TargetUserspace locates the target OS userspace under Root.
	TargetUserspace string `toml:"target-userspace"`
	// LogLevel is a logrus level name.
	LogLevel string `toml:"log-level"`
	// Journal mirrors logs into the systemd journal when it is available.
	Journal bool `toml:"journal"`
}

// Default returns the configuration of a live host.
func Default() *Config {
	return &Config{
		TargetUserspace: host.DefaultTargetUserspace,
		LogLevel:        "info",
		Journal:         true,
	}
}

// Load unmarshalls the configuration file over the defaults. A missing file
// leaves the defaults in place.
func Load(path string) (*Config, error) {
	config := Default()
	raw, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read configuration %s", path)
	}
	if err := toml.Unmarshal(raw, config); err != nil {
		return nil, errors.Wrapf(err, "unable to parse configuration %s", path)
	}
	return config, nil
}

// Host returns the host view described by the configuration.
func (c *Config) Host() host.Host {
	return host.Host{Root: c.Root, TargetUserspace: c.TargetUserspace}
}
