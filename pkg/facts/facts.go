// Package facts holds the typed data the upgrade engine passes between actors.
//
// The engine hands an actor the facts it consumes as a YAML (or JSON)
// document and collects the facts the actor produces in the same shape.
package facts

import (
	"bytes"
	"io"
	"os"

	"github.com/cloudlinux/ipu-actors/pkg/sshd"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Name identifies a kind of fact.
type Name string

const (
	OpenSSHConfig              Name = "OpenSshConfig"
	ActiveVendorList           Name = "ActiveVendorList"
	CustomTargetRepository     Name = "CustomTargetRepository"
	CustomTargetRepositoryFile Name = "CustomTargetRepositoryFile"
)

// VendorList names the vendors whose source repositories are present.
type VendorList struct {
	Data []string `yaml:"data"`
}

// Repository is a repository to enable on the target system.
type Repository struct {
	RepoID  string `yaml:"repoid"`
	Name    string `yaml:"name,omitempty"`
	BaseURL string `yaml:"baseurl,omitempty"`
	Enabled bool   `yaml:"enabled"`
}

// RepositoryFile is a repository definition file to copy to the target
// system.
type RepositoryFile struct {
	File string `yaml:"file"`
}

// Set is a collection of facts keyed by their name.
type Set struct {
	OpenSSHConfig    *sshd.Config     `yaml:"OpenSshConfig,omitempty"`
	ActiveVendorList *VendorList      `yaml:"ActiveVendorList,omitempty"`
	Repositories     []Repository     `yaml:"CustomTargetRepository,omitempty"`
	RepositoryFiles  []RepositoryFile `yaml:"CustomTargetRepositoryFile,omitempty"`
}

// Has reports whether the set carries any fact of the given name.
func (s *Set) Has(name Name) bool {
	if s == nil {
		return false
	}
	switch name {
	case OpenSSHConfig:
		return s.OpenSSHConfig != nil
	case ActiveVendorList:
		return s.ActiveVendorList != nil
	case CustomTargetRepository:
		return len(s.Repositories) > 0
	case CustomTargetRepositoryFile:
		return len(s.RepositoryFiles) > 0
	}
	return false
}

// Decode reads a fact document. Unknown fact names are ignored; they belong
// to other actors.
func Decode(r io.Reader) (*Set, error) {
	set := &Set{}
	err := yaml.NewDecoder(r).Decode(set)
	if err == io.EOF {
		return set, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode facts")
	}
	return set, nil
}

// Encode writes the set as a YAML document.
func (s *Set) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, "unable to encode facts")
	}
	return errors.Wrap(enc.Close(), "unable to encode facts")
}

// Load reads the fact document at path.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read facts from %s", path)
	}
	set, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WithMessagef(err, "facts from %s", path)
	}
	return set, nil
}

// Save writes the set to path.
func (s *Set) Save(path string) error {
	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, buf.Bytes(), 0644), "unable to write facts to %s", path)
}
