// Package sshd decides whether an OpenSSH server upgrade silently changes who
// may log in as root.
//
// The PermitRootLogin default changed from "yes" to "prohibit-password" between
// the OS major versions. A host with no explicit global setting therefore loses
// root password logins after the upgrade unless a Match block still grants them.
package sshd

import "strings"

// Directive is one occurrence of an option in sshd_config.
type Directive struct {
	// Value is the directive's argument, e.g. "yes" or "prohibit-password".
	Value string `yaml:"value" json:"value"`
	// InMatch holds the tokens of the enclosing Match block condition. It is
	// nil for directives outside any Match block.
	InMatch []string `yaml:"in_match,omitempty" json:"in_match,omitempty"`
}

// Snapshot is every occurrence of a single option, in file order.
type Snapshot []Directive

// Config is the parsed subset of sshd_config consulted by the upgrade.
type Config struct {
	PermitRootLogin Snapshot `yaml:"permit_root_login" json:"permit_root_login"`
}

// global reports whether d applies to every connection: either it is outside
// any Match block or inside "Match all".
func (d Directive) global() bool {
	if d.InMatch == nil {
		return true
	}
	return matchesAll(d.InMatch)
}

func matchesAll(cond []string) bool {
	return len(cond) > 0 && strings.EqualFold(cond[0], "all")
}
