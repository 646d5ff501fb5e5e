// Package host locates files on the system being upgraded and identifies
// its distribution.
package host

import (
	"path/filepath"
)

// DefaultTargetUserspace is where the upgrade assembles the target OS
// userspace container.
const DefaultTargetUserspace = "/var/lib/leapp/el8userspace"

// Host is the filesystem view of the system being upgraded.
type Host struct {
	// Root prefixes every path. It is empty on a live system.
	Root string
	// TargetUserspace is the path, relative to Root, of the target OS
	// userspace.
	TargetUserspace string
}

// New returns a Host for the running system.
func New() Host {
	return Host{TargetUserspace: DefaultTargetUserspace}
}

// Path resolves an absolute host path under Root.
func (h Host) Path(p string) string {
	return filepath.Join("/", h.Root, p)
}

// TargetPath resolves a path inside the target userspace.
func (h Host) TargetPath(p string) string {
	return filepath.Join("/", h.Root, h.TargetUserspace, p)
}
