package sshd

// unset is never a valid directive argument since sshd splits arguments on
// whitespace.
const unset = "\x00unset"

// GlobalValue returns the value sshd uses for connections not matched by any
// conditional Match block. sshd keeps the first value it reads, so the first
// directive outside a Match block, or inside "Match all", wins. fallback is
// returned when there is no such directive.
func GlobalValue(s Snapshot, fallback string) string {
	for _, d := range s {
		if d.global() {
			return d.Value
		}
	}
	return fallback
}

// SemanticsChange reports whether upgrading sshd changes the effective
// PermitRootLogin behavior of the host.
//
// A global setting, enabled or disabled, is carried over verbatim. Without
// one the compiled-in default applies and that default is what changes. The
// exception is a "yes" inside a conditional Match block: root can still log in
// with a password from clients matching it, so the host is not locked out.
func SemanticsChange(s Snapshot) bool {
	if len(s) == 0 {
		return true
	}
	if GlobalValue(s, unset) != unset {
		return false
	}
	for _, d := range s {
		if d.Value == "yes" && d.InMatch != nil && !matchesAll(d.InMatch) {
			return false
		}
	}
	return true
}
