package actors

import (
	"testing"

	"gotest.tools/assert"
)

func TestNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range All() {
		assert.Check(t, !seen[a.Name()], "duplicate actor %q", a.Name())
		seen[a.Name()] = true
	}
	assert.Check(t, seen["unpin_cln_mirror"])
	assert.Check(t, seen["openssh_permit_root_login"])
	assert.Check(t, seen["scan_vendor_repofiles"])
}
