package host

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func TestPaths(t *testing.T) {
	live := New()
	assert.Check(t, is.Equal(live.Path("/etc/mirrorlist"), "/etc/mirrorlist"))
	assert.Check(t, is.Equal(live.TargetPath("etc/mirrorlist"), "/var/lib/leapp/el8userspace/etc/mirrorlist"))

	chroot := Host{Root: "/tmp/root", TargetUserspace: "/target"}
	assert.Check(t, is.Equal(chroot.Path("/etc/ssh/sshd_config"), "/tmp/root/etc/ssh/sshd_config"))
	assert.Check(t, is.Equal(chroot.TargetPath("etc/sysconfig/rhn/up2date"), "/tmp/root/target/etc/sysconfig/rhn/up2date"))
}

func writeRelease(t *testing.T, content string) Host {
	t.Helper()
	root := t.TempDir()
	assert.NilError(t, os.MkdirAll(filepath.Join(root, "etc"), 0755))
	assert.NilError(t, os.WriteFile(filepath.Join(root, osReleasePath), []byte(content), 0644))
	return Host{Root: root}
}

func TestReleaseCloudLinux(t *testing.T) {
	h := writeRelease(t, `NAME="CloudLinux"
VERSION="7.9 (Boris Yegorov)"
ID="cloudlinux"
ID_LIKE="rhel fedora centos"
VERSION_ID="7.9"
`)
	rel, err := h.Release()
	assert.NilError(t, err)
	assert.Check(t, is.Equal(rel.ID, "cloudlinux"))
	assert.Check(t, is.Equal(rel.VersionID, "7.9"))
	assert.Check(t, is.DeepEqual(rel.IDLike, []string{"rhel", "fedora", "centos"}))
	assert.Check(t, rel.IsCloudLinux())
}

func TestReleaseOther(t *testing.T) {
	h := writeRelease(t, "# comment\nNAME=CentOS Linux\nID=centos\nVERSION_ID='7'\n")
	rel, err := h.Release()
	assert.NilError(t, err)
	assert.Check(t, is.Equal(rel.ID, "centos"))
	assert.Check(t, is.Equal(rel.VersionID, "7"))
	assert.Check(t, !rel.IsCloudLinux())
}

func TestReleaseMissing(t *testing.T) {
	_, err := Host{Root: t.TempDir()}.Release()
	assert.Check(t, err != nil)
}
