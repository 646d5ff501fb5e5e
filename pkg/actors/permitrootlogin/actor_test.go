package permitrootlogin

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloudlinux/ipu-actors/pkg/actor"
	"github.com/cloudlinux/ipu-actors/pkg/facts"
	"github.com/cloudlinux/ipu-actors/pkg/host"
	"github.com/cloudlinux/ipu-actors/pkg/internal/testoutput"
	"github.com/cloudlinux/ipu-actors/pkg/logging"
	"github.com/cloudlinux/ipu-actors/pkg/sshd"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func testHost(t *testing.T, sshdConfig string) host.Host {
	t.Helper()
	h := host.Host{Root: t.TempDir()}
	if sshdConfig != "" {
		path := h.Path(sshd.DefaultConfigPath)
		assert.NilError(t, os.MkdirAll(filepath.Dir(path), 0755))
		assert.NilError(t, os.WriteFile(path, []byte(sshdConfig), 0600))
	}
	return h
}

func read(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	assert.NilError(t, err)
	return string(data)
}

func run(t *testing.T, h host.Host, set *facts.Set) {
	t.Helper()
	assert.NilError(t, actor.Run(context.Background(), actor.Env{Host: h, Facts: set}, &PermitRootLogin{}))
}

func TestPreserveDefault(t *testing.T) {
	logging.Set(testoutput.Setter(t))
	defer logging.Set(testoutput.Revert())

	original := "Port 22\nMatch User admin\n  PermitRootLogin no\n"
	h := testHost(t, original)
	set := &facts.Set{OpenSSHConfig: &sshd.Config{PermitRootLogin: sshd.Snapshot{
		{Value: "no", InMatch: []string{"User", "admin"}},
	}}}

	run(t, h, set)

	assert.Check(t, is.Equal(read(t, h.Path(sshd.DefaultConfigPath)), strings.Join(header, "")+original))
	assert.Check(t, is.Equal(read(t, h.Path(backupPath)), original))
}

func TestGlobalSettingUntouched(t *testing.T) {
	logging.Set(testoutput.Setter(t))
	defer logging.Set(testoutput.Revert())

	original := "PermitRootLogin no\n"
	h := testHost(t, original)
	set := &facts.Set{OpenSSHConfig: &sshd.Config{PermitRootLogin: sshd.Snapshot{{Value: "no"}}}}

	run(t, h, set)

	assert.Check(t, is.Equal(read(t, h.Path(sshd.DefaultConfigPath)), original))
	_, err := os.Stat(h.Path(backupPath))
	assert.Check(t, os.IsNotExist(err))
}

func TestMatchExceptionUntouched(t *testing.T) {
	logging.Set(testoutput.Setter(t))
	defer logging.Set(testoutput.Revert())

	original := "Match Address 10.0.0.1\n  PermitRootLogin yes\n"
	h := testHost(t, original)
	set := &facts.Set{OpenSSHConfig: &sshd.Config{PermitRootLogin: sshd.Snapshot{
		{Value: "yes", InMatch: []string{"Address", "10.0.0.1"}},
	}}}

	run(t, h, set)

	assert.Check(t, is.Equal(read(t, h.Path(sshd.DefaultConfigPath)), original))
}

func TestReadsConfigWithoutFact(t *testing.T) {
	logging.Set(testoutput.Setter(t))
	defer logging.Set(testoutput.Revert())

	original := "Port 22\nPasswordAuthentication yes\n"
	h := testHost(t, original)

	run(t, h, nil)

	assert.Check(t, is.Equal(read(t, h.Path(sshd.DefaultConfigPath)), strings.Join(header, "")+original))
	assert.Check(t, is.Equal(read(t, h.Path(backupPath)), original))
}

func TestMissingConfig(t *testing.T) {
	logging.Set(testoutput.Setter(t))
	defer logging.Set(testoutput.Revert())

	h := testHost(t, "")
	set := &facts.Set{OpenSSHConfig: &sshd.Config{}}

	run(t, h, set)
	run(t, h, nil)

	_, err := os.Stat(h.Path(sshd.DefaultConfigPath))
	assert.Check(t, os.IsNotExist(err))
	_, err = os.Stat(h.Path(backupPath))
	assert.Check(t, os.IsNotExist(err))
}
