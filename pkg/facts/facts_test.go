package facts

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloudlinux/ipu-actors/pkg/sshd"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func TestDecodeYAML(t *testing.T) {
	doc := `
OpenSshConfig:
  permit_root_login:
    - value: "no"
    - value: "yes"
      in_match: [User, admin]
UnrelatedFact:
  anything: true
`
	set, err := Decode(strings.NewReader(doc))
	assert.NilError(t, err)
	assert.Assert(t, set.Has(OpenSSHConfig))
	assert.DeepEqual(t, set.OpenSSHConfig.PermitRootLogin, sshd.Snapshot{
		{Value: "no"},
		{Value: "yes", InMatch: []string{"User", "admin"}},
	})
	assert.Check(t, !set.Has(ActiveVendorList))
}

func TestDecodeJSON(t *testing.T) {
	doc := `{"OpenSshConfig": {"permit_root_login": [{"value": "yes", "in_match": ["Address", "10.0.0.1"]}]}, "ActiveVendorList": {"data": ["epel"]}}`
	set, err := Decode(strings.NewReader(doc))
	assert.NilError(t, err)
	assert.Check(t, is.Len(set.OpenSSHConfig.PermitRootLogin, 1))
	assert.Check(t, !sshd.SemanticsChange(set.OpenSSHConfig.PermitRootLogin))
	assert.Check(t, is.DeepEqual(set.ActiveVendorList.Data, []string{"epel"}))
}

func TestDecodeEmpty(t *testing.T) {
	set, err := Decode(strings.NewReader(""))
	assert.NilError(t, err)
	assert.Check(t, !set.Has(OpenSSHConfig))
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode(strings.NewReader("OpenSshConfig: [unterminated"))
	assert.Check(t, is.ErrorContains(err, "unable to decode facts"))
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "produced.yaml")
	set := &Set{
		Repositories:    []Repository{{RepoID: "cloudlinux-x86_64-server-8", Enabled: true}},
		RepositoryFiles: []RepositoryFile{{File: "/etc/leapp/files/vendors.d/epel.repo"}},
	}
	assert.NilError(t, set.Save(path))

	loaded, err := Load(path)
	assert.NilError(t, err)
	assert.DeepEqual(t, loaded, set)
	assert.Check(t, loaded.Has(CustomTargetRepository))
	assert.Check(t, loaded.Has(CustomTargetRepositoryFile))
}

func TestEncodeOmitsAbsent(t *testing.T) {
	var buf bytes.Buffer
	assert.NilError(t, (&Set{}).Encode(&buf))
	assert.Check(t, is.Equal(strings.TrimSpace(buf.String()), "{}"))
}

func TestNilSet(t *testing.T) {
	var set *Set
	assert.Check(t, !set.Has(OpenSSHConfig))
}
