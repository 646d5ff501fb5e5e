package vendorrepofiles

import (
	"context"
	"testing"

	"github.com/cloudlinux/ipu-actors/pkg/actor"
	"github.com/cloudlinux/ipu-actors/pkg/facts"
	"github.com/cloudlinux/ipu-actors/pkg/internal/testoutput"
	"github.com/cloudlinux/ipu-actors/pkg/logging"
	"gotest.tools/assert"
	is "gotest.tools/assert/cmp"
)

func TestProcessProducesNothing(t *testing.T) {
	logging.Set(testoutput.Setter(t))
	defer logging.Set(testoutput.Revert())

	for _, set := range []*facts.Set{
		{},
		{ActiveVendorList: &facts.VendorList{Data: []string{"epel", "mariadb"}}},
	} {
		env := actor.Env{Facts: set, Produced: &facts.Set{}}
		assert.NilError(t, actor.Run(context.Background(), env, &ScanVendorRepofiles{}))
		assert.Check(t, is.Len(env.Produced.Repositories, 0))
	}
}
