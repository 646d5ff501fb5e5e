// Package actors lists every actor this module provides.
package actors

import (
	"github.com/cloudlinux/ipu-actors/pkg/actor"
	"github.com/cloudlinux/ipu-actors/pkg/actors/permitrootlogin"
	"github.com/cloudlinux/ipu-actors/pkg/actors/unpinclnmirror"
	"github.com/cloudlinux/ipu-actors/pkg/actors/vendorrepofiles"
)

// All returns the actors in the order the upgrade runs them.
func All() []actor.Actor {
	return []actor.Actor{
		&vendorrepofiles.ScanVendorRepofiles{},
		&permitrootlogin.PermitRootLogin{},
		&unpinclnmirror.UnpinClnMirror{},
	}
}
