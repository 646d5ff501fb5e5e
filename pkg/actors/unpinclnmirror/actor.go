// Package unpinclnmirror removes the CLN mirror list pinned for the duration
// of the upgrade, once the host has booted into the target system.
package unpinclnmirror

import (
	"strings"

	"github.com/cloudlinux/ipu-actors/pkg/actor"
	"github.com/cloudlinux/ipu-actors/pkg/facts"
	"github.com/cloudlinux/ipu-actors/pkg/patch"
)

const (
	// CLNRepoID is the repository the pinned mirror served.
	CLNRepoID = "cloudlinux-x86_64-server-8"
	// DefaultCLNMirror is the endpoint up2date falls back to once the pin is
	// gone.
	DefaultCLNMirror = "https://xmlrpc.cln.cloudlinux.com/XMLRPC/"

	mirrorlistPath = "/etc/mirrorlist"
	up2datePath    = "/etc/sysconfig/rhn/up2date"

	mirrorlistRef = "etc/mirrorlist"
)

// Assert UnpinClnMirror as an actor implementor.
var _ actor.Actor = (*UnpinClnMirror)(nil)

type UnpinClnMirror struct{}

func (*UnpinClnMirror) Name() string {
	return "unpin_cln_mirror"
}

func (*UnpinClnMirror) Consumes() []facts.Name { return nil }

func (*UnpinClnMirror) Produces() []facts.Name { return nil }

func (*UnpinClnMirror) Process(ctx *actor.Context) error {
	rel, err := ctx.Host.Release()
	if err != nil {
		ctx.Log.WithError(err).Warn("unable to identify distribution, skipping")
		return nil
	}
	if !rel.IsCloudLinux() {
		ctx.Log.WithField("id", rel.ID).Debug("not CloudLinux, skipping")
		return nil
	}

	for _, path := range []string{
		ctx.Host.Path(mirrorlistPath),
		ctx.Host.TargetPath(mirrorlistPath),
	} {
		if err := patch.Remove(path); err != nil {
			ctx.Log.WithError(err).Infof("can't remove %s, doing nothing", path)
			continue
		}
		ctx.Log.WithField("path", path).Info("removed pinned mirror list")
	}

	for _, path := range []string{
		ctx.Host.Path(up2datePath),
		ctx.Host.TargetPath(up2datePath),
	} {
		if err := patch.Lines(path, dropMirrorlist); err != nil {
			ctx.Log.WithError(err).Infof("can't update %s, doing nothing", path)
			continue
		}
		ctx.Log.WithField("path", path).Info("unpinned up2date from mirror list")
	}
	return nil
}

// dropMirrorlist removes every line referring to the pinned mirror list.
func dropMirrorlist(lines []string) []string {
	kept := lines[:0]
	for _, line := range lines {
		if !strings.Contains(line, mirrorlistRef) {
			kept = append(kept, line)
		}
	}
	return kept
}
