// Package vendorrepofiles declares the vendor repository scan. The scan of
// vendor repository definitions is performed by the upgrade engine's own
// library; this actor only reports which vendors it would cover.
package vendorrepofiles

import (
	"github.com/cloudlinux/ipu-actors/pkg/actor"
	"github.com/cloudlinux/ipu-actors/pkg/facts"
)

// Assert ScanVendorRepofiles as an actor implementor.
var _ actor.Actor = (*ScanVendorRepofiles)(nil)

type ScanVendorRepofiles struct{}

func (*ScanVendorRepofiles) Name() string {
	return "scan_vendor_repofiles"
}

func (*ScanVendorRepofiles) Consumes() []facts.Name {
	return []facts.Name{facts.ActiveVendorList}
}

func (*ScanVendorRepofiles) Produces() []facts.Name {
	return []facts.Name{facts.CustomTargetRepository, facts.CustomTargetRepositoryFile}
}

func (*ScanVendorRepofiles) Process(ctx *actor.Context) error {
	vendors := ctx.Facts.ActiveVendorList
	if vendors == nil || len(vendors.Data) == 0 {
		ctx.Log.Info("no active vendors, nothing to scan")
		return nil
	}
	ctx.Log.WithField("vendors", vendors.Data).Info("vendor repositories are scanned by the upgrade engine")
	return nil
}
