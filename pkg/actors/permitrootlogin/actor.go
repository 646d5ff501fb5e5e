// Package permitrootlogin keeps root password logins working across the
// OpenSSH upgrade on hosts that relied on the old PermitRootLogin default.
package permitrootlogin

import (
	"github.com/cloudlinux/ipu-actors/pkg/actor"
	"github.com/cloudlinux/ipu-actors/pkg/facts"
	"github.com/cloudlinux/ipu-actors/pkg/patch"
	"github.com/cloudlinux/ipu-actors/pkg/sshd"
)

const backupPath = "/etc/ssh/sshd_config.leapp_backup"

// header is placed first in sshd_config so it is never read as part of a
// Match block.
var header = []string{
	"# Automatically added by Leapp to preserve RHEL7 default\n",
	"# behavior after migration.\n",
	"# Placed on top of the file to avoid being included into Match blocks.\n",
	"PermitRootLogin yes\n",
	"\n",
}

// Assert PermitRootLogin as an actor implementor.
var _ actor.Actor = (*PermitRootLogin)(nil)

type PermitRootLogin struct{}

func (*PermitRootLogin) Name() string {
	return "openssh_permit_root_login"
}

func (*PermitRootLogin) Consumes() []facts.Name {
	return []facts.Name{facts.OpenSSHConfig}
}

func (*PermitRootLogin) Produces() []facts.Name { return nil }

func (*PermitRootLogin) Process(ctx *actor.Context) error {
	configPath := ctx.Host.Path(sshd.DefaultConfigPath)

	cfg := ctx.Facts.OpenSSHConfig
	if cfg == nil {
		ctx.Log.Debug("no OpenSSH configuration fact provided, reading it from the host")
		read, err := sshd.ReadFile(configPath)
		if err != nil {
			ctx.Log.WithError(err).Info("unable to read sshd configuration, doing nothing")
			return nil
		}
		cfg = read
	}

	log := ctx.Log.WithField("global", sshd.GlobalValue(cfg.PermitRootLogin, "(default)"))
	if !sshd.SemanticsChange(cfg.PermitRootLogin) {
		log.Debug("PermitRootLogin behavior is preserved by the upgrade")
		return nil
	}

	log.Info("PermitRootLogin default changes with the upgrade, adding explicit setting")
	err := patch.PrependWithBackup(configPath, ctx.Host.Path(backupPath), header)
	switch {
	case err == nil:
		log.WithField("backup", ctx.Host.Path(backupPath)).Info("preserved PermitRootLogin behavior")
	case patch.IsNotFound(err):
		log.WithField("path", configPath).Info("sshd configuration not present, doing nothing")
	default:
		log.WithError(err).Error("failed to update sshd configuration")
	}
	return nil
}
