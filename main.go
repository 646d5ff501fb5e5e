package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/cloudlinux/ipu-actors/pkg/actor"
	"github.com/cloudlinux/ipu-actors/pkg/actors"
	"github.com/cloudlinux/ipu-actors/pkg/config"
	"github.com/cloudlinux/ipu-actors/pkg/facts"
	"github.com/cloudlinux/ipu-actors/pkg/logging"
	"github.com/cloudlinux/ipu-actors/pkg/sshd"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func main() {
	os.Exit(_main())
}

func _main() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newApp(os.Stdout).RunContext(ctx, os.Args); err != nil {
		logging.New("main").WithError(err).Error("exiting")
		return 1
	}
	return 0
}

func newApp(out io.Writer) *cli.App {
	cfg := config.Default()

	return &cli.App{
		Name:   "ipu-actors",
		Usage:  "run in-place upgrade actors against this host",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to the TOML configuration file",
				Value:   config.DefaultPath,
				EnvVars: []string{"IPU_ACTORS_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "root",
				Usage:   "prefix for every host path",
				EnvVars: []string{"IPU_ACTORS_ROOT"},
			},
			&cli.StringFlag{
				Name:    "target-userspace",
				Usage:   "path of the target OS userspace",
				EnvVars: []string{"IPU_ACTORS_TARGET_USERSPACE"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "logging level (panic, fatal, error, warn, info, debug, trace)",
				EnvVars: []string{"IPU_ACTORS_LOG_LEVEL"},
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "shorthand for --log-level=debug",
			},
		},
		Before: func(c *cli.Context) error {
			loaded, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			*cfg = *loaded
			if c.IsSet("root") {
				cfg.Root = c.String("root")
			}
			if c.IsSet("target-userspace") {
				cfg.TargetUserspace = c.String("target-userspace")
			}
			if c.IsSet("log-level") {
				cfg.LogLevel = c.String("log-level")
			}
			if c.Bool("debug") {
				cfg.LogLevel = "debug"
			}

			logging.Set(logging.Level(cfg.LogLevel))
			if cfg.Journal {
				logging.Set(logging.Journal(c.App.Name))
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "list the available actors",
				Action: func(c *cli.Context) error { return listActors(c.App.Writer) },
			},
			{
				Name:      "run",
				Usage:     "run actors, all of them when none is named",
				ArgsUsage: "[actor...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "facts",
						Usage: "YAML or JSON document with the facts to consume",
					},
					&cli.StringFlag{
						Name:  "produce",
						Usage: "write produced facts to this file",
					},
				},
				Action: func(c *cli.Context) error {
					return runActors(c.Context, cfg, c.String("facts"), c.String("produce"), c.Args().Slice())
				},
			},
			{
				Name:  "check-sshd",
				Usage: "report whether the upgrade changes PermitRootLogin behavior",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "facts",
						Usage: "read the OpenSSH configuration fact instead of sshd_config",
					},
				},
				Action: func(c *cli.Context) error {
					return checkSSHD(c.App.Writer, cfg, c.String("facts"))
				},
			},
		},
	}
}

func listActors(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCONSUMES\tPRODUCES")
	for _, a := range actors.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.Name(), joinNames(a.Consumes()), joinNames(a.Produces()))
	}
	return w.Flush()
}

func joinNames(names []facts.Name) string {
	if len(names) == 0 {
		return "-"
	}
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ",")
}

func loadFacts(path string) (*facts.Set, error) {
	if path == "" {
		return &facts.Set{}, nil
	}
	return facts.Load(path)
}

func runActors(ctx context.Context, cfg *config.Config, factsPath, producePath string, names []string) error {
	selected := actors.All()
	if len(names) > 0 {
		var err error
		selected, err = actor.Find(selected, names...)
		if err != nil {
			return err
		}
	}

	set, err := loadFacts(factsPath)
	if err != nil {
		return err
	}

	env := actor.Env{Host: cfg.Host(), Facts: set, Produced: &facts.Set{}}
	runErr := actor.Run(ctx, env, selected...)
	if producePath != "" {
		if err := env.Produced.Save(producePath); err != nil {
			return errors.WithMessage(err, "unable to record produced facts")
		}
	}
	return runErr
}

func checkSSHD(out io.Writer, cfg *config.Config, factsPath string) error {
	var snapshot sshd.Snapshot
	if factsPath != "" {
		set, err := facts.Load(factsPath)
		if err != nil {
			return err
		}
		if set.OpenSSHConfig == nil {
			return errors.Errorf("%s has no %s fact", factsPath, facts.OpenSSHConfig)
		}
		snapshot = set.OpenSSHConfig.PermitRootLogin
	} else {
		read, err := sshd.ReadFile(cfg.Host().Path(sshd.DefaultConfigPath))
		if err != nil {
			return err
		}
		snapshot = read.PermitRootLogin
	}

	fmt.Fprintf(out, "directives: %d\n", len(snapshot))
	fmt.Fprintf(out, "global: %s\n", sshd.GlobalValue(snapshot, "(default)"))
	fmt.Fprintf(out, "changes on upgrade: %t\n", sshd.SemanticsChange(snapshot))
	return nil
}
