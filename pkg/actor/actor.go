package actor

import (
	"context"
	"strings"

	"github.com/cloudlinux/ipu-actors/pkg/facts"
	"github.com/cloudlinux/ipu-actors/pkg/host"
	"github.com/cloudlinux/ipu-actors/pkg/logging"
	"github.com/pkg/errors"
)

// Actor is a single step of the upgrade.
type Actor interface {
	Name() string
	// Consumes lists the facts the actor reads.
	Consumes() []facts.Name
	// Produces lists the facts the actor may add.
	Produces() []facts.Name
	// Process performs the step. Failures the step can live with are logged
	// by the actor and not returned.
	Process(*Context) error
}

// Context is handed to an actor for one run.
type Context struct {
	context.Context

	Log  logging.SubLogger
	Host host.Host
	// Facts holds what earlier actors produced.
	Facts *facts.Set
	// Produced collects the facts this run adds.
	Produced *facts.Set
}

// Env is the shared state of a run over several actors.
type Env struct {
	Host     host.Host
	Facts    *facts.Set
	Produced *facts.Set
}

// Run processes each actor in order. A failing actor is logged and the
// remaining actors still run; the returned error only summarizes that at
// least one failed. Cancelling ctx stops before the next actor.
func Run(ctx context.Context, env Env, actors ...Actor) error {
	log := logging.New("actor")
	if env.Facts == nil {
		env.Facts = &facts.Set{}
	}
	if env.Produced == nil {
		env.Produced = &facts.Set{}
	}

	var failed []string
	for _, a := range actors {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "run interrupted")
		}

		alog := log.WithField("actor", a.Name())
		for _, name := range a.Consumes() {
			if !env.Facts.Has(name) {
				alog.WithField("fact", name).Debug("consumed fact not provided")
			}
		}

		alog.Debug("processing")
		err := a.Process(&Context{
			Context:  ctx,
			Log:      alog,
			Host:     env.Host,
			Facts:    env.Facts,
			Produced: env.Produced,
		})
		if err != nil {
			failed = append(failed, a.Name())
			alog.WithError(err).Error("actor failed")
			continue
		}
		alog.Debug("processed")
	}

	if len(failed) > 0 {
		err := errors.Errorf("actors failed: %s", strings.Join(failed, ", "))
		log.WithError(err).Error("see log for actor failures")
		return err
	}
	return nil
}

// Find returns the actors with the given names, in the order requested.
func Find(all []Actor, names ...string) ([]Actor, error) {
	byName := make(map[string]Actor, len(all))
	for _, a := range all {
		byName[a.Name()] = a
	}
	found := make([]Actor, 0, len(names))
	for _, name := range names {
		a, ok := byName[name]
		if !ok {
			return nil, errors.Errorf("unknown actor %q", name)
		}
		found = append(found, a)
	}
	return found, nil
}
