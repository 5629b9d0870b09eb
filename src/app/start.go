package app

import (
	"context"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Blackdeer1524/fnvhash/src"
	"github.com/Blackdeer1524/fnvhash/src/delivery"
	"github.com/Blackdeer1524/fnvhash/src/pkg/utils"
)

// Entrypoint wires environment, logger and the command tree together.
type Entrypoint struct {
	ConfigPath string
	Env        envVars

	root *cobra.Command
	log  src.Logger
}

func (e *Entrypoint) Init(_ context.Context) error {
	e.Env = mustLoadEnv(e.ConfigPath)

	var log src.Logger
	if e.Env.Environment == EnvDev {
		log = utils.Must(zap.NewDevelopment()).Sugar()
	} else {
		log = utils.Must(zap.NewProduction()).Sugar()
	}

	e.log = log

	e.root = delivery.NewRootCommand(afero.NewOsFs(), log, delivery.Defaults{
		Algorithm: e.Env.Algorithm,
		Workers:   e.Env.Workers,
	})

	return nil
}

func (e *Entrypoint) Run(ctx context.Context) error {
	return e.root.ExecuteContext(ctx)
}

func (e *Entrypoint) Close() error {
	if e.log == nil {
		return nil
	}

	return e.log.Sync()
}
