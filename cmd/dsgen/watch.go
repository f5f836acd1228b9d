package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/omarluq/dsgen/internal/config"
	"github.com/omarluq/dsgen/internal/di"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the dataset YAML whenever the config changes",
	Long: `Emit the dataset YAML once, then watch the --config file and emit again
after every change until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if cfgFile == "" {
		return errors.New("watch requires --config")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return watchConfig(ctx, cfgFile)
}

// watchConfig emits once and then on every valid config change until ctx ends.
// Failed emissions are logged and do not stop the watch.
func watchConfig(ctx context.Context, path string) (err error) {
	container, err := di.NewContainer(path)
	if err != nil {
		return err
	}
	defer func() {
		if serr := container.Shutdown(); serr != nil && err == nil {
			err = serr
		}
	}()

	svc, err := di.Invoke[*di.EmitterService](container)
	if err != nil {
		return err
	}
	cfgSvc := di.MustInvoke[*di.ConfigService](container)
	logger := di.MustInvoke[*di.LoggerService](container).Logger

	_ = svc.Emit()

	return cfgSvc.Watch(ctx, *logger, func(cfg *config.Config) error {
		_ = svc.EmitConfig(cfg)
		return nil
	})
}
