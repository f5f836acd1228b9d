package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omarluq/dsgen/internal/di"
)

// ErrGenerationFailed is returned when the dataset document could not be written.
var ErrGenerationFailed = errors.New("dataset yaml generation failed")

func runEmit(_ *cobra.Command, _ []string) error {
	return emitFromConfig(cfgFile)
}

// emitFromConfig emits the document described by the config at path
// (defaults when empty) and logs the overall outcome.
func emitFromConfig(path string) (err error) {
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
	logger := di.MustInvoke[*di.LoggerService](container).Logger

	res := svc.Emit()
	if res.IsError() {
		logger.Error().Msg("dataset yaml generation failed")
		return fmt.Errorf("%w: %w", ErrGenerationFailed, res.Error())
	}

	logger.Info().Msg("dataset yaml generation completed successfully")
	return nil
}
