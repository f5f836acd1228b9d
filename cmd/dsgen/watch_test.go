package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWatchRequiresConfig(t *testing.T) {
	// Note: Cannot use t.Parallel() (modifies global cfgFile)
	withConfigFile(t, "")

	cmd := &cobra.Command{Use: "watch"}
	cmd.SetContext(context.Background())

	err := runWatch(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--config")
}

func TestWatchConfigEmitsAndReemits(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	datasetDir := filepath.Join(root, "food-101")
	require.NoError(t, os.Mkdir(datasetDir, 0o750))
	configPath, outputPath := writeDatasetConfig(t, root, datasetDir, `["pizza"]`)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchConfig(ctx, configPath)
	}()

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(filepath.Clean(outputPath))
		return err == nil && strings.Contains(string(data), "nc: 1\n")
	}, 2*time.Second, 20*time.Millisecond)

	// Allow watcher to initialize
	time.Sleep(100 * time.Millisecond)
	writeDatasetConfig(t, root, datasetDir, `["pizza", "sushi"]`)

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(filepath.Clean(outputPath))
		return err == nil && strings.Contains(string(data), "nc: 2\n")
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watchConfig did not return after cancel")
	}
}
