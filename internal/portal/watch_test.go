// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

package portal_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/psychoplath9450/SUMI/internal/portal"
)

func TestWatch_StopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := testConfig(t)
	cfg.Debounce = 10 * time.Millisecond
	logger, _ := captureLogger()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- portal.NewBuilder(cfg, logger).Watch(ctx)
	}()

	// Give the watcher time to perform the initial build, then cancel.
	require.Eventually(t, func() bool {
		_, err := os.Stat(cfg.Output)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond, "initial build did not run")
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancellation")
	}
}

func TestWatch_RebuildsOnChange(t *testing.T) {
	cfg := testConfig(t)
	cfg.Debounce = 10 * time.Millisecond
	logger, _ := captureLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = portal.NewBuilder(cfg, logger).Watch(ctx)
	}()

	require.Eventually(t, func() bool {
		_, err := os.Stat(cfg.Output)
		return err == nil
	}, 5*time.Second, 20*time.Millisecond, "initial build did not run")

	require.NoError(t, os.WriteFile(filepath.Join(cfg.CSSDir, "base.css"),
		[]byte(".changed { color: red; }"), 0o600))

	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(cfg.Output)
		return err == nil && strings.Contains(string(data), ".changed")
	}, 5*time.Second, 20*time.Millisecond, "change did not trigger a rebuild")
}

func TestWatch_IgnoresPatterns(t *testing.T) {
	cfg := testConfig(t)
	cfg.Debounce = 10 * time.Millisecond
	cfg.Ignore = []string{"*.css"} // ignore everything the test writes
	logger, logs := captureLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = portal.NewBuilder(cfg, logger).Watch(ctx)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "watching portal sources")
	}, 5*time.Second, 20*time.Millisecond)

	before, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.CSSDir, "base.css"),
		[]byte(".ignored {}"), 0o600))

	// The change must not propagate; give the debounce ample time to fire.
	time.Sleep(300 * time.Millisecond)
	after, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestWatch_InvalidIgnorePattern(t *testing.T) {
	cfg := testConfig(t)
	cfg.Ignore = []string{"[unclosed"}
	logger, _ := captureLogger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err := portal.NewBuilder(cfg, logger).Watch(ctx)
	assert.Error(t, err)
}
