// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sumi Contributors

package portal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"github.com/psychoplath9450/SUMI/pkg/errutil"
)

// watchExts are the source extensions a change to which triggers a rebuild.
var watchExts = []string{".css", ".js", ".html"}

// Watch rebuilds the portal whenever a source file changes, until ctx is
// cancelled. An initial build runs before watching starts. Rebuild failures
// are logged, not fatal: the next change retries.
func (b *Builder) Watch(ctx context.Context) error {
	if _, err := b.Build(); err != nil {
		errutil.LogError(b.log, "initial build failed", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range []string{b.cfg.CSSDir, b.cfg.JSDir, b.cfg.TemplateDir} {
		if _, err := os.Stat(dir); err != nil {
			b.log.Warn("not watching missing directory", "dir", dir)
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	ignore, err := compileIgnore(b.cfg.Ignore)
	if err != nil {
		return err
	}

	b.log.Info("watching portal sources", "debounce", b.cfg.Debounce)

	debounce := time.NewTimer(b.cfg.Debounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if !b.watchRelevant(event.Name, ignore) {
				continue
			}
			b.log.Debug("portal source changed", "file", event.Name, "op", event.Op.String())
			debounce.Reset(b.cfg.Debounce)

		case <-debounce.C:
			if _, err := b.Build(); err != nil {
				errutil.LogError(b.log, "rebuild failed", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			b.log.Error("watcher error", "error", err)
		}
	}
}

// watchRelevant reports whether a changed path should trigger a rebuild.
func (b *Builder) watchRelevant(path string, ignore []glob.Glob) bool {
	base := filepath.Base(path)
	for _, g := range ignore {
		if g.Match(base) {
			return false
		}
	}
	for _, ext := range watchExts {
		if strings.HasSuffix(base, ext) {
			return true
		}
	}
	return false
}

func compileIgnore(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}
