// Copyright 2026 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package site builds a static site from a directory of Markdown pages.
package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"zombiezen.com/go/sitemark/internal/config"
	"zombiezen.com/go/sitemark/page"
)

// A Generator writes a site described by its Config.
// A Generator is safe to use from multiple goroutines
// once its fields are set.
type Generator struct {
	Config *config.Config
	// Logger receives progress messages.
	// If nil, nothing is logged.
	Logger *log.Logger
	// Template is used for pages that do not name their own template.
	Template *page.Template

	mu        sync.Mutex
	templates map[string]*page.Template
}

// New returns a generator for cfg with the configured default template loaded.
func New(cfg *config.Config, logger *log.Logger) (*Generator, error) {
	tmpl, err := page.LoadTemplate(cfg.TemplatePath)
	if err != nil {
		return nil, err
	}
	return &Generator{
		Config:   cfg,
		Logger:   logger,
		Template: tmpl,
	}, nil
}

// Stats summarizes a call to [Generator.GenerateAll].
type Stats struct {
	Pages   int
	Drafts  int
	Bytes   int64
	Elapsed time.Duration
}

// Build replaces the output directory with the static files
// followed by the generated pages.
func (g *Generator) Build(ctx context.Context) (*Stats, error) {
	if err := g.CopyStatic(ctx); err != nil {
		return nil, err
	}
	return g.GenerateAll(ctx)
}

// CopyStatic removes the output directory
// and recreates it as a copy of the static directory.
// A missing static directory leaves the output directory empty.
func (g *Generator) CopyStatic(ctx context.Context) error {
	out := g.Config.OutputDir
	if err := os.RemoveAll(out); err != nil {
		return fmt.Errorf("copy static: %w", err)
	}
	if err := os.MkdirAll(out, 0o777); err != nil {
		return fmt.Errorf("copy static: %w", err)
	}
	static := g.Config.StaticDir
	if _, err := os.Stat(static); errors.Is(err, fs.ErrNotExist) {
		g.logger().Warn("static directory not found", "dir", static)
		return nil
	}
	err := filepath.WalkDir(static, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(static, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(out, rel)
		if d.IsDir() {
			return os.MkdirAll(dst, 0o777)
		}
		if !d.Type().IsRegular() {
			g.logger().Debug("skipping irregular file", "path", path)
			return nil
		}
		if err := copyFile(dst, path); err != nil {
			return err
		}
		g.logger().Debug("copied", "src", path, "dst", dst)
		return nil
	})
	if err != nil {
		return fmt.Errorf("copy static: %w", err)
	}
	return nil
}

func copyFile(dst, src string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

type job struct {
	src string
	dst string
}

// GenerateAll renders every .md file under the content directory
// to the corresponding .html path under the output directory.
// Pages are rendered by Config.Workers goroutines.
// GenerateAll stops at the first error and returns it.
func (g *Generator) GenerateAll(ctx context.Context) (*Stats, error) {
	start := time.Now()
	jobs, err := g.collect()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var (
		firstErr  error
		errOnce   sync.Once
		pages     atomic.Int64
		drafts    atomic.Int64
		totalSize atomic.Int64
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	queue := make(chan job)
	workers := g.Config.Workers
	if workers < 1 {
		workers = 1
	}
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				if ctx.Err() != nil {
					continue
				}
				result, err := g.GeneratePage(ctx, j.src, j.dst)
				if err != nil {
					fail(err)
					continue
				}
				if result.Meta.Draft {
					drafts.Add(1)
					continue
				}
				pages.Add(1)
				totalSize.Add(int64(len(result.HTML)))
			}
		}()
	}
feed:
	for _, j := range jobs {
		select {
		case queue <- j:
		case <-ctx.Done():
			break feed
		}
	}
	close(queue)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generate pages: %w", err)
	}
	stats := &Stats{
		Pages:   int(pages.Load()),
		Drafts:  int(drafts.Load()),
		Bytes:   totalSize.Load(),
		Elapsed: time.Since(start),
	}
	g.logger().Info("generated pages",
		"pages", stats.Pages,
		"drafts", stats.Drafts,
		"size", humanize.Bytes(uint64(stats.Bytes)),
		"duration", stats.Elapsed.Round(time.Millisecond))
	return stats, nil
}

// collect lists the pages to generate in lexical order.
func (g *Generator) collect() ([]job, error) {
	content := g.Config.ContentDir
	var jobs []job
	err := filepath.WalkDir(content, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}
		rel, err := filepath.Rel(content, path)
		if err != nil {
			return err
		}
		jobs = append(jobs, job{
			src: path,
			dst: filepath.Join(g.Config.OutputDir, strings.TrimSuffix(rel, ".md")+".html"),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("generate pages: %w", err)
	}
	return jobs, nil
}

// GeneratePage renders the Markdown file at src and writes it to dst,
// creating parent directories as needed.
// Draft pages are rendered but not written.
func (g *Generator) GeneratePage(ctx context.Context, src, dst string) (*page.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.logger().Debug("generating page", "src", src, "dst", dst)
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("generate page: %w", err)
	}
	meta, _, err := page.SplitFrontMatter(data)
	if err != nil {
		return nil, fmt.Errorf("generate page %s: %w", src, err)
	}
	tmpl, err := g.template(meta.Template)
	if err != nil {
		return nil, fmt.Errorf("generate page %s: %w", src, err)
	}
	result, err := page.Render(data, tmpl, &page.RenderOptions{
		Rewriter:         page.NewBasePathRewriter(g.Config.BasePath),
		NormalizeUnicode: g.Config.NormalizeUnicode,
	})
	if err != nil {
		return nil, fmt.Errorf("generate page %s: %w", src, err)
	}
	if result.Meta.Draft {
		g.logger().Info("skipping draft", "src", src)
		return result, nil
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o777); err != nil {
		return nil, fmt.Errorf("generate page %s: %w", src, err)
	}
	if err := os.WriteFile(dst, result.HTML, 0o666); err != nil {
		return nil, fmt.Errorf("generate page %s: %w", src, err)
	}
	return result, nil
}

// template returns the named template relative to the content directory,
// or the default template if name is empty.
func (g *Generator) template(name string) (*page.Template, error) {
	if name == "" {
		if g.Template == nil {
			return nil, errors.New("no template")
		}
		return g.Template, nil
	}
	path := filepath.Join(g.Config.ContentDir, name)
	g.mu.Lock()
	defer g.mu.Unlock()
	if t := g.templates[path]; t != nil {
		return t, nil
	}
	t, err := page.LoadTemplate(path)
	if err != nil {
		return nil, err
	}
	if g.templates == nil {
		g.templates = make(map[string]*page.Template)
	}
	g.templates[path] = t
	return t, nil
}

var discard = log.New(io.Discard)

func (g *Generator) logger() *log.Logger {
	if g.Logger == nil {
		return discard
	}
	return g.Logger
}
