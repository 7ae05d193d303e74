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

// sitemark builds a static website from a directory of Markdown files.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"zombiezen.com/go/sitemark"
	"zombiezen.com/go/sitemark/format"
	"zombiezen.com/go/sitemark/internal/config"
	"zombiezen.com/go/sitemark/site"
)

const version = "0.1.0"

const usage = `usage: sitemark <command> [options]

commands:
  build [-config FILE] [-base PATH]   generate the site
  render [FILE]                       print the HTML for one Markdown file
  fmt [FILE]                          print one Markdown file in canonical form
  version                             print the version
`

var errUsage = errors.New("usage")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "sitemark",
	})
	err := run(ctx, logger, os.Stdin, os.Stdout, os.Args[1:])
	cancel()
	if errors.Is(err, errUsage) {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, stdin io.Reader, stdout io.Writer, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "build":
		return build(ctx, logger, args[1:])
	case "render":
		return render(stdin, stdout, args[1:])
	case "fmt":
		return formatMarkdown(stdin, stdout, args[1:])
	case "version", "-v", "--version":
		_, err := fmt.Fprintf(stdout, "sitemark v%s\n", version)
		return err
	case "help", "-h", "--help":
		_, err := io.WriteString(stdout, usage)
		return err
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func build(ctx context.Context, logger *log.Logger, args []string) error {
	fset := flag.NewFlagSet("sitemark build", flag.ContinueOnError)
	configPath := fset.String("config", config.DefaultPath(), "configuration `file`")
	basePath := fset.String("base", "", "serve the site from `path` instead of the configured base path")
	if err := fset.Parse(args); err != nil {
		return errUsage
	}
	if fset.NArg() > 0 {
		return errUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *basePath != "" {
		cfg.BasePath = *basePath
		if !strings.HasSuffix(cfg.BasePath, "/") {
			cfg.BasePath += "/"
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("-base: %w", err)
		}
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	g, err := site.New(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("building site", "content", cfg.ContentDir, "output", cfg.OutputDir, "base", cfg.BasePath)
	_, err = g.Build(ctx)
	return err
}

// readInput returns the contents of the file named in args,
// or stdin if args is empty.
func readInput(stdin io.Reader, args []string) (string, error) {
	var data []byte
	var err error
	switch len(args) {
	case 0:
		data, err = io.ReadAll(stdin)
	case 1:
		data, err = os.ReadFile(args[0])
	default:
		return "", errUsage
	}
	return string(data), err
}

func render(stdin io.Reader, stdout io.Writer, args []string) error {
	markdown, err := readInput(stdin, args)
	if err != nil {
		return err
	}
	root, err := sitemark.Parse(markdown)
	if err != nil {
		return err
	}
	if err := sitemark.RenderHTML(stdout, root.AsNode()); err != nil {
		return err
	}
	_, err = io.WriteString(stdout, "\n")
	return err
}

func formatMarkdown(stdin io.Reader, stdout io.Writer, args []string) error {
	markdown, err := readInput(stdin, args)
	if err != nil {
		return err
	}
	return format.Format(stdout, sitemark.Segment(markdown))
}
