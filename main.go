// Copyright (c) 2026 The Abliqo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// licenseupdater inserts or normalizes the license header at the top of Go
// source files. Paths that already carry an up-to-date header are left
// untouched; every rewritten path is printed to standard output.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultOrganization = "The Abliqo Authors"
	defaultHolderToken  = "Abliqo"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		check        bool
		organization string
		holder       string
	)

	cmd := &cobra.Command{
		Use:           "licenseupdater [flags] FILE...",
		Short:         "Insert or normalize license headers in Go source files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
				return errors.New("no input files")
			}

			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			writer := &fsWriter{write: !check}
			if check {
				writer.differ = diffChecker()
			}

			// The template year is computed once here, not per file.
			normalizer, err := newNormalizer(time.Now().Year(), organization, holder)
			if err != nil {
				return err
			}

			if err := run(cmd.OutOrStdout(), logger, normalizer, writer, args); err != nil {
				return err
			}

			if check {
				if err := writer.differ.error(); err != nil {
					fmt.Fprintln(cmd.OutOrStdout(), err.Error())
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "diff files instead of rewriting them and fail if any would change")
	cmd.Flags().StringVar(&organization, "organization", defaultOrganization, "copyright holder written into new headers")
	cmd.Flags().StringVar(&holder, "holder", defaultHolderToken, "token identifying an existing header as ours")

	return cmd
}

// run processes paths strictly in order and stops at the first failure. A
// path with an unrecognized suffix is a failure, never a silent skip.
func run(out io.Writer, logger *zap.SugaredLogger, n *normalizer, w *fsWriter, paths []string) error {
	for _, path := range paths {
		if filepath.Ext(path) != goFileExt {
			err := errors.Newf("unsupported file type: %q", path)
			logger.Error(err)
			return err
		}

		changed, err := n.processFile(w, path)
		if err != nil {
			logger.Errorw("failed to process file", "path", path, "error", err)
			return err
		}

		if changed {
			fmt.Fprintln(out, path)
		}
	}

	return nil
}

func newLogger() (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewProductionConfig()

	// optionally override the log level from the default based on the LOG_LEVEL env var
	if lvl, exists := os.LookupEnv("LOG_LEVEL"); exists {
		if ll, err := zapcore.ParseLevel(lvl); err == nil {
			loggerConfig.Level.SetLevel(ll)
		}
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}
