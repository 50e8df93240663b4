// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/fsbatch/cmd/fsbatch/commands"
	"github.com/walteh/fsbatch/cmd/fsbatch/opts"
	"github.com/walteh/fsbatch/pkg/log"
	"github.com/walteh/fsbatch/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd builds the command tree
func newRootCmd() *cobra.Command {
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "fsbatch",
		Short: "Batch file system operations",
		Long: `fsbatch removes, reads, writes and creates files and directories in
batches, and mirrors directory trees incrementally by modification time.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd, rootOpts)
			cmd.SetContext(ctx)

			op, err := operation.New(operation.Options{
				Logger: rootOpts.Logger,
				Limit:  rootOpts.Limit,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}
			rootOpts.Operator = op
			return nil
		},
	}

	addRootFlags(cmd, rootOpts)

	cmd.AddCommand(
		commands.NewUnlinkCmd(rootOpts),
		commands.NewReadCmd(rootOpts),
		commands.NewWriteCmd(rootOpts),
		commands.NewMkdirCmd(rootOpts),
		commands.NewCopyCmd(rootOpts),
		commands.NewRunCmd(rootOpts),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&o.NoColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().IntVar(&o.Limit, "limit", 0, "maximum parallel tasks per batch (0 = unbounded)")
}

// setupLogging configures zerolog and the console logger based on flags
func setupLogging(cmd *cobra.Command, o *opts.RootOpts) context.Context {
	if o.NoColor {
		color.NoColor = true
		pterm.DisableColor()
	}

	level := zerolog.InfoLevel
	if o.Debug {
		level = zerolog.DebugLevel
	}
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: o.NoColor}).
		Level(level).With().Timestamp().Logger()

	// console lines already cover info output; mirror them only when debugging
	mirror := zerolog.Nop()
	if o.Debug {
		mirror = zlog
	}
	o.Logger = log.New(cmd.ErrOrStderr(), mirror)

	ctx := zlog.WithContext(cmd.Context())
	return log.NewContext(ctx, o.Logger)
}
