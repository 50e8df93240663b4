package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/fsbatch/cmd/fsbatch/opts"
	"gitlab.com/tozd/go/errors"
)

// NewReadCmd creates a new read command
func NewReadCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <file>",
		Short: "Print a file",
		Long:  `Read loads a file, reports its size and prints its content to stdout.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := opts.Operator.Read(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return errors.Errorf("printing file: %w", err)
			}
			return nil
		},
	}

	return cmd
}
