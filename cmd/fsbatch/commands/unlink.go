package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/fsbatch/cmd/fsbatch/opts"
)

// NewUnlinkCmd creates a new unlink command
func NewUnlinkCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlink <file>...",
		Short: "Delete files",
		Long: `Unlink deletes every given file in parallel.
Files that do not exist are ignored.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.Operator.Unlink(cmd.Context(), args)
		},
	}

	return cmd
}
