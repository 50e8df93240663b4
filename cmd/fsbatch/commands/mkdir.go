package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/fsbatch/cmd/fsbatch/opts"
)

// NewMkdirCmd creates a new mkdir command
func NewMkdirCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mkdir <dir>...",
		Short: "Create directories with all parents",
		Long: `Mkdir creates every given directory and all of its parents, parents first.
Directories that already exist are left alone.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.Operator.Mkdir(cmd.Context(), args)
		},
	}

	return cmd
}
