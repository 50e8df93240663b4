package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/fsbatch/cmd/fsbatch/opts"
	"github.com/walteh/fsbatch/pkg/operation"
)

// NewCopyCmd creates a new copy command
func NewCopyCmd(opts *opts.RootOpts) *cobra.Command {
	var ignore []string

	cmd := &cobra.Command{
		Use:   "copy <source> <target>",
		Short: "Mirror a directory tree",
		Long: `Copy mirrors the source directory into the target directory.
It will:
1. Create target directories that do not exist
2. Copy files missing in the target
3. Copy files whose target is older than the source
4. Leave every other file untouched`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := opts.Operator.Copy(cmd.Context(), operation.CopyConfig{
				Source: args[0],
				Target: args[1],
				Ignore: ignore,
			})
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&ignore, "ignore", "i", nil, "doublestar pattern relative to source to skip (use **/*.log for any depth), may be repeated")

	return cmd
}
