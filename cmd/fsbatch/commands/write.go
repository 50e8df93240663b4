package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/fsbatch/cmd/fsbatch/opts"
	"github.com/walteh/fsbatch/pkg/operation"
)

// NewWriteCmd creates a new write command
func NewWriteCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write <file>[=<content>]...",
		Short: "Write files",
		Long: `Write creates or overwrites every given file in parallel.
A file given without "=<content>" is written empty.`,
		Example: `  fsbatch write a.txt=hello b.txt`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.Operator.Write(cmd.Context(), parseFileSpecs(args))
		},
	}

	return cmd
}

// parseFileSpecs turns name[=content] arguments into file specs
func parseFileSpecs(args []string) []operation.FileSpec {
	files := make([]operation.FileSpec, 0, len(args))
	for _, arg := range args {
		name, data, ok := strings.Cut(arg, "=")
		spec := operation.FileSpec{Name: name}
		if ok {
			spec.Data = []byte(data)
		}
		files = append(files, spec)
	}
	return files
}
