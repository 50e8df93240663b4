package commands

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/fsbatch/cmd/fsbatch/opts"
	"github.com/walteh/fsbatch/pkg/config"
	"github.com/walteh/fsbatch/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a plan file",
		Long: `Run loads a plan file (.yaml, .yml, .json, .hcl or .fsbatch) and runs its stages:
1. mkdir
2. write
3. copy
4. read
5. unlink
The first failing stage stops the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			plan, err := config.Load(ctx, opts.ConfigFile)
			if err != nil {
				return errors.Errorf("loading plan: %w", err)
			}

			res, err := opts.Operator.RunPlan(ctx, plan)
			if err != nil {
				return err
			}

			if len(plan.Copy) > 0 {
				data := pterm.TableData{{"source", "target", "directories", "files"}}
				for i, c := range plan.Copy {
					data = append(data, []string{
						c.Source,
						c.Target,
						strconv.Itoa(res.Copies[i].Directories),
						strconv.Itoa(res.Copies[i].Files),
					})
				}
				if err := pterm.DefaultTable.WithHasHeader().WithWriter(cmd.OutOrStdout()).WithData(data).Render(); err != nil {
					return errors.Errorf("rendering summary: %w", err)
				}
			}

			logger := log.FromContext(ctx)
			logger.Info("plan %s done (%s)", logger.Bold(plan.Location()), plan.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", ".fsbatch.yaml", "plan file path")

	return cmd
}
