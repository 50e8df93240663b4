package opts

import (
	"github.com/walteh/fsbatch/pkg/log"
	"github.com/walteh/fsbatch/pkg/operation"
)

// RootOpts contains shared options used by all commands.
// Operator and Logger are filled in by the root command before any subcommand runs.
type RootOpts struct {
	ConfigFile string
	Debug      bool
	NoColor    bool
	Limit      int

	Operator *operation.Operator
	Logger   *log.Logger
}
