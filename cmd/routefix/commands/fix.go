package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/routefix/pkg/config"
	"github.com/walteh/routefix/pkg/log"
	"github.com/walteh/routefix/pkg/operation"
	"github.com/walteh/routefix/pkg/rewrite"
	"github.com/walteh/routefix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🔧 RootOpts holds the dependencies shared by commands
type RootOpts struct {
	Config     *config.Config
	UserLogger *status.UserLogger
	Console    io.Writer
}

// NewFixCmd creates a new fix command
func NewFixCmd(optsFn func(context.Context) (*RootOpts, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Rewrite unguarded id parameter reads in route files",
		Long: `Fix scans the routes directory for source files and rewrites the two
id-parsing idioms:
1. const { id } = req.params;
2. const <name>Id = req.params.id;
Both become a parseInt conversion followed by an isNaN guard returning a
400 response. A file is written back only when its content changed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			opts, err := optsFn(ctx)
			if err != nil {
				return errors.Errorf("initializing: %w", err)
			}

			if err := RunFix(ctx, opts); err != nil {
				return errors.Errorf("fixing route files: %w", err)
			}
			return nil
		},
	}

	return cmd
}

// RunFix performs a whole fix run: discover, rewrite, report
func RunFix(ctx context.Context, opts *RootOpts) error {
	zlogger := zerolog.Ctx(ctx)

	clog := log.New(opts.Console, zlogger.GetLevel())
	clog.Header(fmt.Sprintf("fixing id parsing in %s", opts.Config.RoutesDir))

	mgr := status.NewManager(opts.Console, status.NewDefaultFileFormatter())

	op, err := operation.NewFixOperation(operation.Options{
		Config:    opts.Config,
		Rewriter:  rewrite.NewRegexRewriter(),
		StatusMgr: mgr,
		Logger:    zlogger,
	})
	if err != nil {
		return errors.Errorf("creating fix operation: %w", err)
	}

	runner := operation.NewRunner(zlogger, opts.Config.Async)
	if err := runner.Run(ctx, op); err != nil {
		return errors.Errorf("running fix operation: %w", err)
	}

	var fixed int
	for _, result := range mgr.Results() {
		if result.Status == status.StatusFixed {
			fixed++
		}
	}
	if fixed > 0 {
		opts.UserLogger.LogValidation(true, fmt.Sprintf("%d file(s) fixed", fixed), nil)
	} else {
		opts.UserLogger.LogRunChange("no files needed fixing")
	}

	return nil
}
