package main

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cat-mip/cat-mip/site"
)

func buildCmd(a *app) *cobra.Command {
	var (
		watch    bool
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the documentation site",
		Long: `Build renders one Markdown page per term under build/docs, with every
prose field passed through the term auto-linker, plus folder indexes and
static assets. With --watch it keeps rebuilding as term sources change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := site.NewBuilder(a.cfg, a.logger)

			ctx := cmd.Context()
			if err := builder.Build(ctx); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			signalCtx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			watcher := site.NewWatcher(a.cfg.Registry.StandardsDir, debounce, builder.Build, a.logger)
			return watcher.Run(signalCtx)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Rebuild when term sources change")
	cmd.Flags().DurationVar(&debounce, "debounce", 0, "Watch debounce interval (0 uses the default)")

	return cmd
}
