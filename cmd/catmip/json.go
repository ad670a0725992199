package main

import (
	"github.com/spf13/cobra"

	"github.com/cat-mip/cat-mip/export"
	"github.com/cat-mip/cat-mip/source"
)

func jsonCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "json",
		Short: "Export the JSON term indexes",
		Long: `Json writes cat-mip.json (accepted terms) and cat-mip-dev.json
(accepted plus draft terms) into the build directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := source.NewLoader(a.cfg.Registry.StandardsDir, a.logger).Load()
			if err != nil {
				return err
			}
			return export.WriteJSONIndexes(docs, a.cfg.Registry.BuildDir, a.logger)
		},
	}
}
