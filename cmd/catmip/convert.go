package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cat-mip/cat-mip/convert"
)

func convertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <index.json>",
		Short: "Convert a registry JSON index into YAML term files",
		Long: `Convert ingests a registry JSON index snapshot and writes one YAML
term file per record into standards/accepted, cleaning typographic
punctuation and normalizing list ordering on the way.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := convert.ConvertIndex(args[0], a.cfg.Registry.StandardsDir, a.logger)
			if err != nil {
				return err
			}
			fmt.Printf("Converted %d terms into %s/accepted\n", n, a.cfg.Registry.StandardsDir)
			return nil
		},
	}
}
