package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cat-mip/cat-mip/export"
)

func csvCmd(a *app) *cobra.Command {
	var (
		input      string
		output     string
		stdVersion string
	)

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export the vendor prompt CSV",
		Long: `Csv reads a JSON term index, validates it against the prompt index
schema and writes one fully quoted CSV row per prompt example.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if stdVersion == "" {
				stdVersion = a.cfg.Export.StdVersion
			}
			if input == "" {
				input = filepath.Join(a.cfg.Registry.BuildDir, export.IndexFile)
			}
			if output == "" {
				name := fmt.Sprintf("cat-mip-%s-prompts.csv", stdVersion)
				output = filepath.Join(a.cfg.Registry.BuildDir, name)
			}
			return export.ExportPromptCSV(input, output, stdVersion, a.logger)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "JSON term index to read (default: build dir cat-mip.json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "CSV file to write (default: build dir cat-mip-<version>-prompts.csv)")
	cmd.Flags().StringVar(&stdVersion, "std-version", "", "Standard version stamped on every row")

	return cmd
}
