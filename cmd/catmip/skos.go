package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cat-mip/cat-mip/export"
	"github.com/cat-mip/cat-mip/source"
)

// skosExtensions maps each serialization to its artifact file extension.
var skosExtensions = map[export.Format]string{
	export.FormatTurtle:   ".ttl",
	export.FormatNTriples: ".nt",
	export.FormatJSONLD:   ".jsonld",
}

func skosCmd(a *app) *cobra.Command {
	var (
		formatName string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "skos",
		Short: "Export the SKOS vocabulary",
		Long: `Skos builds a SKOS concept scheme from the accepted terms, with one
concept per term and related edges inferred from relationship statements,
and serializes it as Turtle, N-Triples or JSON-LD.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatName == "" {
				formatName = a.cfg.Export.RDFFormat
			}
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}

			accepted, err := source.NewLoader(a.cfg.Registry.StandardsDir, a.logger).LoadFolder("accepted")
			if err != nil {
				return err
			}

			out, err := export.BuildSKOSGraph(accepted).Export(format)
			if err != nil {
				return err
			}

			if output == "" {
				output = filepath.Join(a.cfg.Registry.BuildDir, "cat-mip-skos"+skosExtensions[format])
			}
			if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
				return fmt.Errorf("create build directory: %w", err)
			}
			if err := os.WriteFile(output, []byte(out), 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			a.logger.Info("Built SKOS vocabulary",
				slog.String("file", output),
				slog.Int("concepts", len(accepted)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Serialization: turtle, ntriples, jsonld (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write (default: build dir cat-mip-skos.<ext>)")

	return cmd
}
