package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cat-mip/cat-mip/source"
)

func verifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check term sources for duplicate or missing ids",
		Long: `Verify loads every term document and reports ids shared by more than
one file. Duplicate ids fail the command; missing ids are warnings unless
--strict is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := source.NewLoader(a.cfg.Registry.StandardsDir, a.logger).Load()
			if err != nil {
				return err
			}

			result := source.VerifyUniqueIDs(docs)

			for _, file := range result.MissingID {
				a.logger.Warn("Term document has no id", "file", file)
			}

			if len(result.Duplicates) > 0 {
				ids := make([]string, 0, len(result.Duplicates))
				for id := range result.Duplicates {
					ids = append(ids, id)
				}
				sort.Strings(ids)
				var sb strings.Builder
				for _, id := range ids {
					fmt.Fprintf(&sb, "\n  %s: %s", id, strings.Join(result.Duplicates[id], ", "))
				}
				return fmt.Errorf("%d duplicate id(s):%s", len(result.Duplicates), sb.String())
			}

			if a.cfg.Registry.Strict && len(result.MissingID) > 0 {
				return fmt.Errorf("strict mode: %d document(s) without an id", len(result.MissingID))
			}

			fmt.Printf("Verified %d terms: all ids unique\n", result.Total)
			return nil
		},
	}
}
