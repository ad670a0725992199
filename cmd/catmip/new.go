package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cat-mip/cat-mip/convert"
	"github.com/cat-mip/cat-mip/registry"
	"github.com/cat-mip/cat-mip/source"
)

func newCmd(a *app) *cobra.Command {
	var author string

	cmd := &cobra.Command{
		Use:   "new <term>",
		Short: "Scaffold a draft term document",
		Long: `New creates standards/draft/<slug>.yaml with a generated draft id so
two in-flight drafts never collide before a registry id is assigned.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.TrimSpace(strings.Join(args, " "))
			if term == "" {
				return fmt.Errorf("term name must not be blank")
			}

			slug := registry.Slugify(term)
			path := filepath.Join(a.cfg.Registry.StandardsDir, "draft", slug+".yaml")
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("draft already exists: %s", path)
			}

			today := time.Now().Format("2006-01-02")
			doc := &source.TermDocument{
				ID:         "DRAFT-" + uuid.NewString()[:8],
				Term:       term,
				Version:    source.DefaultVersion,
				Authors:    []source.Author{{Name: author}},
				Categories: []string{"Core"},
				Tags:       []string{"cat-mip", "draft"},
				Definition: "TBD.",
				History: []source.HistoryEntry{
					{Date: today, Author: author, Reason: "Draft created"},
				},
			}

			out, err := convert.EncodeDoc(doc)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("create draft directory: %w", err)
			}
			if err := os.WriteFile(path, out, 0644); err != nil {
				return fmt.Errorf("write draft: %w", err)
			}

			fmt.Printf("Created %s (%s)\n", path, doc.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&author, "author", source.DefaultAuthor, "Author recorded on the draft")

	return cmd
}
