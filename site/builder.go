package site

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cat-mip/cat-mip/config"
	"github.com/cat-mip/cat-mip/linker"
	"github.com/cat-mip/cat-mip/registry"
	"github.com/cat-mip/cat-mip/source"
)

// Builder renders the full documentation site from the standards tree.
type Builder struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewBuilder creates a site builder.
func NewBuilder(cfg *config.Config, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{cfg: cfg, logger: logger}
}

// Build loads every term document, rebuilds the docs output directory, and
// renders all pages. Page rendering runs in parallel; each page gets its own
// compiled pattern context, so workers share only the read-only registry.
// Under strict mode any registry warning fails the build.
func (b *Builder) Build(ctx context.Context) error {
	docs, err := source.NewLoader(b.cfg.Registry.StandardsDir, b.logger).Load()
	if err != nil {
		return err
	}

	var warnings []string
	warn := func(msg string) {
		warnings = append(warnings, msg)
		b.logger.Warn(msg)
	}

	entries := make([]registry.TermEntry, len(docs))
	for i, doc := range docs {
		entries[i] = registry.NewTermEntry(doc.Term, doc.Folder)
	}
	reg := registry.Build(entries, warn)

	// Registration order matches docs order, so final slugs align by index.
	slugs := make(map[*source.TermDocument]string, len(docs))
	for i, entry := range reg.Entries() {
		slugs[docs[i]] = entry.Slug
	}

	if b.cfg.Registry.Strict && len(warnings) > 0 {
		return fmt.Errorf("strict mode: %d registry warning(s), first: %s", len(warnings), warnings[0])
	}

	docsDir := b.cfg.DocsDir()
	if err := b.resetDocsDir(docsDir); err != nil {
		return err
	}

	engine := linker.New(reg)

	workers := b.cfg.Site.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, doc := range docs {
		doc := doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			slug := slugs[doc]
			content := RenderTermPage(doc, slug, engine.Page(slug, doc.Folder))
			path := filepath.Join(docsDir, doc.Folder, slug+".md")
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return fmt.Errorf("write term page %s: %w", path, err)
			}
			b.logger.Debug("Generated term page", slog.String("path", path))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	byFolder := make(map[string][]*source.TermDocument)
	for _, doc := range docs {
		byFolder[doc.Folder] = append(byFolder[doc.Folder], doc)
	}
	for _, folder := range source.Folders {
		content := RenderFolderIndex(folder, byFolder[folder], slugs)
		path := filepath.Join(docsDir, folder, "index.md")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("write folder index %s: %w", path, err)
		}
	}

	if err := b.writeRootIndex(docsDir); err != nil {
		return err
	}
	if err := b.copyAssets(docsDir); err != nil {
		return err
	}

	b.logger.Info("Site generated",
		slog.String("docs_dir", docsDir),
		slog.Int("terms", len(docs)),
		slog.Int("warnings", len(warnings)))
	return nil
}

// resetDocsDir recreates the docs output tree with one directory per
// lifecycle folder plus images.
func (b *Builder) resetDocsDir(docsDir string) error {
	if err := os.RemoveAll(docsDir); err != nil {
		return fmt.Errorf("clean docs directory: %w", err)
	}
	for _, dir := range append([]string{"images"}, source.Folders...) {
		if err := os.MkdirAll(filepath.Join(docsDir, dir), 0755); err != nil {
			return fmt.Errorf("create docs directory: %w", err)
		}
	}
	return nil
}

// writeRootIndex installs the landing page: the assets tree's index.md when
// present, a generated default otherwise.
func (b *Builder) writeRootIndex(docsDir string) error {
	target := filepath.Join(docsDir, "index.md")

	custom := filepath.Join(b.cfg.Registry.AssetsDir, "docs", "index.md")
	if data, err := os.ReadFile(custom); err == nil {
		return os.WriteFile(target, data, 0644)
	}

	return os.WriteFile(target, []byte(RenderRootIndex(b.cfg.Site.Name)), 0644)
}

// copyAssets copies the static content shipped next to the standards tree:
// everything under assets/docs (except index.md, handled above) and the
// images directory.
func (b *Builder) copyAssets(docsDir string) error {
	assetDocs := filepath.Join(b.cfg.Registry.AssetsDir, "docs")
	if info, err := os.Stat(assetDocs); err == nil && info.IsDir() {
		items, err := os.ReadDir(assetDocs)
		if err != nil {
			return fmt.Errorf("read assets: %w", err)
		}
		for _, item := range items {
			if item.Name() == "index.md" {
				continue
			}
			src := filepath.Join(assetDocs, item.Name())
			dst := filepath.Join(docsDir, item.Name())
			if err := copyTree(src, dst); err != nil {
				return fmt.Errorf("copy asset %s: %w", src, err)
			}
		}
	}

	images := filepath.Join(b.cfg.Registry.AssetsDir, "images")
	if info, err := os.Stat(images); err == nil && info.IsDir() {
		if err := copyTree(images, filepath.Join(docsDir, "images")); err != nil {
			return fmt.Errorf("copy images: %w", err)
		}
	}

	return nil
}

// copyTree copies a file or directory tree.
func copyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return copyFile(src, dst)
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return err
	}
	items, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := copyTree(filepath.Join(src, item.Name()), filepath.Join(dst, item.Name())); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
