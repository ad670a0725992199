package source

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Loader discovers and parses term documents under a standards directory.
type Loader struct {
	standardsDir string
	logger       *slog.Logger
}

// NewLoader creates a loader rooted at standardsDir.
func NewLoader(standardsDir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{standardsDir: standardsDir, logger: logger}
}

// Load parses every term document in the lifecycle folders. Results are
// sorted by folder then file name so output artifacts are deterministic.
// A document that fails to parse aborts the load; missing folders are fine.
func (l *Loader) Load() ([]*TermDocument, error) {
	pattern := filepath.ToSlash(filepath.Join(l.standardsDir, "*", "*.yaml"))
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob term sources %q: %w", pattern, err)
	}
	sort.Strings(paths)

	var docs []*TermDocument
	for _, path := range paths {
		folder := filepath.Base(filepath.Dir(path))
		if !KnownFolder(folder) {
			l.logger.Debug("Skipping non-lifecycle folder", slog.String("path", path))
			continue
		}

		doc, err := l.loadFile(path, folder)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	l.logger.Debug("Loaded term documents",
		slog.Int("count", len(docs)),
		slog.String("standards_dir", l.standardsDir))
	return docs, nil
}

// LoadFolder parses only the documents of one lifecycle folder.
func (l *Loader) LoadFolder(folder string) ([]*TermDocument, error) {
	if !KnownFolder(folder) {
		return nil, fmt.Errorf("unknown lifecycle folder: %s", folder)
	}

	pattern := filepath.ToSlash(filepath.Join(l.standardsDir, folder, "*.yaml"))
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob term sources %q: %w", pattern, err)
	}
	sort.Strings(paths)

	docs := make([]*TermDocument, 0, len(paths))
	for _, path := range paths {
		doc, err := l.loadFile(path, folder)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (l *Loader) loadFile(path, folder string) (*TermDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read term document: %w", err)
	}

	var doc TermDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse term document %s: %w", path, err)
	}

	doc.Folder = folder
	doc.Stem = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if doc.Term == "" {
		// Recover a display name from the file name, e.g.
		// "ai-agent.yaml" -> "Ai Agent".
		doc.Term = titleFromStem(doc.Stem)
	}
	doc.Normalize()

	return &doc, nil
}

// titleFromStem turns a slug-like file stem into a display name.
func titleFromStem(stem string) string {
	words := strings.Split(strings.ReplaceAll(stem, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
