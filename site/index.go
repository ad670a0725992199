package site

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cat-mip/cat-mip/source"
)

// folderTitles names the per-folder index pages.
var folderTitles = map[string]string{
	"accepted":   "Accepted Terms",
	"draft":      "Draft Terms",
	"deprecated": "Deprecated Terms",
	"rejected":   "Rejected Terms",
}

// indexItem is one entry on a folder index page.
type indexItem struct {
	term string
	id   string
	slug string
}

// RenderFolderIndex produces the index page for one lifecycle folder.
// Entries are listed alphabetically by term, case-insensitive.
func RenderFolderIndex(folder string, docs []*source.TermDocument, slugs map[*source.TermDocument]string) string {
	items := make([]indexItem, 0, len(docs))
	for _, doc := range docs {
		id := doc.ID
		if id == "" {
			id = "DRAFT"
		}
		items = append(items, indexItem{term: doc.Term, id: id, slug: slugs[doc]})
	}
	sort.Slice(items, func(i, j int) bool {
		return strings.ToLower(items[i].term) < strings.ToLower(items[j].term)
	})

	title, ok := folderTitles[folder]
	if !ok {
		title = strings.ToUpper(folder[:1]) + folder[1:] + " Terms"
	}

	var md strings.Builder
	md.WriteString("---\nsearch:\n  exclude: true\n  boost: 0\n---\n")
	fmt.Fprintf(&md, "# %s\n\nAll %s terms in the CAT-MIP registry.\n\n", title, folder)

	if len(items) == 0 {
		md.WriteString("_No terms yet._\n")
		return md.String()
	}

	md.WriteString("## Terms\n\n")
	for _, item := range items {
		fmt.Fprintf(&md, "- [%s (%s)](%s.md)\n", item.term, item.id, item.slug)
	}
	return md.String()
}

// RenderRootIndex produces the fallback landing page used when the assets
// tree doesn't provide one.
func RenderRootIndex(siteName string) string {
	return fmt.Sprintf("---\nsearch:\n  exclude: true\n---\n\n# %s\n\nWelcome to the official registry.\n", siteName)
}
