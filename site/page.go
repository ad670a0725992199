// Package site renders the terminology registry as a Markdown documentation
// site: one page per term, alphabetical folder indexes, and copied assets.
// Every prose string passes through the link engine so term mentions become
// cross-reference links.
package site

import (
	"fmt"
	"strings"

	"github.com/cat-mip/cat-mip/linker"
	"github.com/cat-mip/cat-mip/source"
)

// defaultSearchBoost is applied to term pages that don't set their own.
const defaultSearchBoost = 2.0

// statusBadge maps a lifecycle folder to its admonition type and display name.
var statusBadge = map[string][2]string{
	"accepted":   {"success", "Accepted"},
	"draft":      {"warning", "Draft"},
	"deprecated": {"failure", "Deprecated"},
	"rejected":   {"note", "Rejected"},
}

// RenderTermPage produces the complete Markdown page for one term. The slug
// is the page's own (possibly disambiguated) slug; page is the pre-compiled
// link context for it.
func RenderTermPage(doc *source.TermDocument, slug string, page *linker.PageContext) string {
	var md strings.Builder

	writeFrontMatter(&md, doc)

	termID := doc.ID
	if termID == "" {
		termID = "DRAFT"
	}
	fmt.Fprintf(&md, "# %s (%s)\n\n", doc.Term, termID)

	md.WriteString(sectionBanner(doc))
	md.WriteString(sectionDefinition(doc, page))
	md.WriteString(sectionPromptExamples(doc, page))
	md.WriteString(sectionAgentExecution(doc, page))
	md.WriteString(sectionList("Synonyms", doc.Synonyms, page))
	md.WriteString(sectionList("Relationships", doc.Relationships, page))
	md.WriteString(sectionHistory(doc, page))

	return md.String()
}

func writeFrontMatter(md *strings.Builder, doc *source.TermDocument) {
	md.WriteString("---\n")
	fmt.Fprintf(md, "title: %s\n", doc.Term)

	boost := doc.SearchBoost
	if boost == 0 {
		boost = defaultSearchBoost
	}
	fmt.Fprintf(md, "search_boost: %.1f\n", boost)

	if len(doc.History) > 0 {
		first := doc.History[0].Date
		if first != "" {
			fmt.Fprintf(md, "date: %s\n", first)
		}
		latest := doc.History[len(doc.History)-1].Date
		if latest != "" && latest != first {
			fmt.Fprintf(md, "updated: %s\n", latest)
		}
	}

	if len(doc.Authors) > 0 {
		md.WriteString("authors:\n")
		for _, a := range doc.Authors {
			fmt.Fprintf(md, "  - name: %s\n", a.Name)
			if a.Github != "" {
				fmt.Fprintf(md, "    github: %s\n", a.Github)
			}
			if a.Org != "" {
				fmt.Fprintf(md, "    org: %s\n", a.Org)
			}
		}
	}

	if len(doc.Tags) > 0 {
		md.WriteString("tags:\n")
		for _, t := range doc.Tags {
			fmt.Fprintf(md, "  - %s\n", t)
		}
	}

	md.WriteString("---\n\n")
}

// sectionBanner renders the status admonition. The folder is the source of
// truth for the badge; date and author are attached when the history carries
// a matching "<Status> –" entry, and always for drafts (creation entry).
func sectionBanner(doc *source.TermDocument) string {
	badge, ok := statusBadge[doc.Folder]
	if !ok {
		badge = [2]string{"note", "Unknown"}
	}
	badgeType, badgeName := badge[0], badge[1]

	parts := []string{badgeName}

	if doc.Folder == "draft" && len(doc.History) > 0 {
		first := doc.History[0]
		if first.Date != "" {
			parts = append(parts, first.Date)
		}
		if first.Author != "" {
			parts = append(parts, "by "+first.Author)
		}
	} else {
		prefix := badgeName + " –"
		for i := len(doc.History) - 1; i >= 0; i-- {
			entry := doc.History[i]
			if strings.HasPrefix(entry.Reason, prefix) {
				if entry.Date != "" {
					parts = append(parts, entry.Date)
				}
				if entry.Author != "" {
					parts = append(parts, "by "+entry.Author)
				}
				break
			}
		}
	}

	return fmt.Sprintf("!!! %s \"%s\"\n\n", badgeType, strings.Join(parts, " • "))
}

func sectionDefinition(doc *source.TermDocument, page *linker.PageContext) string {
	raw := strings.TrimSpace(doc.Definition)
	if raw == "" {
		return ""
	}
	return fmt.Sprintf("## Definition\n\n%s\n\n", page.Linkify(raw))
}

func sectionPromptExamples(doc *source.TermDocument, page *linker.PageContext) string {
	return sectionList("Prompt Examples", doc.PromptExamples, page)
}

func sectionAgentExecution(doc *source.TermDocument, page *linker.PageContext) string {
	ae := doc.AgentExecution
	if ae == nil {
		return "## Agent Execution\n!!! warning\n\n    No execution defined\n\n"
	}

	interp := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(ae.Interpretation), ":"))

	var md strings.Builder
	md.WriteString("## Agent Execution\n")
	if interp != "" {
		md.WriteString(page.Linkify(interp))
		md.WriteString(":\n\n")
	}
	if len(ae.Actions) > 0 {
		for _, a := range ae.Actions {
			a = strings.TrimSpace(strings.TrimLeft(a, "- "))
			fmt.Fprintf(&md, "- %s\n", page.Linkify(a))
		}
		md.WriteString("\n")
	} else if interp == "" {
		md.WriteString("!!! info\n\n    No actions defined\n\n")
	}
	return md.String()
}

func sectionList(title string, items []string, page *linker.PageContext) string {
	if len(items) == 0 {
		return ""
	}
	var md strings.Builder
	fmt.Fprintf(&md, "## %s\n", title)
	for _, item := range items {
		fmt.Fprintf(&md, "- %s\n", page.Linkify(item))
	}
	md.WriteString("\n")
	return md.String()
}

func sectionHistory(doc *source.TermDocument, page *linker.PageContext) string {
	if len(doc.History) == 0 {
		return ""
	}
	var md strings.Builder
	md.WriteString("## History\n")
	md.WriteString("| Date       | Author   | Reason                          |\n")
	md.WriteString("| :--------- | :------- | :------------------------------ |\n")
	for _, h := range doc.History {
		fmt.Fprintf(&md, "| %s | %s | %s |\n", h.Date, h.Author, page.Linkify(h.Reason))
	}
	md.WriteString("\n")
	return md.String()
}
