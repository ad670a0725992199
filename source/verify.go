package source

import (
	"fmt"
	"sort"
)

// VerifyResult reports id uniqueness across loaded term documents.
type VerifyResult struct {
	// Duplicates maps an id to the source files (folder/stem.yaml) that
	// share it. Only ids used more than once appear.
	Duplicates map[string][]string

	// MissingID lists source files without an id field.
	MissingID []string

	// Total is the number of documents checked.
	Total int
}

// OK reports whether no duplicate ids were found. Missing ids are a warning
// condition, not a failure, unless the caller escalates them.
func (r *VerifyResult) OK() bool {
	return len(r.Duplicates) == 0
}

// VerifyUniqueIDs checks that no two term documents share an id.
func VerifyUniqueIDs(docs []*TermDocument) *VerifyResult {
	result := &VerifyResult{
		Duplicates: make(map[string][]string),
		Total:      len(docs),
	}

	byID := make(map[string][]string)
	for _, doc := range docs {
		ref := fmt.Sprintf("%s/%s.yaml", doc.Folder, doc.Stem)
		if doc.ID == "" {
			result.MissingID = append(result.MissingID, ref)
			continue
		}
		byID[doc.ID] = append(byID[doc.ID], ref)
	}

	for id, refs := range byID {
		if len(refs) > 1 {
			sort.Strings(refs)
			result.Duplicates[id] = refs
		}
	}
	sort.Strings(result.MissingID)

	return result
}
