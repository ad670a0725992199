// Package export builds the registry's derived artifacts: the SKOS
// vocabulary, the JSON term indexes, and the vendor prompt CSV.
package export

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/cat-mip/cat-mip/registry"
	"github.com/cat-mip/cat-mip/source"
	"github.com/cat-mip/cat-mip/vocabulary/catmip"
)

// Format specifies the RDF output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

// ParseFormat resolves a user-supplied format name, accepting the common
// file-extension aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "turtle", "ttl", "":
		return FormatTurtle, nil
	case "ntriples", "nt":
		return FormatNTriples, nil
	case "jsonld", "json-ld":
		return FormatJSONLD, nil
	default:
		return "", fmt.Errorf("unknown RDF format: %s (supported: turtle, ntriples, jsonld)", s)
	}
}

// Object is the object position of a triple: an IRI reference or a literal,
// optionally language-tagged.
type Object struct {
	Value string
	IsIRI bool
	Lang  string
}

// IRI returns an IRI-reference object.
func IRI(value string) Object { return Object{Value: value, IsIRI: true} }

// Literal returns a plain literal object.
func Literal(value string) Object { return Object{Value: value} }

// LangLiteral returns a language-tagged literal object.
func LangLiteral(value, lang string) Object { return Object{Value: value, Lang: lang} }

// Triple is one predicate/object pair on a subject.
type Triple struct {
	Predicate string
	Object    Object
}

// Concept is one exportable subject with its rdf:type assertions and
// predicate triples.
type Concept struct {
	IRI     string
	Types   []string
	Triples []Triple
}

// SKOSExporter serializes a concept scheme to Turtle, N-Triples, or JSON-LD.
type SKOSExporter struct {
	concepts []Concept
	prefixes map[string]string
}

// NewSKOSExporter creates an empty exporter with the standard prefixes.
func NewSKOSExporter() *SKOSExporter {
	return &SKOSExporter{
		prefixes: map[string]string{
			"rdf":     catmip.PrefixRDF,
			"skos":    catmip.PrefixSKOS,
			"dcterms": catmip.PrefixDCTerms,
			"catmip":  catmip.Namespace,
		},
	}
}

// AddConcept appends a subject to the export.
func (e *SKOSExporter) AddConcept(c Concept) {
	e.concepts = append(e.concepts, c)
}

// Export serializes all concepts to the specified format.
func (e *SKOSExporter) Export(format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return e.toTurtle(), nil
	case FormatNTriples:
		return e.toNTriples(), nil
	case FormatJSONLD:
		return e.toJSONLD()
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// toTurtle serializes to Turtle format.
func (e *SKOSExporter) toTurtle() string {
	var sb strings.Builder

	names := make([]string, 0, len(e.prefixes))
	for name := range e.prefixes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("@prefix %s: <%s> .\n", name, e.prefixes[name]))
	}
	sb.WriteString("\n")

	for _, c := range e.concepts {
		e.writeConceptTurtle(&sb, c)
		sb.WriteString("\n")
	}

	return sb.String()
}

// writeConceptTurtle writes a single subject in Turtle format.
func (e *SKOSExporter) writeConceptTurtle(sb *strings.Builder, c Concept) {
	sb.WriteString(fmt.Sprintf("<%s>\n", c.IRI))

	for i, typeIRI := range c.Types {
		sb.WriteString(fmt.Sprintf("    a <%s>", typeIRI))
		if i < len(c.Types)-1 || len(c.Triples) > 0 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}

	for i, t := range c.Triples {
		sb.WriteString(fmt.Sprintf("    <%s> %s", t.Predicate, formatObject(t.Object)))
		if i < len(c.Triples)-1 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}
}

// toNTriples serializes to N-Triples format.
func (e *SKOSExporter) toNTriples() string {
	var sb strings.Builder

	for _, c := range e.concepts {
		for _, typeIRI := range c.Types {
			sb.WriteString(fmt.Sprintf("<%s> <%s> <%s> .\n", c.IRI, catmip.RDFType, typeIRI))
		}
		for _, t := range c.Triples {
			sb.WriteString(fmt.Sprintf("<%s> <%s> %s .\n", c.IRI, t.Predicate, formatObject(t.Object)))
		}
	}

	return sb.String()
}

// toJSONLD serializes to JSON-LD format.
func (e *SKOSExporter) toJSONLD() (string, error) {
	type document struct {
		Context map[string]string `json:"@context"`
		Graph   []map[string]any  `json:"@graph"`
	}

	doc := document{
		Context: e.prefixes,
		Graph:   make([]map[string]any, 0, len(e.concepts)),
	}

	for _, c := range e.concepts {
		node := map[string]any{
			"@id":   c.IRI,
			"@type": c.Types,
		}
		for _, t := range c.Triples {
			var value any
			switch {
			case t.Object.IsIRI:
				value = map[string]string{"@id": t.Object.Value}
			case t.Object.Lang != "":
				value = map[string]string{"@value": t.Object.Value, "@language": t.Object.Lang}
			default:
				value = t.Object.Value
			}
			appendNodeValue(node, t.Predicate, value)
		}
		doc.Graph = append(doc.Graph, node)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal JSON-LD: %w", err)
	}
	return string(data) + "\n", nil
}

// appendNodeValue sets or extends a repeated predicate on a JSON-LD node.
func appendNodeValue(node map[string]any, key string, value any) {
	existing, ok := node[key]
	if !ok {
		node[key] = value
		return
	}
	if list, ok := existing.([]any); ok {
		node[key] = append(list, value)
		return
	}
	node[key] = []any{existing, value}
}

// formatObject renders an object for Turtle and N-Triples output.
func formatObject(o Object) string {
	if o.IsIRI {
		return fmt.Sprintf("<%s>", o.Value)
	}
	// %q escaping (quotes, backslashes, control characters) is valid for
	// Turtle and N-Triples string literals.
	lit := fmt.Sprintf("%q", o.Value)
	if o.Lang != "" {
		lit += "@" + o.Lang
	}
	return lit
}

// capitalizedPhrase matches candidate term mentions in relationship
// statements: runs of capitalized words, e.g. "AI Agent" or "Ticket".
var capitalizedPhrase = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)*\b`)

// BuildSKOSGraph assembles the concept scheme from the accepted term
// documents. Concepts are emitted alphabetically; skos:related edges are
// inferred from relationship statements that mention other accepted terms.
func BuildSKOSGraph(accepted []*source.TermDocument) *SKOSExporter {
	e := NewSKOSExporter()

	e.AddConcept(Concept{
		IRI:   catmip.ConceptIRI(""),
		Types: []string{catmip.ClassConceptScheme},
		Triples: []Triple{
			{Predicate: catmip.PrefLabel, Object: LangLiteral(catmip.SchemeLabel, "en")},
			{Predicate: catmip.Creator, Object: Literal(catmip.SchemeCreator)},
			{Predicate: catmip.Issued, Object: Literal(catmip.SchemeIssued)},
		},
	})

	// Index known terms for relationship inference.
	bySlugKey := make(map[string]string, len(accepted))
	for _, doc := range accepted {
		bySlugKey[strings.ToLower(doc.Term)] = registry.Slugify(doc.Term)
	}

	sorted := make([]*source.TermDocument, len(accepted))
	copy(sorted, accepted)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Term) < strings.ToLower(sorted[j].Term)
	})

	for _, doc := range sorted {
		key := strings.ToLower(doc.Term)
		slug := bySlugKey[key]

		c := Concept{
			IRI:   catmip.ConceptIRI(slug),
			Types: []string{catmip.ClassConcept},
			Triples: []Triple{
				{Predicate: catmip.InScheme, Object: IRI(catmip.ConceptIRI(""))},
				{Predicate: catmip.PrefLabel, Object: LangLiteral(doc.Term, "en")},
			},
		}

		if doc.Definition != "" {
			c.Triples = append(c.Triples, Triple{
				Predicate: catmip.Definition,
				Object:    LangLiteral(doc.Definition, "en"),
			})
		}
		for _, syn := range doc.Synonyms {
			c.Triples = append(c.Triples, Triple{
				Predicate: catmip.AltLabel,
				Object:    LangLiteral(syn, "en"),
			})
		}
		if date := firstHistoryDate(doc); date != "" {
			c.Triples = append(c.Triples, Triple{
				Predicate: catmip.Issued,
				Object:    Literal(date),
			})
		}

		seen := make(map[string]bool)
		for _, rel := range doc.Relationships {
			for _, phrase := range capitalizedPhrase.FindAllString(rel, -1) {
				phraseKey := strings.ToLower(phrase)
				target, known := bySlugKey[phraseKey]
				if !known || phraseKey == key || seen[target] {
					continue
				}
				seen[target] = true
				c.Triples = append(c.Triples, Triple{
					Predicate: catmip.Related,
					Object:    IRI(catmip.ConceptIRI(target)),
				})
			}
		}

		e.AddConcept(c)
	}

	return e
}

func firstHistoryDate(doc *source.TermDocument) string {
	if len(doc.History) > 0 {
		return doc.History[0].Date
	}
	return ""
}
