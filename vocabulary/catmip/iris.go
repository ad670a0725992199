// Package catmip defines the IRIs used by the CAT-MIP SKOS vocabulary
// export. The registry publishes its terms as a skos:ConceptScheme under the
// cat-mip.org namespace, aligned with SKOS and Dublin Core Terms.
package catmip

// Namespace is the base IRI for CAT-MIP concept instances.
const Namespace = "https://cat-mip.org/terms/"

// SchemeLabel is the prefLabel of the published concept scheme.
const SchemeLabel = "CAT-MIP Terminology Registry"

// SchemeCreator is the dcterms:creator of the concept scheme.
const SchemeCreator = "CAT-MIP Community"

// SchemeIssued is the dcterms:issued date of the concept scheme.
const SchemeIssued = "2025-09-19"

// Standard namespace prefixes emitted in serialized output.
const (
	PrefixRDF     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	PrefixSKOS    = "http://www.w3.org/2004/02/skos/core#"
	PrefixDCTerms = "http://purl.org/dc/terms/"
)

// SKOS class and predicate IRIs used by the export.
const (
	// RDFType is rdf:type.
	RDFType = PrefixRDF + "type"

	// ClassConcept is skos:Concept, the type of every published term.
	ClassConcept = PrefixSKOS + "Concept"

	// ClassConceptScheme is skos:ConceptScheme, the type of the registry
	// itself.
	ClassConceptScheme = PrefixSKOS + "ConceptScheme"

	// PrefLabel is skos:prefLabel, the canonical display name.
	PrefLabel = PrefixSKOS + "prefLabel"

	// AltLabel is skos:altLabel, one per synonym.
	AltLabel = PrefixSKOS + "altLabel"

	// Definition is skos:definition.
	Definition = PrefixSKOS + "definition"

	// InScheme is skos:inScheme, linking each concept to the scheme.
	InScheme = PrefixSKOS + "inScheme"

	// Related is skos:related, inferred from relationship statements that
	// mention other known terms.
	Related = PrefixSKOS + "related"
)

// Dublin Core Terms predicates used by the export.
const (
	// Creator is dcterms:creator.
	Creator = PrefixDCTerms + "creator"

	// Issued is dcterms:issued, taken from a term's first history date.
	Issued = PrefixDCTerms + "issued"
)

// ConceptIRI returns the IRI of the concept published for slug. The empty
// slug names the concept scheme itself.
func ConceptIRI(slug string) string {
	return Namespace + slug
}
