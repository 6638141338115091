// Package category defines the closed set of energy categories a flow graph
// can be filtered by, and the rules for comparing category tags.
//
// The set is fixed:
//
//	all  - no filtering (every node qualifies)
//	elec - electricity
//	gaz  - gas
//	eau  - water
//	air  - compressed air
//
// Tags coming from records are free-form strings. They are compared with
// Unicode case folding (golang.org/x/text/cases), never by partial or fuzzy
// matching. Leaf nodes without an explicit tag may get one inferred from a
// small keyword vocabulary matched against their name (see Infer).
//
// Errors:
//
//	ErrUnknownCategory - Parse received a string outside the closed set.
package category
