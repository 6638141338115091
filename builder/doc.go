// Package builder turns per-level record sets into the raw flow graph and
// synthesizes the placeholder graph shown when a reporting period has no
// data.
//
// Build runs two passes over a sorted hierarchy:
//
//   - Node pass: every record with an available, non-blank name and an
//     available numeric value contributes to node "<levelID>_<name>". Records
//     sharing a node are merged by summing their values; node order is
//     first-seen order. Other records are skipped silently.
//   - Link pass (only when the node pass produced a node): leaf records link
//     to their penultimate-level parent when it exists, otherwise straight to
//     their root parent when that exists, otherwise not at all. Intermediate
//     records link to their immediate parent when it exists. Root records
//     never link upward. A link carries the child record's value; records
//     producing the same (source, target) pair are merged by sum.
//
// Only the leaf level may skip a level. This tolerates machines without a
// workshop while keeping every other level strict.
//
// SynthesizeNoData builds one zero-valued placeholder node per level,
// chained level to level by zero-valued links.
//
// Options:
//
//	WithLogger(l)             records node/link decisions at debug level.
//	WithCategoryInference(b)  toggles leaf category inference from names.
//	WithPlaceholderName(fn)   overrides placeholder node names.
//
// Errors:
//
//	ErrUnsortedLevels - the hierarchy did not come from hierarchy.Sort.
package builder
