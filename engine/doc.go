// Package engine runs one complete rebuild of the energy flow graph.
//
// A rebuild is a pure function of an Input snapshot:
//
//	Pending? ──yes──▶ nil graph, StatusLoading
//	   │no
//	hierarchy.Sort ──err──▶ empty graph, StatusMalformed
//	   │
//	builder.Build ──no nodes, valid period──▶ builder.SynthesizeNoData, StatusNoRecords
//	   │          ──all zero──▶ StatusAllZero (stages continue)
//	filter.Apply (category selected)
//	   │
//	view.Scope (overview or detail)
//
// The placeholder chain is published as built, without filtering or
// scoping, so every level keeps its placeholder node.
//
// Each stage returns a new graph, so no published graph is ever rewritten.
// A panic in any stage is recovered into a nil graph with StatusFailed and
// logged; presentation treats a nil graph as still loading.
//
// Every rebuild logs with a rebuild_id attribute, a random UUID unless
// WithIDGenerator replaces it. The ID never reaches the graph, so identical
// inputs yield identical graphs.
package engine
