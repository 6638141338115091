// Package energyflow aggregates plant, workshop and machine consumption
// records into Sankey flow graphs, from the raw hierarchy down to the
// scoped graph a chart renders.
//
// ⚡ What is in the box?
//
//	A deterministic, stateless pipeline split into small packages:
//		• hierarchy: level configurations, records and readiness states
//		• category:  energy categories, tag normalization and name inference
//		• flowgraph: the node/link graph, lookup index, clone and restrict
//		• builder:   records to graph, plus the "No data" placeholder chain
//		• filter:    bottom-up recomputation for one energy category
//		• view:      category pruning, overview and detail projections, navigation
//		• engine:    the full rebuild with status reporting
//		• pricing:   per-period unit prices and node costs
//		• snapshot:  YAML and TOML snapshot files
//		• config:    CLI configuration under $XDG_CONFIG_HOME/energyflow
//
// A rebuild runs every stage in order:
//
//	levels ─▶ builder ─▶ filter ─▶ view ─▶ Output
//	             │                          ▲
//	             └─ no records ─▶ placeholder
//
// The energyflow command (cmd/energyflow) wraps the pipeline:
//
//	energyflow build -f snapshot.yaml --category elec --select workshop_W1
//	energyflow browse -f snapshot.yaml
//
//	go install github.com/katalvlaran/energyflow/cmd/energyflow@latest
package energyflow
