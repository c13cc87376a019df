// Package ccbench benchmarks connected-components computation on large
// sparse undirected graphs across interchangeable execution engines, and
// turns the resulting timing data into comparable tables and charts.
//
// 🚀 What is ccbench?
//
//	A small, focused toolkit that brings together:
//		• Graph loading: Matrix Market text and HDF5 (.mat v7.3) containers,
//		  normalized to a symmetric, loop-free, duplicate-free CSR graph
//		• Engines: parallel label propagation, gonum topo, union-find fallback
//		• Dispatch: ranked engine preference with automatic fallback
//		• Aggregation: per-thread timing series and thread×chunk surfaces
//		• Rendering: line charts and heat maps via gonum/plot
//
// ✨ Why ccbench?
//
//   - Strict normalization – symmetrize once, drop loops, dedup edges
//   - Honest numbers – monotonic clocks, construction never timed
//   - Resilient runs – engine unavailability degrades, never crashes
//   - Validated data – sparse measurements must form a dense grid
//
// Everything is organized under five packages:
//
//	ccgraph/ : CSR graph type, format loaders, edge extraction
//	engine/  : connected-components engines and the fallback dispatcher
//	results/ : measurement-table aggregation (1-D series, 2-D surfaces)
//	render/  : chart construction from aggregated results
//	cmd/     : the ccbench command-line tool
//
// Quick ASCII example:
//
//	    0───1    3───4
//	        │
//	        2           → 2 components: {0,1,2} and {3,4}
//
// Start with ccgraph.Load, hand the graph to engine.Dispatch, and feed the
// resulting CSV files to results.Gather or results.ParseSurface.
package ccbench
