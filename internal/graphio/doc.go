// Package graphio reads and writes undirected weighted edge lists for the
// mstbench command.
//
// Text format:
//
//	# comment              lines starting with '#' or 'c' are ignored
//	n [m]                  vertex count, optional edge count
//	u v w                  one edge per line
//
// JSON format (parsed with gjson):
//
//	{"vertices": n, "edges": [[u, v, w], ...]}
//	{"vertices": n, "edges": [{"u": u, "v": v, "w": w}, ...]}
//
// Edges are checked against n with core.CheckEdge while reading so that
// errors carry the offending line or array index. Conflicting duplicates
// are left for the representation constructors to report.
package graphio
