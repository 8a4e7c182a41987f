// Package graph defines the permission-model graph and its wire format.
//
// A graph consists of nodes (permission sets, permission groups, controls)
// and directed access edges (ALLOW or DENY). This package is the
// serialization boundary: JSON files, API payloads, and store documents all
// use the [Graph] type, while in-process consumers work with [Model], which
// adds adjacency indexes for neighbor scans.
//
// # Wire Format
//
// Graphs use a simple node-link JSON format:
//
//	{
//	  "nodes": [
//	    {"id": "admin", "name": "Admin", "type": "permissionSet", "group": 1},
//	    {"id": "export", "name": "Export Data", "type": "control", "group": 3}
//	  ],
//	  "edges": [
//	    {"source": "admin", "target": "export", "access": "ALLOW"}
//	  ]
//	}
//
// Common operations:
//
//	g, _ := graph.ReadFile("perms.json")   // File → Graph
//	m := graph.NewModel(g)                 // Graph → indexed Model
//	graph.WriteFile(g, "out.json")         // Graph → File
//
// # Referential Integrity
//
// [Validate] rejects empty or duplicate node IDs and unknown enum values,
// but deliberately tolerates edges whose endpoints are missing from the
// node set: such edges are skipped at render time rather than failing the
// whole pipeline.
package graph
