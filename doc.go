// Package lvroute is a route planner over a weighted graph of named
// geographic locations, with eight interchangeable search strategies behind
// one query boundary.
//
// 🚀 What is lvroute?
//
//	A frozen, read-only location graph plus:
//		• Heap-based searches: A*, greedy best-first, uniform-cost
//		• Uninformed searches: depth-first, breadth-first
//		• Bidirectional A* meeting in the middle
//		• Iterative deepening (edge-bounded) and IDA* (cost-bounded)
//		• Nearest-location snapping for free coordinates
//		• A gin HTTP API, a cobra CLI and synthetic dataset generators
//
// Packages:
//
//	geo/         coordinates, units, great-circle distance (the heuristic)
//	core/        Builder (load phase) frozen into an immutable Graph (query phase)
//	nearest/     quadtree snapping of coordinates to locations
//	search/      the strategy enum, dispatch table, Result and Reconstruct
//	planner/     alias resolution, origins, FindPath/FindPaths, metrics, tracing
//	dataset/     YAML/JSON documents to and from graphs
//	builder/     Grid, Path and Scatter generators
//	config/      YAML + LVROUTE_* environment configuration
//	server/      HTTP API (/v1/locations, /v1/algorithms, /v1/route, /v1/routes)
//	cmd/lvroute/ serve, route, locations, algorithms, generate
//
// Quick example (kilometres):
//
//	New York ─1145─ Chicago ─1515─ Houston ─1890─ Phoenix ─575─ Los Angeles
//	New York ─1627─ Houston
//
//	lvroute route -d data/us-cities.yaml --from "New York" --to "Los Angeles" -a "a*"
//	a-star: A -> D -> E -> B
//	distance: 4092 km
package lvroute
