// Package visualizer hosts the algorithmic core of the Data Structures
// Visualizer: an all-pairs shortest-path engine over dense weighted
// directed graphs, built for step-by-step playback.
//
// 🚀 What does it provide?
//
//	A small, pure-Go computational library that brings together:
//		• Dense matrices: flat row-major storage with snapshot accessors
//		• Weight codec: "∞"/"inf"/"infinity"/blank ↔ the unreachable sentinel
//		• APSP solver: Floyd–Warshall with a complete, replayable step log
//		• Path recovery: predecessor-table walk between any two vertices
//		• Cycle finder: negative self-loops and minimum 2-vertex round trips
//
// ✨ Why this shape?
//
//   - Replay-first – every update step snapshots the whole distance matrix,
//     so an animation layer can scrub through the run faithfully
//   - Honest numerics – the unreachable sentinel never enters arithmetic;
//     both operands are guarded before every addition
//   - Pure Go – no cgo, no I/O, no globals; concurrent runs on independent
//     inputs are safe by construction
//
// Everything is organized under two subpackages:
//
//	floydwarshall/ — Solve, SolveDistances, ReconstructPath, MinCycle
//	matrix/        — Dense storage, validators & the weight codec
//
// Quick ASCII example:
//
//	    0 ──3──▶ 1
//	    ▲        │2
//	    2        ▼
//	    └── 3 ◀──2 ──1──▶ …
//
// Feed the cost matrix to floydwarshall.Solve, hand Result.Steps to the
// playback layer, and ask ReconstructPath for the route to highlight.
package visualizer
