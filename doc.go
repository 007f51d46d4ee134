// Package treemetric answers one question about pairwise distance data:
// could these distances have come from a tree?
//
// 🚀 What is treemetric?
//
//	A small, deterministic library for testing whether a symmetric
//	distance matrix is additive — exactly realizable as path-length
//	sums on some edge-weighted tree. It is the standard sanity check
//	before any distance-based phylogeny or hierarchy reconstruction:
//		• Phylogenetics: is this dissimilarity matrix tree-like?
//		• Hierarchical clustering: validate input before fitting a dendrogram
//		• Network tomography: detect non-tree structure in delay matrices
//
// ✨ Why choose treemetric?
//
//   - Exact semantics – the classical four-point condition, checked
//     exhaustively on every quartet, with an explicit numeric tolerance
//   - Rock-solid guarantees – pure functions, sentinel errors, no panics
//     on user input, no global state
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	distmatrix/ — dense symmetric distance-matrix storage + validation
//	fourpoint/  — the four-point condition and the additivity predicate
//
// Quick ASCII example — an unrooted quartet tree:
//
//	1 -\    /- 3
//	    >--<
//	2 -/    \- 4
//
// For leaves of any tree, the two largest of the three pairwise distance
// sums D(1,2)+D(3,4), D(1,3)+D(2,4), D(1,4)+D(2,3) must coincide; the
// fourpoint package checks this for every quartet of the matrix.
//
// Reconstructing the tree itself (neighbor-joining and friends) is out of
// scope on purpose: this library is the predicate, not the builder.
//
//	go get github.com/phylokit/treemetric/fourpoint
package treemetric
