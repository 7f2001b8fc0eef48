// Package consensus extracts the base shared by a quorum of documents.
//
// Given N documents and a quorum ratio q, [Common] returns the base, the
// parts held by at least ceil(q*N) of the documents, and for each document
// the diff which together with the base reproduces it:
//
//	base, diffs := consensus.Common(docs, 0.5)
//
// Mappings are reconciled key by key. Every other value, sequences
// included, is taken as a whole: it is either in the base or in the diff.
// Values of different types at the same position are never reconciled.
//
// When several distinct values reach the quorum, the one seen first in
// input order is the base.
package consensus
