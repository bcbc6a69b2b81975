// Package core provides the low-level byte-oriented primitives for depositing
// and recovering orphan stream objects in PDF files.
//
// Nothing in this package parses PDF syntax. PDF structural keywords are pure
// ASCII embedded in an otherwise binary stream, so every operation works by
// literal byte search over the raw file bytes. That keeps the transformation
// local and non-invasive: existing objects, the cross-reference table, and the
// trailer are never rewritten, so they stay byte-identical and internally
// consistent.
//
// # Locating landmarks
//
//   - [FindObjectDeclaration] - offset of an object's "<N> 0 obj" header
//   - [HighestObjectNumber] - largest object number declared anywhere
//   - [FindStreamBounds] - the raw bytes between "stream\n" and "\nendstream"
//   - [FindXref] - offset of the cross-reference table keyword
//
// # Building and splicing
//
// [BuildStreamObject] serializes a syntactically complete indirect object
// wrapping opaque stream bytes. [Splice] inserts those bytes into a file
// buffer at a given offset without disturbing anything around them.
//
// Landmark search considers only the first occurrence of each marker. A file
// with duplicate object numbers (for example from incremental updates) or a
// stray "xref" token inside stream data is outside the supported shape;
// callers can use [CountObjectDeclarations] to detect the ambiguity.
package core
