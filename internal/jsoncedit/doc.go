// Package jsoncedit implements a JSONC (JSON with comments and trailing
// commas) text engine: a tolerant scanner, an offset-preserving syntax
// tree, a whitespace-only formatter, and minimal-edit computation for
// setting, inserting and removing values at a path.
//
// All mutation is expressed as Edit operations (byte range plus
// replacement text) against the original document. Applying the edits with
// ApplyEdits yields the new document text; the input is never modified in
// place. Because edits are minimal, comments and unrelated whitespace in
// the document survive modification untouched.
//
// The exported operations follow the API surface of the jsonc-parser
// npm package, which defines the de-facto semantics for JSONC editing:
//
//	ComputeSetEdits / ComputeRemoveEdits   — modify
//	Format                                 — format (whole document or range)
//	ApplyEdits                             — applyEdits
//	ParseTree                              — parseTree
//	FindNodeAtLocation                     — findNodeAtLocation
//	NodeValue                              — getNodeValue
package jsoncedit
