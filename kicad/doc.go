// Package kicad converts between the generic parenthesized token tree
// (package sexpr) and strongly typed models of KiCad's hierarchical file
// formats.
//
// The conversion framework has three layers:
//
//   - Cursors: sequential, consuming traversal over the sibling tokens at one
//     nesting level. Cursor yields owned values; RefCursor yields views into
//     the shared input buffer for high-throughput parsing. Both honor the
//     same contract and must agree on every input.
//   - Capabilities: the FromSexpr / FromSexprRef parse interfaces plus the
//     MaybeFromSexpr presence test, combined by the generic Expect, Maybe and
//     ExpectMany combinators into optional- and repeated-field parsing.
//   - Grammar: per-entity parse and serialize logic for each file format,
//     including every coexisting historical spelling of the same logical
//     data.
//
// # Round-trip fidelity
//
// Serialization reproduces the exact structural encoding of the source, not
// merely an equivalent one. Wherever a field has several legal spellings the
// model stores a provenance flag beside the logical value (generator written
// as a bare symbol vs. a quoted string, pin-name hiding as the bare `hide`
// keyword vs. the named `(hide yes)` boolean, the legacy numeric property
// id), and the serializer branches on that flag. For every well-formed tree
// t, Parse followed by ToSexpr yields a tree structurally equal to t.
//
// # Errors
//
// All failures are returned values carrying the expected and found tokens; a
// malformed document fails deterministically and entirely, producing no
// partial model. See ErrUnexpectedEndOfList and the *Error types.
package kicad
