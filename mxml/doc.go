// Package mxml implements a typed in-memory model for MusicXML
// score-partwise documents and a bidirectional codec between that model
// and the document text.
//
// The model is a tree of plain data types mirroring the partwise schema:
// Score at the root, then Parts, Measures, and the per-measure music-data
// variants (Note, Backup, Forward, Direction, Attributes, Barline and the
// rarer ones). Large element unions are sealed interfaces (MusicData,
// Notation, DirectionType) so the codec boundary can switch exhaustively.
//
// # Codec
//
//   - Emit walks a Score and produces a complete document: declaration,
//     doctype, root element, children in the exact order the schema
//     mandates. Emission is canonical: the same Score always produces
//     byte-identical text.
//   - Parse consumes document text as a forward-only token stream and
//     rebuilds a Score. Unknown elements are skipped whole, so documents
//     written against newer schema revisions still load. Child order is
//     not enforced on the read side.
//
// The round-trip contract: for any well-formed Score s,
//
//	Emit(Parse(Emit(s))) == Emit(s)
//
// # Durations
//
// All durations are integers scaled by the divisions-per-quarter value
// declared in Attributes, which stays in force for the rest of the part
// until redeclared. DivisionsFor and ApplyTimeModification convert
// between notated types (quarter, eighth, dots, tuplet ratios) and
// division counts using exact rational arithmetic; a conversion that
// would lose precision is an error, never a silent rounding.
//
// # Errors
//
// Emission fails only on cross-field inconsistencies in the input tree
// (InvalidDataError). Parsing distinguishes malformed XML
// (MalformedDocumentError), the recognized-but-unsupported timewise
// variant (UnsupportedRootError), schema-required children absent at a
// container's close (MissingElementError), unknown enumerated text
// (InvalidEnumError), and structural impossibilities
// (UnexpectedStructureError). All carry enough position context to find
// the offending element in the source.
package mxml
