// Package buffer provides the fundamental position and range types for
// documents, plus an immutable line-indexed Snapshot used by read-only
// consumers (decoration mapping, rendering, section lookup).
//
// Positions are byte offsets ([ByteOffset]) and are only valid within one
// document revision. Ranges are half-open: [Start, End).
package buffer
