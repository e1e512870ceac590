// Package tracking provides the edit model for document changes.
//
// A [Change] records an insert, delete, or replace against a specific
// revision, together with the affected old and new ranges. Consumers that
// hold positions from an older revision (decorations, marks) use
// [Change.MapOffset] to carry those positions forward; mapping degrades
// positions inside a deleted region to the edit boundary rather than
// failing.
//
// A [ChangeSet] groups the changes of one update batch in application
// order.
package tracking
