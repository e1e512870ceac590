// Package section implements the section-boundary oracles consumed by
// the zoom controller: a structural oracle over headings and indentation,
// and an adapter over LSP-style foldingRange responses.
package section
