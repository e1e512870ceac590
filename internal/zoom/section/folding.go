package section

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/zoomfold/internal/engine/buffer"
)

// RangeSource supplies folding ranges for a document as an LSP-style
// JSON response: an array of objects with startLine and endLine fields.
type RangeSource interface {
	// FoldingRanges resolves the request and returns the raw JSON
	// response body.
	FoldingRanges(request []byte) ([]byte, error)
}

// FoldingOracle resolves section boundaries from a language server's
// foldingRange response instead of document structure. It picks the
// innermost folding range containing the query line.
type FoldingOracle struct {
	source RangeSource
}

// NewFoldingOracle creates an oracle backed by the given range source.
func NewFoldingOracle(source RangeSource) *FoldingOracle {
	return &FoldingOracle{source: source}
}

// SectionRange implements the section oracle over folding ranges.
// Source failures degrade to "no section"; zoom treats that as a silent
// no-op rather than an error.
func (f *FoldingOracle) SectionRange(snap *buffer.Snapshot, lineStart, _ buffer.ByteOffset) (buffer.Range, bool) {
	request, err := buildRequest(snap.ID)
	if err != nil {
		return buffer.Range{}, false
	}

	body, err := f.source.FoldingRanges(request)
	if err != nil {
		return buffer.Range{}, false
	}

	line := int64(snap.LineContaining(lineStart))

	// The innermost containing range is the one with the largest start.
	bestStart, bestEnd := int64(-1), int64(-1)
	gjson.ParseBytes(body).ForEach(func(_, value gjson.Result) bool {
		start := value.Get("startLine").Int()
		end := value.Get("endLine").Int()
		if start <= line && line <= end && start > bestStart {
			bestStart, bestEnd = start, end
		}
		return true
	})

	if bestStart < 0 {
		return buffer.Range{}, false
	}
	if bestEnd >= int64(snap.LineCount()) {
		bestEnd = int64(snap.LineCount()) - 1
	}
	return buffer.NewRange(snap.LineStart(uint32(bestStart)), snap.LineEnd(uint32(bestEnd))), true
}

// buildRequest constructs the foldingRange request body.
func buildRequest(uri string) ([]byte, error) {
	body, err := sjson.SetBytes([]byte(`{}`), "textDocument.uri", uri)
	if err != nil {
		return nil, fmt.Errorf("building foldingRange request: %w", err)
	}
	return body, nil
}
