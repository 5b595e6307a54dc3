package merge

import (
	"encoding/json"
	"fmt"
	"io"
)

// Document is the on-disk form of one page of detected lines:
//
//	{"width": 800, "height": 600, "lines": [{"pts": [[x, y], ...], "text": "", "prob": 1}]}
type Document struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Lines  []Line  `json:"lines"`
}

// DecodeDocument reads a Document from r. Unknown fields are rejected.
func DecodeDocument(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("failed to decode lines document: %w", err)
	}
	if doc.Lines == nil {
		doc.Lines = []Line{}
	}
	return doc, nil
}

// Dispatch groups the document's lines with m.
func (d Document) Dispatch(m *Merger) ([]Region, error) {
	return m.Dispatch(d.Lines, d.Width, d.Height)
}
