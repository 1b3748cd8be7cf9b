// Package manifest reads the data manifests that list which page images and
// OCR text files make up each document, and turns them into page spans.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/docseg/internal/types/span"
)

type Manifest struct {
	ImgPath   string     `json:"imgPath"`
	TxtPath   string     `json:"txtPath"`
	Documents []Document `json:"documents"`
}

type Document struct {
	DocName string `json:"docName"`
	Pages   []Page `json:"pages"`
}

type Page struct {
	Img string `json:"img"`
	Txt string `json:"txt"`
}

func LoadFromFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest JSON: %w", err)
	}
	for i, d := range m.Documents {
		if len(d.Pages) == 0 {
			return nil, fmt.Errorf("document %d (%q) has no pages", i, d.DocName)
		}
	}
	return &m, nil
}

// PageCount is the total number of pages over all documents.
func (m *Manifest) PageCount() int {
	var n int
	for _, d := range m.Documents {
		n += len(d.Pages)
	}
	return n
}

// Spans lays the documents out back to back in manifest order, so the first
// page of the first document is page 0.
func (m *Manifest) Spans() ([]span.Span, error) {
	counts := make([]int, len(m.Documents))
	for i, d := range m.Documents {
		counts[i] = len(d.Pages)
	}
	return span.FromPageCounts(counts)
}
