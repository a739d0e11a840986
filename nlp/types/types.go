package types

// Document records for the OntoNotes coreference pipeline.
// One document = all parts of one source annotation file sharing a document id.

import (
	"encoding/json"
	"fmt"
)

// A WordIndex is a 0-based word index continuous across all sentences
// of one document. NoHead marks a syntactic root and serializes to null.
type WordIndex int

const NoHead WordIndex = -1

func (w WordIndex) MarshalJSON() ([]byte, error) {
	if w < 0 {
		return []byte("null"), nil
	}
	return json.Marshal(int(w))
}

func (w *WordIndex) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*w = NoHead
		return nil
	}
	var value int
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*w = WordIndex(value)
	return nil
}

// A Span is a half-open [Start, End) range of word indices
// representing a contiguous mention
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

func (s Span) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{s.Start, s.End})
}

func (s *Span) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("span must have exactly 2 elements, got %d", len(pair))
	}
	s.Start, s.End = pair[0], pair[1]
	return nil
}

// A Cluster is the list of mention spans of one entity, in the order
// the mentions were closed
type Cluster []Span

// A HeadSpan records the canonical span claimed by a head word,
// serialized as [head, start, end]
type HeadSpan struct {
	Head  int
	Start int
	End   int
}

func (h HeadSpan) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{h.Head, h.Start, h.End})
}

func (h *HeadSpan) UnmarshalJSON(data []byte) error {
	var triple []int
	if err := json.Unmarshal(data, &triple); err != nil {
		return err
	}
	if len(triple) != 3 {
		return fmt.Errorf("head span must have exactly 3 elements, got %d", len(triple))
	}
	h.Head, h.Start, h.End = triple[0], triple[1], triple[2]
	return nil
}

// A MergedDocument is the raw merge of one annotation file with its parsed
// dependency sentences; part ids are still per word since the file may
// concatenate multiple document parts
type MergedDocument struct {
	DocumentID string      `json:"document_id"`
	CasedWords []string    `json:"cased_words"`
	SentID     []int       `json:"sent_id"`
	PartID     []int       `json:"part_id"`
	Speaker    []string    `json:"speaker"`
	POS        []string    `json:"pos"`
	DepRel     []string    `json:"deprel"`
	Head       []WordIndex `json:"head"`
	Clusters   []Cluster   `json:"clusters"`
}

func (d *MergedDocument) Len() int {
	return len(d.CasedWords)
}

// A Document is a single document part, with a scalar part id and
// all word indices local to the part
type Document struct {
	DocumentID string      `json:"document_id"`
	CasedWords []string    `json:"cased_words"`
	SentID     []int       `json:"sent_id"`
	PartID     int         `json:"part_id"`
	Speaker    []string    `json:"speaker"`
	POS        []string    `json:"pos"`
	DepRel     []string    `json:"deprel"`
	Head       []WordIndex `json:"head"`
	Clusters   []Cluster   `json:"clusters"`
}

func (d *Document) Len() int {
	return len(d.CasedWords)
}

// A HeadDocument is a Document whose clusters have been reduced to
// head words; the original span clusters are retained for reference
type HeadDocument struct {
	DocumentID   string      `json:"document_id"`
	CasedWords   []string    `json:"cased_words"`
	SentID       []int       `json:"sent_id"`
	PartID       int         `json:"part_id"`
	Speaker      []string    `json:"speaker"`
	POS          []string    `json:"pos"`
	DepRel       []string    `json:"deprel"`
	Head         []WordIndex `json:"head"`
	Head2Span    []HeadSpan  `json:"head2span"`
	WordClusters [][]int     `json:"word_clusters"`
	SpanClusters []Cluster   `json:"span_clusters"`
}
