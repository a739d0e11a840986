package coref

import (
	"fmt"

	"github.com/vdobrovolskii/wl-coref/nlp/format/conllx"
	"github.com/vdobrovolskii/wl-coref/nlp/format/ontonotes"
	"github.com/vdobrovolskii/wl-coref/nlp/types"
)

// BuildDocument merges the annotation sentences of one source file with
// their parsed dependency sentences into a single document record with
// continuous word indices. Both streams must be aligned sentence for
// sentence and word for word.
func BuildDocument(sents []ontonotes.Sentence, parsed []conllx.Sentence) (*types.MergedDocument, error) {
	if len(sents) != len(parsed) {
		return nil, fmt.Errorf("sentence count mismatch: %d annotated, %d parsed", len(sents), len(parsed))
	}

	doc := &types.MergedDocument{
		CasedWords: []string{},
		SentID:     []int{},
		PartID:     []int{},
		Speaker:    []string{},
		POS:        []string{},
		DepRel:     []string{},
		Head:       []types.WordIndex{},
		Clusters:   []types.Cluster{},
	}
	spans := NewSpanHolder()
	totalWords := 0
	for sentID, sent := range sents {
		parsedSent := parsed[sentID]
		if len(sent) != len(parsedSent) {
			return nil, fmt.Errorf("sentence %d: word count mismatch: %d annotated, %d parsed",
				sentID, len(sent), len(parsedSent))
		}

		for wordNumber, word := range sent {
			parsedWord := parsedSent[wordNumber]

			// continuous word index across the whole document
			wordID := totalWords + word.WordNumber

			// converter heads are 1-based with 0 reserved for root;
			// convert to the continuous 0-based scheme
			head := types.NoHead
			if parsedWord.Head > 0 {
				head = types.WordIndex(totalWords + parsedWord.Head - 1)
			}

			if word.Coref != ontonotes.NO_COREF {
				if err := spans.Add(word.Coref, wordID); err != nil {
					return nil, fmt.Errorf("sentence %d word %d: %v", sentID, word.WordNumber, err)
				}
			}

			if doc.DocumentID == "" {
				doc.DocumentID = word.DocumentID
			} else if doc.DocumentID != word.DocumentID {
				return nil, fmt.Errorf("document id mismatch: %q vs %q", doc.DocumentID, word.DocumentID)
			}
			doc.CasedWords = append(doc.CasedWords, word.Word)
			doc.PartID = append(doc.PartID, word.PartID)
			doc.SentID = append(doc.SentID, sentID)
			doc.Speaker = append(doc.Speaker, word.Speaker)
			doc.POS = append(doc.POS, parsedWord.POS)
			doc.DepRel = append(doc.DepRel, parsedWord.DepRel)
			doc.Head = append(doc.Head, head)
		}

		totalWords += len(sent)
	}

	clusters, err := spans.Clusters()
	if err != nil {
		return nil, fmt.Errorf("document %s: %v", doc.DocumentID, err)
	}
	doc.Clusters = append(doc.Clusters, clusters...)

	return doc, nil
}
