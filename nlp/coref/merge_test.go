package coref

import (
	"testing"

	"github.com/vdobrovolskii/wl-coref/nlp/format/conllx"
	"github.com/vdobrovolskii/wl-coref/nlp/format/ontonotes"
	"github.com/vdobrovolskii/wl-coref/nlp/types"
)

func annRow(docID string, wordNumber int, word, coref string) ontonotes.Row {
	return ontonotes.Row{
		DocumentID: docID,
		PartID:     0,
		WordNumber: wordNumber,
		Word:       word,
		POS:        "NN",
		Speaker:    "speaker1",
		Coref:      coref,
	}
}

func depRow(id int, form, pos string, head int, deprel string) conllx.Row {
	return conllx.Row{ID: id, Form: form, POS: pos, Head: head, DepRel: deprel}
}

func TestBuildDocument(t *testing.T) {
	sents := []ontonotes.Sentence{
		{annRow("wb/doc", 0, "John", "(1)"), annRow("wb/doc", 1, "sleeps", "-")},
		{annRow("wb/doc", 0, "He", "(1)"), annRow("wb/doc", 1, "snores", "-")},
	}
	parsed := []conllx.Sentence{
		{depRow(1, "John", "NNP", 2, "nsubj"), depRow(2, "sleeps", "VBZ", 0, "root")},
		{depRow(1, "He", "PRP", 2, "nsubj"), depRow(2, "snores", "VBZ", 0, "root")},
	}
	doc, err := BuildDocument(sents, parsed)
	if err != nil {
		t.Fatal(err.Error())
	}
	if doc.DocumentID != "wb/doc" {
		t.Error("unexpected document id:", doc.DocumentID)
	}
	if doc.Len() != 4 {
		t.Fatal("expected 4 words, got", doc.Len())
	}
	if doc.SentID[2] != 1 {
		t.Error("expected word 2 in sentence 1, got", doc.SentID[2])
	}
	// heads: 1-based within the sentence, continuous 0-based in the document
	if doc.Head[0] != 1 || doc.Head[1] != types.NoHead {
		t.Error("unexpected first sentence heads:", doc.Head[:2])
	}
	if doc.Head[2] != 3 || doc.Head[3] != types.NoHead {
		t.Error("second sentence heads must be offset by the running word count, got", doc.Head[2:])
	}
	if doc.POS[1] != "VBZ" || doc.DepRel[0] != "nsubj" {
		t.Error("dependency columns not carried over")
	}
	if len(doc.Clusters) != 1 || len(doc.Clusters[0]) != 2 {
		t.Fatalf("expected one cluster with two mentions, got %v", doc.Clusters)
	}
	if doc.Clusters[0][1] != (types.Span{Start: 2, End: 3}) {
		t.Error("mention indices must be continuous across sentences, got", doc.Clusters[0][1])
	}
}

func TestBuildDocumentSentenceCountMismatch(t *testing.T) {
	sents := []ontonotes.Sentence{{annRow("wb/doc", 0, "a", "-")}}
	if _, err := BuildDocument(sents, nil); err == nil {
		t.Error("expected an error for mismatched sentence counts")
	}
}

func TestBuildDocumentWordCountMismatch(t *testing.T) {
	sents := []ontonotes.Sentence{
		{annRow("wb/doc", 0, "a", "-"), annRow("wb/doc", 1, "b", "-")},
	}
	parsed := []conllx.Sentence{{depRow(1, "a", "DT", 0, "root")}}
	if _, err := BuildDocument(sents, parsed); err == nil {
		t.Error("expected an error for mismatched word counts")
	}
}

func TestBuildDocumentIDMismatch(t *testing.T) {
	sents := []ontonotes.Sentence{
		{annRow("wb/doc", 0, "a", "-"), annRow("wb/other", 1, "b", "-")},
	}
	parsed := []conllx.Sentence{
		{depRow(1, "a", "DT", 2, "det"), depRow(2, "b", "NN", 0, "root")},
	}
	if _, err := BuildDocument(sents, parsed); err == nil {
		t.Error("expected an error for a document id mismatch")
	}
}

func TestBuildDocumentUnterminatedCoref(t *testing.T) {
	sents := []ontonotes.Sentence{{annRow("wb/doc", 0, "a", "(3")}}
	parsed := []conllx.Sentence{{depRow(1, "a", "DT", 0, "root")}}
	if _, err := BuildDocument(sents, parsed); err == nil {
		t.Error("expected an error for an unterminated coref bracket")
	}
}
