package coref

import (
	"testing"

	"github.com/vdobrovolskii/wl-coref/nlp/types"
)

func twoPartDocument() *types.MergedDocument {
	return &types.MergedDocument{
		DocumentID: "test/doc",
		CasedWords: []string{"a", "b", "c", "d", "e", "f"},
		SentID:     []int{0, 0, 1, 1, 2, 2},
		PartID:     []int{0, 0, 0, 0, 1, 1},
		Speaker:    []string{"s", "s", "s", "s", "t", "t"},
		POS:        []string{"NN", "NN", "NN", "NN", "NN", "NN"},
		DepRel:     []string{"dep", "root", "dep", "dep", "dep", "root"},
		Head:       []types.WordIndex{1, types.NoHead, 1, 2, 5, types.NoHead},
		Clusters: []types.Cluster{
			{{Start: 0, End: 2}, {Start: 4, End: 6}},
			{{Start: 2, End: 4}},
		},
	}
}

func TestSplitConstantPart(t *testing.T) {
	doc := &types.MergedDocument{
		DocumentID: "test/doc",
		CasedWords: []string{"a", "b"},
		SentID:     []int{0, 0},
		PartID:     []int{3, 3},
		Speaker:    []string{"s", "s"},
		POS:        []string{"NN", "NN"},
		DepRel:     []string{"dep", "root"},
		Head:       []types.WordIndex{1, types.NoHead},
		Clusters:   []types.Cluster{{{Start: 0, End: 2}}},
	}
	docs, err := Split(doc)
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(docs) != 1 {
		t.Fatal("expected one document, got", len(docs))
	}
	if docs[0].PartID != 3 {
		t.Error("expected scalar part id 3, got", docs[0].PartID)
	}
	if docs[0].Len() != 2 || docs[0].Head[0] != 1 || len(docs[0].Clusters) != 1 {
		t.Error("single-part document must come back unchanged")
	}
}

func TestSplitTwoParts(t *testing.T) {
	docs, err := Split(twoPartDocument())
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(docs) != 2 {
		t.Fatal("expected two documents, got", len(docs))
	}
	first, second := docs[0], docs[1]
	if first.Len()+second.Len() != 6 {
		t.Error("word counts must sum to the original")
	}
	if first.PartID != 0 || second.PartID != 1 {
		t.Error("unexpected part ids:", first.PartID, second.PartID)
	}
	if second.SentID[0] != 0 || second.SentID[1] != 0 {
		t.Error("part sentences must be re-based to 0, got", second.SentID)
	}
	if second.Head[0] != 1 || second.Head[1] != types.NoHead {
		t.Error("part heads must be re-based, got", second.Head)
	}
	if len(first.Clusters) != 2 || len(second.Clusters) != 1 {
		t.Fatalf("unexpected cluster split: %v / %v", first.Clusters, second.Clusters)
	}
	if first.Clusters[0][0] != (types.Span{Start: 0, End: 2}) {
		t.Error("unexpected first part span:", first.Clusters[0][0])
	}
	if second.Clusters[0][0] != (types.Span{Start: 0, End: 2}) {
		t.Error("second part spans must be shifted to local indices, got", second.Clusters[0][0])
	}
}

func TestSplitStraddlingSpan(t *testing.T) {
	doc := twoPartDocument()
	doc.Clusters = []types.Cluster{{{Start: 3, End: 5}}}
	if _, err := Split(doc); err == nil {
		t.Error("expected an error for a span straddling the part boundary")
	}
}

func TestSplitPartReoccurrence(t *testing.T) {
	doc := twoPartDocument()
	doc.PartID = []int{0, 0, 1, 1, 0, 0}
	if _, err := Split(doc); err == nil {
		t.Error("expected an error for a reoccurring part id")
	}
}
