package coref

import (
	"testing"

	"github.com/vdobrovolskii/wl-coref/nlp/types"
)

func TestMultiWordSpan(t *testing.T) {
	h := NewSpanHolder()
	if err := h.Add("(1", 0); err != nil {
		t.Error(err.Error())
	}
	if err := h.Add("1)", 2); err != nil {
		t.Error(err.Error())
	}
	clusters, err := h.Clusters()
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(clusters) != 1 || len(clusters[0]) != 1 {
		t.Fatalf("expected one cluster with one span, got %v", clusters)
	}
	if clusters[0][0] != (types.Span{Start: 0, End: 3}) {
		t.Error("expected span [0,3), got", clusters[0][0])
	}
}

func TestSingleWordSpan(t *testing.T) {
	h := NewSpanHolder()
	if err := h.Add("(1)", 5); err != nil {
		t.Error(err.Error())
	}
	clusters, err := h.Clusters()
	if err != nil {
		t.Fatal(err.Error())
	}
	if clusters[0][0] != (types.Span{Start: 5, End: 6}) {
		t.Error("expected span [5,6), got", clusters[0][0])
	}
}

func TestMultiTokenAnnotation(t *testing.T) {
	h := NewSpanHolder()
	if err := h.Add("(1)|(2", 0); err != nil {
		t.Error(err.Error())
	}
	if err := h.Add("2)", 1); err != nil {
		t.Error(err.Error())
	}
	clusters, err := h.Clusters()
	if err != nil {
		t.Fatal(err.Error())
	}
	if len(clusters) != 2 {
		t.Fatalf("expected two clusters, got %v", clusters)
	}
	if clusters[0][0] != (types.Span{Start: 0, End: 1}) {
		t.Error("expected entity 1 span [0,1), got", clusters[0][0])
	}
	if clusters[1][0] != (types.Span{Start: 0, End: 2}) {
		t.Error("expected entity 2 span [0,2), got", clusters[1][0])
	}
}

func TestClusterOrderByFirstClosure(t *testing.T) {
	h := NewSpanHolder()
	// entity 2 opens first but entity 1 closes first
	if err := h.Add("(2", 0); err != nil {
		t.Error(err.Error())
	}
	if err := h.Add("(1)", 1); err != nil {
		t.Error(err.Error())
	}
	if err := h.Add("2)", 2); err != nil {
		t.Error(err.Error())
	}
	clusters, err := h.Clusters()
	if err != nil {
		t.Fatal(err.Error())
	}
	if clusters[0][0] != (types.Span{Start: 1, End: 2}) {
		t.Error("expected the earlier-closing entity first, got", clusters[0][0])
	}
	if clusters[1][0] != (types.Span{Start: 0, End: 3}) {
		t.Error("expected the later-closing entity second, got", clusters[1][0])
	}
}

func TestUnterminatedSpan(t *testing.T) {
	h := NewSpanHolder()
	if err := h.Add("(7", 0); err != nil {
		t.Error(err.Error())
	}
	if _, err := h.Clusters(); err == nil {
		t.Error("expected an error for an unterminated span")
	}
}

func TestCloseWithoutOpen(t *testing.T) {
	h := NewSpanHolder()
	if err := h.Add("3)", 0); err == nil {
		t.Error("expected an error for a close without an open bracket")
	}
}

func TestInvalidAnnotation(t *testing.T) {
	h := NewSpanHolder()
	for _, token := range []string{"42", "(x)", "()", "("} {
		if err := h.Add(token, 0); err == nil {
			t.Errorf("expected an error for annotation %q", token)
		}
	}
}
