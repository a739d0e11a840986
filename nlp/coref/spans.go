package coref

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vdobrovolskii/wl-coref/nlp/types"
)

const COREF_SEPARATOR = "|"

// A SpanHolder assembles coreference mention spans from the inline bracket
// notation, one word at a time. Every entity id keeps a stack of open span
// starts, so mentions of different entities may nest and interleave and a
// single word may close one mention while opening another.
type SpanHolder struct {
	starts map[int][]int
	spans  map[int]types.Cluster
	order  []int
}

func NewSpanHolder() *SpanHolder {
	return &SpanHolder{
		starts: make(map[int][]int),
		spans:  make(map[int]types.Cluster),
	}
}

// Add processes the coreference column of one word, e.g. "(50)", "(50",
// "50)" or "(50)|(80". wordID is the continuous word index of the word.
func (h *SpanHolder) Add(corefInfo string, wordID int) error {
	for _, ci := range strings.Split(corefInfo, COREF_SEPARATOR) {
		if err := h.addOne(ci, wordID); err != nil {
			return err
		}
	}
	return nil
}

func (h *SpanHolder) addOne(ci string, wordID int) error {
	if len(ci) < 2 {
		return fmt.Errorf("invalid coref annotation %q", ci)
	}
	switch {
	case ci[0] == '(' && ci[len(ci)-1] == ')':
		entityID, err := strconv.Atoi(ci[1 : len(ci)-1])
		if err != nil {
			return fmt.Errorf("invalid coref annotation %q: %v", ci, err)
		}
		h.push(entityID, types.Span{Start: wordID, End: wordID + 1})
	case ci[0] == '(':
		entityID, err := strconv.Atoi(ci[1:])
		if err != nil {
			return fmt.Errorf("invalid coref annotation %q: %v", ci, err)
		}
		h.starts[entityID] = append(h.starts[entityID], wordID)
	case ci[len(ci)-1] == ')':
		entityID, err := strconv.Atoi(ci[:len(ci)-1])
		if err != nil {
			return fmt.Errorf("invalid coref annotation %q: %v", ci, err)
		}
		open := h.starts[entityID]
		if len(open) == 0 {
			return fmt.Errorf("entity %d closed at word %d without an open bracket", entityID, wordID)
		}
		start := open[len(open)-1]
		h.starts[entityID] = open[:len(open)-1]
		h.push(entityID, types.Span{Start: start, End: wordID + 1})
	default:
		return fmt.Errorf("invalid coref annotation %q", ci)
	}
	return nil
}

// push appends a completed span; entities are ordered by first closure.
func (h *SpanHolder) push(entityID int, span types.Span) {
	if _, seen := h.spans[entityID]; !seen {
		h.order = append(h.order, entityID)
	}
	h.spans[entityID] = append(h.spans[entityID], span)
}

// Clusters returns one cluster per entity, in entity first-closure order.
// It is an error to call Clusters while any entity still has an open span.
func (h *SpanHolder) Clusters() ([]types.Cluster, error) {
	for entityID, open := range h.starts {
		if len(open) > 0 {
			return nil, fmt.Errorf("entity %d has %d unterminated span(s)", entityID, len(open))
		}
	}
	clusters := make([]types.Cluster, 0, len(h.order))
	for _, entityID := range h.order {
		clusters = append(clusters, h.spans[entityID])
	}
	return clusters, nil
}
