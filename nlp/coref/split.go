package coref

import (
	"fmt"

	"github.com/vdobrovolskii/wl-coref/nlp/types"
)

// Split partitions a merged document into one document per part. Sentence
// ids, head pointers and cluster spans are re-based to each part's local
// word indices. A document with a single part is returned as-is with the
// part id collapsed to a scalar.
func Split(doc *types.MergedDocument) ([]*types.Document, error) {
	if doc.Len() == 0 {
		return nil, fmt.Errorf("document %s is empty", doc.DocumentID)
	}
	if constantPartID(doc.PartID) {
		return []*types.Document{{
			DocumentID: doc.DocumentID,
			CasedWords: doc.CasedWords,
			SentID:     doc.SentID,
			PartID:     doc.PartID[0],
			Speaker:    doc.Speaker,
			POS:        doc.POS,
			DepRel:     doc.DepRel,
			Head:       doc.Head,
			Clusters:   doc.Clusters,
		}}, nil
	}

	starts, err := partStarts(doc)
	if err != nil {
		return nil, err
	}

	docs := make([]*types.Document, 0, len(starts))
	for i, start := range starts {
		end := doc.Len()
		if i < len(starts)-1 {
			end = starts[i+1]
		}
		part, err := slicePart(doc, start, end)
		if err != nil {
			return nil, err
		}
		docs = append(docs, part)
	}
	return docs, nil
}

func constantPartID(partID []int) bool {
	for _, id := range partID[1:] {
		if id != partID[0] {
			return false
		}
	}
	return true
}

// partStarts finds the contiguous part boundaries. A part id reappearing
// after a different part has intervened means the input assumption of
// monotonic runs is broken, which is fatal.
func partStarts(doc *types.MergedDocument) ([]int, error) {
	starts := []int{0}
	seen := map[int]bool{doc.PartID[0]: true}
	current := doc.PartID[0]
	for i, partID := range doc.PartID {
		if partID == current {
			continue
		}
		if seen[partID] {
			return nil, fmt.Errorf("document %s: part %d reoccurs at word %d after part %d",
				doc.DocumentID, partID, i, current)
		}
		seen[partID] = true
		current = partID
		starts = append(starts, i)
	}
	return starts, nil
}

func slicePart(doc *types.MergedDocument, start, end int) (*types.Document, error) {
	sentStart := doc.SentID[start]
	sentID := make([]int, end-start)
	for i, s := range doc.SentID[start:end] {
		sentID[i] = s - sentStart
	}

	head := make([]types.WordIndex, end-start)
	for i, h := range doc.Head[start:end] {
		if h == types.NoHead {
			head[i] = types.NoHead
		} else {
			head[i] = h - types.WordIndex(start)
		}
	}

	clusters := []types.Cluster{}
	for _, cluster := range doc.Clusters {
		var splitCluster types.Cluster
		for _, span := range cluster {
			if span.Start < start || span.Start >= end {
				continue
			}
			if span.End <= span.Start || span.End > end {
				return nil, fmt.Errorf("document %s: span %v straddles the part boundary at word %d",
					doc.DocumentID, span, end)
			}
			splitCluster = append(splitCluster, types.Span{Start: span.Start - start, End: span.End - start})
		}
		if len(splitCluster) > 0 {
			clusters = append(clusters, splitCluster)
		}
	}

	return &types.Document{
		DocumentID: doc.DocumentID,
		CasedWords: doc.CasedWords[start:end],
		SentID:     sentID,
		PartID:     doc.PartID[start],
		Speaker:    doc.Speaker[start:end],
		POS:        doc.POS[start:end],
		DepRel:     doc.DepRel[start:end],
		Head:       head,
		Clusters:   clusters,
	}, nil
}
