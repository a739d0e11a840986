package coref

import (
	"sort"

	"github.com/vdobrovolskii/wl-coref/nlp/types"
)

// HeadOf resolves the syntactic head of a span: the only word within the
// span whose own head is outside the span or absent (root). If no word or
// more than one word qualifies, the rightmost word of the span is returned.
func HeadOf(span types.Span, heads []types.WordIndex) int {
	candidate := -1
	candidates := 0
	for i := span.Start; i < span.End; i++ {
		head := heads[i]
		if head == types.NoHead || int(head) < span.Start || int(head) >= span.End {
			candidate = i
			candidates++
		}
	}
	if candidates == 1 {
		return candidate
	}
	return span.End - 1
}

// Stats counts the mentions and clusters dropped while normalizing.
type Stats struct {
	DeletedSpans    int
	TotalSpans      int
	DeletedClusters int
	TotalClusters   int
	Collisions      []Collision
}

func (s *Stats) Add(other Stats) {
	s.DeletedSpans += other.DeletedSpans
	s.TotalSpans += other.TotalSpans
	s.DeletedClusters += other.DeletedClusters
	s.TotalClusters += other.TotalClusters
}

// A Collision records one head word claimed by several mentions; the
// surviving (shortest) span comes first.
type Collision struct {
	Head  int
	Spans []types.Span
}

type claimant struct {
	span    types.Span
	cluster int
}

// Normalize reduces a document's span clusters to head-word clusters.
// When several mentions resolve to the same head word, the shortest span
// keeps it and the rest lose their entry in the head-reduced clusters;
// head clusters left with fewer than two members are dropped. The span
// clusters themselves are carried over unmodified.
func Normalize(doc *types.Document) (*types.HeadDocument, Stats) {
	stats := Stats{
		TotalClusters: len(doc.Clusters),
	}

	headClusters := make([][]int, len(doc.Clusters))
	for i, cluster := range doc.Clusters {
		stats.TotalSpans += len(cluster)
		headCluster := make([]int, len(cluster))
		for j, span := range cluster {
			headCluster[j] = HeadOf(span, doc.Head)
		}
		headClusters[i] = headCluster
	}

	// Index every head's claimants across all clusters before touching
	// anything; deletions happen in a second pass.
	byHead := make(map[int][]claimant)
	var headOrder []int
	for i, cluster := range doc.Clusters {
		for j, span := range cluster {
			head := headClusters[i][j]
			if _, seen := byHead[head]; !seen {
				headOrder = append(headOrder, head)
			}
			byHead[head] = append(byHead[head], claimant{span: span, cluster: i})
		}
	}

	head2span := []types.HeadSpan{}
	for _, head := range headOrder {
		claimants := byHead[head]
		sort.SliceStable(claimants, func(a, b int) bool {
			return claimants[a].span.Len() < claimants[b].span.Len()
		})
		winner := claimants[0].span
		head2span = append(head2span, types.HeadSpan{Head: head, Start: winner.Start, End: winner.End})

		if len(claimants) > 1 {
			collision := Collision{Head: head}
			for _, c := range claimants {
				collision.Spans = append(collision.Spans, c.span)
			}
			stats.Collisions = append(stats.Collisions, collision)

			for _, loser := range claimants[1:] {
				headClusters[loser.cluster] = removeFirst(headClusters[loser.cluster], head)
				stats.DeletedSpans++
			}
		}
	}

	wordClusters := [][]int{}
	for _, headCluster := range headClusters {
		if len(headCluster) > 1 {
			wordClusters = append(wordClusters, headCluster)
		} else {
			stats.DeletedClusters++
		}
	}

	return &types.HeadDocument{
		DocumentID:   doc.DocumentID,
		CasedWords:   doc.CasedWords,
		SentID:       doc.SentID,
		PartID:       doc.PartID,
		Speaker:      doc.Speaker,
		POS:          doc.POS,
		DepRel:       doc.DepRel,
		Head:         doc.Head,
		Head2Span:    head2span,
		WordClusters: wordClusters,
		SpanClusters: doc.Clusters,
	}, stats
}

func removeFirst(cluster []int, head int) []int {
	for i, h := range cluster {
		if h == head {
			return append(cluster[:i], cluster[i+1:]...)
		}
	}
	return cluster
}
