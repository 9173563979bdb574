package lattice

import (
	"sort"
	"strings"

	"github.com/hangeul-nlp/postagger/lemma"
	"github.com/hangeul-nlp/postagger/model"
	"github.com/hangeul-nlp/postagger/tag"
)

// Build turns sentence into a Lattice against store, using bridge to
// propose verb/adjective stem+ending decompositions. It follows the same
// shape as tokenizer.go's buildDAG + findDAGPath split: first enumerate
// every candidate span per starting position, then connect adjacent spans
// into edges, bridging gaps with Unk nodes.
func Build(sentence string, store *model.Store, bridge *lemma.Bridge) *Lattice {
	eojeols := strings.Fields(sentence)

	maxLen := store.MaxWordLen()
	if maxLen < 1 {
		maxLen = 1
	}

	verbID := store.TagID("Verb")
	adjID := store.TagID("Adjective")
	eomiID := store.TagID("Eomi")

	nChar := 0
	for _, eo := range eojeols {
		nChar += len([]rune(eo))
	}

	// sentNodes[i] holds every node that begins at character index i.
	// Index nChar is reserved for the EOS sentinel's bucket.
	sentNodes := make([][]Node, nChar+1)
	chars := make([]rune, 0, nChar)

	offset := 0
	for _, eo := range eojeols {
		runes := []rune(eo)
		n := len(runes)
		chars = append(chars, runes...)

		for b := 0; b < n; b++ {
			for r := 1; r <= maxLen && b+r <= n; r++ {
				e := b + r
				surface := string(runes[b:e])
				for _, t := range store.TagsContaining(surface) {
					sentNodes[offset+b] = append(sentNodes[offset+b], Node{
						Surface: surface, Tag0: t, Tag1: t,
						Begin: offset + b, End: offset + e,
					})
				}
				addLemmaCandidates(sentNodes, bridge, store, runes, b, e, offset, verbID, adjID, eomiID)
			}
		}
		offset += n
	}

	eos := Node{Surface: "EOS", Tag0: tag.EOS, Tag1: tag.EOS, Begin: nChar, End: nChar + 1}
	sentNodes[nChar] = []Node{eos}
	bos := Node{Surface: "BOS", Tag0: tag.BOS, Tag1: tag.BOS, Begin: 0, End: 0}

	firstNonEmpty := func(from int) int {
		for i := from; i <= nChar; i++ {
			if len(sentNodes[i]) > 0 {
				return i
			}
		}
		return from
	}

	if i := firstNonEmpty(0); i > 0 {
		sentNodes[0] = append(sentNodes[0], Node{
			Surface: string(chars[:i]), Tag0: tag.Unk, Tag1: tag.Unk,
			Begin: 0, End: i,
		})
	}

	var edges []Edge
	unkSeen := make(map[Node]struct{})
	var unkOrder []Node
	for pos := 0; pos < nChar; pos++ {
		for _, w := range sentNodes[pos] {
			end := w.End
			if len(sentNodes[end]) == 0 {
				b := firstNonEmpty(end)
				unk := Node{Surface: string(chars[end:b]), Tag0: tag.Unk, Tag1: tag.Unk, Begin: end, End: b}
				edges = append(edges, Edge{From: w, To: unk})
				if _, ok := unkSeen[unk]; !ok {
					unkSeen[unk] = struct{}{}
					unkOrder = append(unkOrder, unk)
				}
			} else {
				for _, v := range sentNodes[end] {
					edges = append(edges, Edge{From: w, To: v})
				}
			}
		}
	}

	// unkOrder is appended to in map-iteration-free, pos-ascending order
	// above, but sort it explicitly by (Begin, End) anyway so the
	// continuation edges below don't depend on that incidental ordering.
	sort.Slice(unkOrder, func(i, j int) bool {
		if unkOrder[i].Begin != unkOrder[j].Begin {
			return unkOrder[i].Begin < unkOrder[j].Begin
		}
		return unkOrder[i].End < unkOrder[j].End
	})

	for _, unk := range unkOrder {
		for _, v := range sentNodes[unk.End] {
			edges = append(edges, Edge{From: unk, To: v})
		}
	}

	for _, w := range sentNodes[0] {
		edges = append(edges, Edge{From: bos, To: w})
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From.Begin != edges[j].From.Begin {
			return edges[i].From.Begin < edges[j].From.Begin
		}
		return edges[i].To.End < edges[j].To.End
	})

	return &Lattice{Edges: edges, BOS: bos, EOS: eos}
}

// addLemmaCandidates tries every split point of runes[b:e] and appends a
// node for each candidate rewrite that lands in both the Verb/Adjective
// and Eomi emission tables.
func addLemmaCandidates(
	sentNodes [][]Node,
	bridge *lemma.Bridge,
	store *model.Store,
	runes []rune,
	b, e, offset int,
	verbID, adjID, eomiID tag.ID,
) {
	for i := 1; i <= e-b; i++ {
		stem := string(runes[b : b+i])
		ending := string(runes[b+i : e])
		for _, cand := range bridge.Propose(stem, ending) {
			if store.Contains(verbID, cand.Stem) && store.Contains(eomiID, cand.Ending) {
				sentNodes[offset+b] = append(sentNodes[offset+b], Node{
					Surface: cand.Stem + MorphSep + cand.Ending,
					Tag0:    verbID, Tag1: eomiID,
					Begin: offset + b, End: offset + e,
				})
			}
			if store.Contains(adjID, cand.Stem) && store.Contains(eomiID, cand.Ending) {
				sentNodes[offset+b] = append(sentNodes[offset+b], Node{
					Surface: cand.Stem + MorphSep + cand.Ending,
					Tag0:    adjID, Tag1: eomiID,
					Begin: offset + b, End: offset + e,
				})
			}
		}
	}
}
