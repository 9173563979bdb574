package decode

import (
	"github.com/hangeul-nlp/postagger/lattice"
	"github.com/hangeul-nlp/postagger/model"
	"github.com/hangeul-nlp/postagger/tag"
)

// resolveUnknown assigns a concrete tag to every Unk node on the winning
// path. It scores each registered tag by the transition in from the
// preceding resolved node plus the transition out to the following node
// (using the begin table when the preceding node is BOS), and keeps
// whichever scores highest. When the following node is EOS, the outgoing
// term is the candidate's trained "<tag>_EOS" transition (training records
// one per sentence), or the floor for a tag that never ended a sentence.
//
// path must run BOS..EOS inclusive, as returned by longestPath.
func resolveUnknown(store *model.Store, path []lattice.Node) []lattice.Node {
	resolved := make([]lattice.Node, len(path))
	copy(resolved, path)

	bound := store.Tags().Bound()
	fallback := store.TagID("Noun")

	for i, n := range resolved {
		if n.Tag0 != tag.Unk {
			continue
		}

		prev := resolved[i-1]
		next := resolved[i+1]

		best := fallback
		bestScore := negInf
		for c := tag.Unk + 1; c < bound; c++ {
			score := transitionInto(store, prev, c) + store.Trans(c, next.Tag0, store.MinTransition())
			if score > bestScore {
				bestScore = score
				best = c
			}
		}

		resolved[i].Tag0 = best
		resolved[i].Tag1 = best
	}
	return resolved
}
