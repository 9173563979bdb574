package decode

import (
	"strings"

	"github.com/hangeul-nlp/postagger/lattice"
	"github.com/hangeul-nlp/postagger/model"
	"github.com/hangeul-nlp/postagger/tag"
)

// weight scores one lattice edge: emission of to's surface under its
// tag(s), plus the transition from from's trailing tag into to's leading
// tag. Two-morpheme nodes (lemmatized verb/adjective + Eomi) add a second
// emission/transition term for the ending — and, matching the trained
// model, that second transition term is keyed off from.Tag1, not off the
// node's own stem tag, the same way the source tagger scores it.
//
// The one special case: an edge out of the BOS sentinel scores its
// transition term from the begin table instead of the transition table,
// since the transition table is built from in-sentence tag bigrams only
// and never contains a BOS entry.
func weight(store *model.Store, e lattice.Edge) float64 {
	morphs := strings.SplitN(e.To.Surface, lattice.MorphSep, 2)
	w := store.Emit(e.To.Tag0, morphs[0], store.MinEmission())
	w += transitionInto(store, e.From, e.To.Tag0)

	if e.To.IsTwoMorph() && len(morphs) == 2 {
		w += store.Emit(e.To.Tag1, morphs[1], store.MinEmission())
		w += transitionInto(store, e.From, e.To.Tag1)
	}
	return w
}

// transitionInto scores the move from the trailing tag of "from" into
// toTag, substituting the begin table when from is the BOS sentinel.
func transitionInto(store *model.Store, from lattice.Node, toTag tag.ID) float64 {
	if from.Tag0 == tag.BOS && from.Tag1 == tag.BOS {
		return store.Begin(toTag, store.MinTransition())
	}
	return store.Trans(from.Tag1, toTag, store.MinTransition())
}
