// Package decode ties the lattice, model, and lemmatizer packages into
// the tagger's public surface: score every candidate edge, find the
// highest-scoring BOS->EOS walk, resolve any Unk spans it passed through,
// and flatten the result into output morphs.
package decode

import (
	"fmt"

	"github.com/hangeul-nlp/postagger/lattice"
	"github.com/hangeul-nlp/postagger/lemma"
	"github.com/hangeul-nlp/postagger/model"
)

// Decoder tags whole sentences against a Store. A Decoder is cheap to
// construct and safe for concurrent Tag calls; AddUserDictionary takes
// the Store's write lock and should not be called concurrently with Tag.
type Decoder struct {
	store  *model.Store
	bridge *lemma.Bridge
}

// NewDecoder builds a Decoder over store, proposing verb/adjective
// decompositions through bridge. A nil bridge disables lemmatization
// candidates entirely (every eojeol is tagged whole-word or Unk).
func NewDecoder(store *model.Store, bridge *lemma.Bridge) *Decoder {
	return &Decoder{store: store, bridge: bridge}
}

// Tag builds the lattice for sentence, decodes its highest-scoring path,
// and returns the resulting morphs in order. A returned error means the
// lattice or the relaxation violated an internal invariant (a cycle, or
// an unreachable EOS) — not a property of the input text, since Build
// always produces a connected DAG for any input, including the empty
// string.
func (d *Decoder) Tag(sentence string) ([]Morph, error) {
	l := lattice.Build(sentence, d.store, d.bridge)

	path, _, err := longestPath(l.Edges, l.BOS, l.EOS, func(e lattice.Edge) float64 {
		return weight(d.store, e)
	})
	if err != nil {
		return nil, fmt.Errorf("decode: tag %q: %w", sentence, err)
	}

	resolved := resolveUnknown(d.store, path)
	return postprocess(d.store.Tags(), resolved), nil
}

// AddUserDictionary registers (or overwrites) a single-word entry in the
// underlying Store, the same way an external dictionary feed would. It
// takes effect for every Tag call issued afterward.
func (d *Decoder) AddUserDictionary(word, tagName string, score float64) error {
	d.store.AddEntry(word, tagName, score)
	return nil
}
