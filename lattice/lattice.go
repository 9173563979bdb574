// Package lattice builds the directed acyclic graph of candidate
// morpheme spans for a sentence, the way tokenizer.go's buildDAG walks a
// prefix dictionary to find every rune:rune+N piece — generalized here to
// whole-word emission lookups plus verb/adjective lemmatization.
package lattice

import "github.com/hangeul-nlp/postagger/tag"

// MorphSep joins the stem and ending of a two-morpheme (lemmatized) node's
// surface, e.g. "먹 + 었다". Exported so decode can split a node's surface
// back into its morphs when scoring and post-processing.
const MorphSep = " + "

// Node is one candidate span: a surface string tagged with one or two
// part-of-speech ids. Two-morpheme nodes (lemmatized verbs/adjectives)
// have Tag1 set to the ending's tag (Eomi); single-morpheme nodes have
// Tag1 == Tag0. Node is a plain comparable value so lattice construction
// can dedupe by structural equality instead of hashing by hand.
type Node struct {
	Surface    string
	Tag0, Tag1 tag.ID
	Begin, End int
}

// IsTwoMorph reports whether Surface encodes a stem+ending decomposition.
func (n Node) IsTwoMorph() bool {
	return n.Tag0 != n.Tag1
}

// Edge connects two adjacent nodes: From.End == To.Begin, or From is the
// BOS sentinel, or To is the EOS sentinel.
type Edge struct {
	From, To Node
}

// Lattice is the full set of edges built for one sentence, plus its BOS
// and EOS sentinel nodes. A Lattice is owned by a single decoding call and
// discarded once decoding returns.
type Lattice struct {
	Edges    []Edge
	BOS, EOS Node
}
