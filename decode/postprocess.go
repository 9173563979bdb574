package decode

import (
	"strings"

	"github.com/hangeul-nlp/postagger/lattice"
	"github.com/hangeul-nlp/postagger/tag"
)

// Morph is one tagged output unit: a surface string and the name of the
// tag assigned to it. A lemmatized verb or adjective contributes two
// Morphs (stem, then ending) from a single lattice node.
type Morph struct {
	Surface string
	Tag     string
}

// postprocess strips the BOS/EOS sentinels from a resolved path and
// flattens any two-morpheme node into its stem and ending Morphs.
func postprocess(tags *tag.Table, path []lattice.Node) []Morph {
	out := make([]Morph, 0, len(path))
	for _, n := range path[1 : len(path)-1] {
		if !n.IsTwoMorph() {
			out = append(out, Morph{Surface: n.Surface, Tag: tags.Name(n.Tag0)})
			continue
		}
		parts := strings.SplitN(n.Surface, lattice.MorphSep, 2)
		out = append(out, Morph{Surface: parts[0], Tag: tags.Name(n.Tag0)})
		if len(parts) == 2 {
			out = append(out, Morph{Surface: parts[1], Tag: tags.Name(n.Tag1)})
		}
	}
	return out
}
