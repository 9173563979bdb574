// Package crf is a minimal feature-transformer and linear-model scaffold
// mirroring CRF.py's feature transformers and scorer. No training
// driver is provided — CRF.py itself reaches for an external CRF
// solver it never fully wires up, and this module stays deliberately
// at the same scaffold depth: wordtag/feature plumbing a real trainer
// could sit behind, not a trainer itself.
package crf

import "fmt"

// Feature records a feature string's position in an encoder's vocabulary
// and how often it was observed, mirroring CRF.py's Feature namedtuple.
type Feature struct {
	Idx   int
	Count int
}

const (
	bosMarker = "BOS"
	eosMarker = "EOS"
)

// Transformer turns one sentence position's padded word/tag context
// into a set of feature strings.
type Transformer interface {
	ToFeature(words, tags []string, i int) []string
}

// SentenceToXY pads words and tags with BOS/EOS markers and runs every
// in-sentence position through t, returning one feature slice per word
// alongside the original (unpadded) tags — the Go shape of
// AbstractFeatureTransformer.sentence_to_xy.
func SentenceToXY(t Transformer, words, tags []string) ([][]string, []string) {
	n := len(words)
	paddedWords := make([]string, 0, n+2)
	paddedWords = append(paddedWords, bosMarker)
	paddedWords = append(paddedWords, words...)
	paddedWords = append(paddedWords, eosMarker)

	paddedTags := make([]string, 0, n+2)
	paddedTags = append(paddedTags, bosMarker)
	paddedTags = append(paddedTags, tags...)
	paddedTags = append(paddedTags, eosMarker)

	encoded := make([][]string, 0, n)
	for i := 1; i <= n; i++ {
		encoded = append(encoded, t.ToFeature(paddedWords, paddedTags, i))
	}
	return encoded, tags
}

// BaseTransformer uses the current word, the current word paired with
// the previous tag, the previous+current word bigram (alone and paired
// with the previous tag), and the surrounding word skip-bigram (alone
// and paired with the previous tag) — the six features
// BaseFeatureTransformer builds in CRF.py.
type BaseTransformer struct{}

func (BaseTransformer) ToFeature(words, tags []string, i int) []string {
	return []string{
		fmt.Sprintf("x[0]=%s", words[i]),
		fmt.Sprintf("x[0]=%s, y[-1]=%s", words[i], tags[i-1]),
		fmt.Sprintf("x[-1:0]=%s-%s", words[i-1], words[i]),
		fmt.Sprintf("x[-1:0]=%s-%s, y[-1]=%s", words[i-1], words[i], tags[i-1]),
		fmt.Sprintf("x[-1,1]=%s-%s", words[i-1], words[i+1]),
		fmt.Sprintf("x[-1,1]=%s-%s, y[-1]=%s", words[i-1], words[i+1], tags[i-1]),
	}
}

// HMMStyleTransformer keeps only the current-word feature, the same
// restriction HMMStyleFeatureTransformer applies in CRF.py so the CRF
// scorer can be compared against the plain HMM on equal footing.
type HMMStyleTransformer struct{}

func (HMMStyleTransformer) ToFeature(words, _ []string, i int) []string {
	return []string{fmt.Sprintf("x[0]=%s", words[i])}
}
