// Package train turns tagged corpus.Sentences into a trained model
// artifact: raw emission/transition/begin counts, then natural-log
// probabilities derived from them, following train.py's two-stage shape.
package train

import "github.com/hangeul-nlp/postagger/corpus"

// Counts is the raw frequency tally train.py accumulates before
// converting to log-probabilities: word counts per tag, tag-bigram
// counts (including a trailing "tag_EOS" bigram per sentence), and
// sentence-initial tag counts.
type Counts struct {
	Emission   map[string]map[string]int
	Transition map[string]int
	Begin      map[string]int
}

// eosTag is the sentinel tag name used for the trailing bigram every
// sentence contributes, "<last tag>_EOS".
const eosTag = "EOS"

// Count tallies every sentence's emissions, tag bigrams, and sentence-
// initial tag, plus one "<last tag>_EOS" transition per sentence —
// exactly what train.py's train() does before handing off to
// _to_log_prob.
func Count(sentences []corpus.Sentence) Counts {
	return CountProgress(sentences, nil)
}

// CountProgress is Count plus a callback invoked once per sentence
// counted, so a caller driving a progress bar (cmd/postag's train
// subcommand) doesn't need to duplicate the counting loop.
func CountProgress(sentences []corpus.Sentence, onSentence func()) Counts {
	c := Counts{
		Emission:   make(map[string]map[string]int),
		Transition: make(map[string]int),
		Begin:      make(map[string]int),
	}
	for _, sent := range sentences {
		if len(sent) == 0 {
			continue
		}
		for _, tok := range sent {
			words, ok := c.Emission[tok.Tag]
			if !ok {
				words = make(map[string]int)
				c.Emission[tok.Tag] = words
			}
			words[tok.Surface]++
		}
		for _, bigram := range sent.TagBigrams() {
			c.Transition[bigram]++
		}
		c.Begin[sent[0].Tag]++
		c.Transition[sent[len(sent)-1].Tag+"_"+eosTag]++
		if onSentence != nil {
			onSentence()
		}
	}
	return c
}
