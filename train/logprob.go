package train

import (
	"math"
	"strings"

	"github.com/hangeul-nlp/postagger/model"
)

// ToLogProb converts raw counts into a model.Artifact of natural-log
// probabilities: emission normalized per tag, transition normalized by
// the from-tag's total (train.py's _to_log_prob reuses a stale loop
// variable for this denominator, a bug this reimplementation does not
// carry forward), and begin normalized by the grand total of
// sentence-initial tags.
func ToLogProb(c Counts) (model.Artifact, error) {
	if len(c.Emission) == 0 || len(c.Begin) == 0 {
		return model.Artifact{}, ErrNoSentences
	}

	emission := make(map[string]map[string]float64, len(c.Emission))
	for tagName, words := range c.Emission {
		total := 0
		for _, n := range words {
			total += n
		}
		wm := make(map[string]float64, len(words))
		for word, n := range words {
			wm[word] = math.Log(float64(n) / float64(total))
		}
		emission[tagName] = wm
	}

	fromTotal := make(map[string]int, len(c.Transition))
	for key, n := range c.Transition {
		fromTotal[fromTag(key)] += n
	}
	transition := make(map[string]float64, len(c.Transition))
	for key, n := range c.Transition {
		transition[key] = math.Log(float64(n) / float64(fromTotal[fromTag(key)]))
	}

	beginTotal := 0
	for _, n := range c.Begin {
		beginTotal += n
	}
	begin := make(map[string]float64, len(c.Begin))
	for tagName, n := range c.Begin {
		begin[tagName] = math.Log(float64(n) / float64(beginTotal))
	}

	return model.Artifact{Emission: emission, Transition: transition, Begin: begin}, nil
}

// fromTag extracts the leading tag name out of a "from_to" transition key.
func fromTag(key string) string {
	return strings.SplitN(key, "_", 2)[0]
}
