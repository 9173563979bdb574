package train

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hangeul-nlp/postagger/corpus"
)

func sampleSentences() []corpus.Sentence {
	return []corpus.Sentence{
		{{Surface: "나", Tag: "Noun"}, {Surface: "는", Tag: "Josa"}, {Surface: "간다", Tag: "Verb"}},
		{{Surface: "너", Tag: "Noun"}, {Surface: "는", Tag: "Josa"}, {Surface: "온다", Tag: "Verb"}},
	}
}

func TestCountTalliesEmissionTransitionBegin(t *testing.T) {
	c := Count(sampleSentences())

	assert.Equal(t, 2, c.Emission["Noun"]["나"]+c.Emission["Noun"]["너"])
	assert.Equal(t, 2, c.Emission["Josa"]["는"])
	assert.Equal(t, 2, c.Transition["Noun_Josa"])
	assert.Equal(t, 2, c.Transition["Josa_Verb"])
	assert.Equal(t, 2, c.Transition["Verb_EOS"])
	assert.Equal(t, 2, c.Begin["Noun"])
}

func TestCountProgressInvokesCallbackPerSentence(t *testing.T) {
	calls := 0
	CountProgress(sampleSentences(), func() { calls++ })
	assert.Equal(t, 2, calls)
}

func TestToLogProbNormalizesPerTagAndFromTag(t *testing.T) {
	c := Count(sampleSentences())
	artifact, err := ToLogProb(c)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, artifact.Transition["Josa_Verb"], 1e-9, "all Josa transitions go to Verb, so log(1)==0")
	assert.InDelta(t, math.Log(0.5), artifact.Emission["Noun"]["나"], 1e-9)
	assert.InDelta(t, 0.0, artifact.Begin["Noun"], 1e-9, "every sentence begins with Noun in this sample")
}

func TestToLogProbRejectsEmptyCounts(t *testing.T) {
	_, err := ToLogProb(Counts{})
	assert.ErrorIs(t, err, ErrNoSentences)
}
