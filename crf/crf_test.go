package crf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseTransformerToFeatureSixFeatures(t *testing.T) {
	words := []string{"BOS", "나", "는", "EOS"}
	tags := []string{"BOS", "Noun", "Josa", "EOS"}

	feats := BaseTransformer{}.ToFeature(words, tags, 1)
	require := assert.New(t)
	require.Len(feats, 6)
	require.Equal("x[0]=나", feats[0])
	require.Equal("x[0]=나, y[-1]=BOS", feats[1])
	require.Equal("x[-1:0]=BOS-나", feats[2])
}

func TestHMMStyleTransformerSingleFeature(t *testing.T) {
	words := []string{"BOS", "나", "EOS"}
	feats := HMMStyleTransformer{}.ToFeature(words, nil, 1)
	assert.Equal(t, []string{"x[0]=나"}, feats)
}

func TestSentenceToXYPadsAndEncodesEveryPosition(t *testing.T) {
	encoded, tags := SentenceToXY(HMMStyleTransformer{}, []string{"나", "는"}, []string{"Noun", "Josa"})
	assert.Equal(t, []string{"Noun", "Josa"}, tags)
	require_ := assert.New(t)
	require_.Len(encoded, 2)
	require_.Equal([]string{"x[0]=나"}, encoded[0])
	require_.Equal([]string{"x[0]=는"}, encoded[1])
}

func TestModelScoreSumsWeightsAndUpdateAccumulates(t *testing.T) {
	m := NewModel()
	assert.Equal(t, 0.0, m.Score([]string{"x[0]=나"}))

	m.Update([]string{"x[0]=나", "x[0]=는"}, 1.0)
	m.Update([]string{"x[0]=나"}, 1.0)

	assert.Equal(t, 2.0, m.Score([]string{"x[0]=나"}))
	assert.Equal(t, 1.0, m.Score([]string{"x[0]=는"}))
	assert.Equal(t, 3.0, m.Score([]string{"x[0]=나", "x[0]=는"}))
}
