package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleArtifact = `{
	"emission": {
		"Noun": {"사과": -1.0, "나": -2.0},
		"Josa": {"는": -0.5},
		"Verb": {"가": -1.5}
	},
	"transition": {
		"Noun_Josa": -0.2,
		"Josa_Verb": -0.3
	},
	"begin": {
		"Noun": -0.1
	}
}`

func loadSample(t *testing.T) *Store {
	t.Helper()
	s, err := Load(strings.NewReader(sampleArtifact))
	require.NoError(t, err)
	return s
}

func TestLoadDerivesFloors(t *testing.T) {
	s := loadSample(t)
	assert.Equal(t, 2, s.MaxWordLen()) // "사과" is 2 runes
	assert.InDelta(t, -2.05, s.MinEmission(), 1e-9)
	assert.InDelta(t, -0.35, s.MinTransition(), 1e-9)
}

func TestEmitAndTransLookup(t *testing.T) {
	s := loadSample(t)
	nounID, ok := s.Tags().ID("Noun")
	require.True(t, ok)
	josaID, ok := s.Tags().ID("Josa")
	require.True(t, ok)

	assert.Equal(t, -1.0, s.Emit(nounID, "사과", -99))
	assert.Equal(t, -99.0, s.Emit(nounID, "없는단어", -99))
	assert.Equal(t, -0.2, s.Trans(nounID, josaID, -99))
	assert.Equal(t, -99.0, s.Trans(josaID, nounID, -99))
}

func TestTagsContaining(t *testing.T) {
	s := loadSample(t)
	found := s.TagsContaining("사과")
	require.Len(t, found, 1)
	assert.Equal(t, "Noun", s.Tags().Name(found[0]))

	assert.Empty(t, s.TagsContaining("없음"))
}

func TestAddEntryDoesNotWidenFloors(t *testing.T) {
	s := loadSample(t)
	before := s.MinEmission()
	maxBefore := s.MaxWordLen()

	s.AddEntry("아주긴사용자사전단어", "Noun", 10.0)

	assert.Equal(t, before, s.MinEmission())
	assert.Equal(t, maxBefore, s.MaxWordLen())

	id := s.TagID("Noun")
	assert.Equal(t, 10.0, s.Emit(id, "아주긴사용자사전단어", -99))
}

func TestLoadRejectsEmptyModel(t *testing.T) {
	_, err := Load(strings.NewReader(`{"emission":{},"transition":{},"begin":{}}`))
	require.ErrorIs(t, err, ErrEmptyModel)
}

func TestLoadRejectsMissingSection(t *testing.T) {
	_, err := Load(strings.NewReader(`{"emission":{"Noun":{"a":-1}}}`))
	require.ErrorIs(t, err, ErrModelLoad)
}
